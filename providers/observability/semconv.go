package observability

// Semantic conventions for observability attributes. These constants define
// standard attribute names so recordings stay consistent across components.

// --- LLM Provider Attributes ---

const (
	// AttrLLMProvider is the name of the LLM provider (e.g., "gemini", "openai")
	AttrLLMProvider = "llm.provider"

	// AttrLLMModel is the model identifier
	AttrLLMModel = "llm.model"

	// AttrLLMEndpoint is the API endpoint URL
	AttrLLMEndpoint = "llm.endpoint"

	// AttrLLMResponseID is the unique response identifier from the provider
	AttrLLMResponseID = "llm.response.id"

	// AttrLLMFinishReason is the reason the generation finished
	AttrLLMFinishReason = "llm.finish_reason"

	// AttrLLMTemperature is the sampling temperature used
	AttrLLMTemperature = "llm.temperature"

	// AttrLLMTokensPrompt is the number of prompt tokens
	AttrLLMTokensPrompt = "llm.tokens.prompt" // #nosec G101 -- token refers to LLM tokens

	// AttrLLMTokensCompletion is the number of completion tokens
	AttrLLMTokensCompletion = "llm.tokens.completion" // #nosec G101 -- token refers to LLM tokens

	// AttrLLMTokensTotal is the total number of tokens
	AttrLLMTokensTotal = "llm.tokens.total" // #nosec G101 -- token refers to LLM tokens
)

// --- Tool Execution Attributes ---

const (
	// AttrToolName is the name of the tool being executed
	AttrToolName = "tool.name"

	// AttrToolCallID is the provider-assigned identifier of the tool call
	AttrToolCallID = "tool.call_id"

	// AttrToolInput is the serialized tool input
	AttrToolInput = "tool.input"

	// AttrToolOutput is the serialized tool output
	AttrToolOutput = "tool.output"

	// AttrToolDuration is the execution duration
	AttrToolDuration = "tool.duration"
)

// --- Agent Loop Attributes ---

const (
	// AttrAgentQuery is the user query driving the loop
	AttrAgentQuery = "agent.query"

	// AttrAgentIteration is the current reasoning iteration (1-based)
	AttrAgentIteration = "agent.iteration"

	// AttrAgentMaxIterations is the configured iteration bound
	AttrAgentMaxIterations = "agent.max_iterations"

	// AttrAgentToolCalls is the number of tool calls requested in a turn
	AttrAgentToolCalls = "agent.tool_calls"

	// AttrAgentMessagesCount is the number of messages in the conversation
	AttrAgentMessagesCount = "agent.messages_count"
)

// --- HTTP Attributes ---

const (
	// AttrHTTPMethod is the HTTP method
	AttrHTTPMethod = "http.method"

	// AttrHTTPStatusCode is the HTTP response status code
	AttrHTTPStatusCode = "http.status_code"

	// AttrHTTPURL is the full request URL
	AttrHTTPURL = "http.url"

	// AttrHTTPRequestBodySize is the request body size in bytes
	AttrHTTPRequestBodySize = "http.request.body.size"

	// AttrHTTPResponseBodySize is the response body size in bytes
	AttrHTTPResponseBodySize = "http.response.body.size"
)

// --- Memory Attributes ---

const (
	// AttrMemoryMessageRole is the role of the message being stored
	AttrMemoryMessageRole = "memory.message.role"

	// AttrMemoryTotalMessages is the total number of messages in memory
	AttrMemoryTotalMessages = "memory.total_messages"
)

// --- General Attributes ---

const (
	// AttrError is the error message
	AttrError = "error"

	// AttrErrorType is the error type/class
	AttrErrorType = "error.type"

	// AttrStatus is the operation status
	AttrStatus = "status"

	// AttrStatusDescription is the status description
	AttrStatusDescription = "status_description"
)

// --- Span Names ---

const (
	// SpanAgentInvoke is the span name for a full agent invocation
	SpanAgentInvoke = "agent.invoke"

	// SpanLLMRequest is the span name for LLM API requests
	SpanLLMRequest = "llm.request"

	// SpanToolExecution is the span name for tool executions
	SpanToolExecution = "tool.execution"
)

// --- Event Names ---

const (
	// EventLLMRequestStart marks the start of an LLM request
	EventLLMRequestStart = "llm.request.start"

	// EventLLMRequestEnd marks the end of an LLM request
	EventLLMRequestEnd = "llm.request.end"

	// EventToolExecutionStart marks the start of tool execution
	EventToolExecutionStart = "tool.execution.start"

	// EventToolExecutionEnd marks the end of tool execution
	EventToolExecutionEnd = "tool.execution.end"

	// EventMemoryAppend marks when a message is appended to memory
	EventMemoryAppend = "memory.append"
)

// --- Metric Names ---

const (
	// MetricAgentInvocationCount is the counter for agent invocations
	MetricAgentInvocationCount = "reagent.agent.invocation.count"

	// MetricAgentIterations is the histogram for iterations per invocation
	MetricAgentIterations = "reagent.agent.iterations"

	// MetricToolCallCount is the counter for executed tool calls
	MetricToolCallCount = "reagent.tool.call.count"
)
