package react

import (
	"iter"
)

// EventType identifies the phase of the ReAct loop that produced an event.
type EventType string

const (
	// EventIterationStart signals the beginning of a reasoning iteration.
	EventIterationStart EventType = "iteration_start"

	// EventAssistantMessage carries the assistant's message for an iteration,
	// emitted after the model call completes. Content holds the text; a
	// message that only requests tool calls may have empty content.
	EventAssistantMessage EventType = "assistant_message"

	// EventToolCall indicates the model has requested a tool execution.
	// ToolName, ToolInput, and ToolCallID are populated.
	EventToolCall EventType = "tool_call"

	// EventToolResult indicates a tool execution finished. ToolName,
	// ToolOutput, and ToolCallID are populated.
	EventToolResult EventType = "tool_result"

	// EventFinalAnswer indicates the loop has terminated normally.
	// Content holds the agent's answer.
	EventFinalAnswer EventType = "final_answer"
)

// Event is a single step snapshot from the agent loop. Each event carries
// exactly one kind of payload, identified by Type.
type Event struct {
	// Type identifies what kind of event this is.
	Type EventType `json:"type"`

	// Iteration is the 1-based reasoning iteration that produced the event.
	Iteration int `json:"iteration"`

	// Content carries the assistant text for EventAssistantMessage and the
	// final answer for EventFinalAnswer.
	Content string `json:"content,omitempty"`

	// ToolName is the tool being called or returning a result.
	ToolName string `json:"tool_name,omitempty"`

	// ToolInput is the JSON-encoded arguments passed to the tool.
	// Populated for EventToolCall only.
	ToolInput string `json:"tool_input,omitempty"`

	// ToolOutput is the JSON-encoded result returned by the tool.
	// Populated for EventToolResult only.
	ToolOutput string `json:"tool_output,omitempty"`

	// ToolCallID is the identifier tying a tool result to its call.
	ToolCallID string `json:"tool_call_id,omitempty"`
}

// Stream wraps the streaming execution of one agent query. It yields Event
// values describing each phase of the loop, paired with an error that is
// non-nil only for the terminal failure.
//
// Consume it with Iter() or Collect(). Breaking out of an Iter() range loop
// early is safe; range-over-func abandons the iterator cleanly.
type Stream struct {
	iterator iter.Seq2[Event, error]
}

// Iter returns the underlying iterator for range-over-func consumption.
//
// Example:
//
//	for event, err := range agent.Stream(ctx, "What is 25 * 4?").Iter() {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    switch event.Type {
//	    case react.EventToolCall:
//	        fmt.Printf("[calling %s]\n", event.ToolName)
//	    case react.EventFinalAnswer:
//	        fmt.Println(event.Content)
//	    }
//	}
func (s *Stream) Iter() iter.Seq2[Event, error] {
	return s.iterator
}

// Collect consumes the entire stream and returns the final answer,
// equivalent to Invoke but after streaming all events.
//
// When the loop fails after producing assistant text, the text seen so far is
// returned alongside the error so callers can still surface a partial answer.
func (s *Stream) Collect() (string, error) {
	var lastContent string

	for event, err := range s.iterator {
		if err != nil {
			return lastContent, err
		}
		switch event.Type {
		case EventAssistantMessage:
			if event.Content != "" {
				lastContent = event.Content
			}
		case EventFinalAnswer:
			lastContent = event.Content
		}
	}

	return lastContent, nil
}
