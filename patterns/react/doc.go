// Package react implements the ReAct (Reasoning + Acting) agent loop: the
// model alternates between reasoning over the conversation and requesting
// tool executions until it produces a plain-text answer or hits the
// configured iteration bound.
//
// Construct an [Agent] with [New], then call [Agent.Invoke] for the final
// answer or [Agent.Stream] to observe every step.
package react
