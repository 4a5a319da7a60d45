// Package chat runs the voter assistant conversation.
//
// A Session keeps the system prompt at index 0 followed by alternating user
// and assistant turns. Every user turn is expanded with transcript excerpts
// from a Retriever before it is sent. Once the history grows past
// MaxHistory entries the oldest user/assistant pair is dropped; the system
// prompt is never removed.
//
// Ask is the one-shot form: system prompt plus a single expanded question.
package chat
