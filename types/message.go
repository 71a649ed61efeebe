package types

import "time"

// Message represents a single message sent to an LLM provider.
// This is the canonical message type used throughout the system.
type Message struct {
	Role    string `json:"role"`    // "system", "user", "assistant"
	Content string `json:"content"` // Message content

	// Metadata for observability and tracking
	Timestamp time.Time `json:"timestamp,omitempty"`  // When the message was created
	LatencyMs int64     `json:"latency_ms,omitempty"` // Time taken to generate (for assistant messages)
}

// Utterance is one spoken line of a conversation: who said it and what was
// said. The ordered sequence of utterances is the session transcript.
//
// Speaker may be empty for synthetic entries injected by the orchestrator,
// such as moderator calming instructions.
type Utterance struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// String renders the utterance the way it is fed back to providers as
// conversation context: "Name : text".
func (u Utterance) String() string {
	if u.Speaker == "" {
		return u.Text
	}
	return u.Speaker + " : " + u.Text
}
