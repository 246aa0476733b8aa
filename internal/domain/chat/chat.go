// Package chat streams conversational replies from the assistant
// collaborator ("AyurBot").
package chat

import "context"

// Role identifies the author of a message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is one turn of the conversation history.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Chunk is one piece of the streamed reply. A terminal failure is carried
// in Err on the last chunk before the channel closes.
type Chunk struct {
	Text string
	Err  error
}

// Streamer produces a finite, ordered sequence of reply chunks for a
// conversation history. The returned channel is closed after the final
// chunk; a stream is not restartable. Cancel via ctx.
type Streamer interface {
	Stream(ctx context.Context, history []Message) (<-chan Chunk, error)
}
