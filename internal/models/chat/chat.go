package chat

import "context"

// Message is a single turn in a model conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatOptions controls sampling for one completion call. Model overrides the
// client default when non-empty.
type ChatOptions struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

// Response is the usable text of a completion.
type Response struct {
	Content string `json:"content"`
}

// Chat is the interface implemented by completion backends.
type Chat interface {
	// Chat sends the ordered messages to the model and returns the trimmed
	// text of the first choice. An empty completion is an error, not a
	// success with empty text.
	Chat(ctx context.Context, messages []Message, opts *ChatOptions) (*Response, error)
}
