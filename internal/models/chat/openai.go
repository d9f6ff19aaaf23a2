package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ErrEmptyCompletion is returned when the provider answers without usable text.
var ErrEmptyCompletion = errors.New("completion returned no content")

// OpenAIChat implements the Chat interface against the OpenAI completion API.
type OpenAIChat struct {
	client       *openai.Client
	defaultModel string
}

// NewOpenAIChat creates an OpenAI-backed chat model.
func NewOpenAIChat(apiKey, defaultModel string) *OpenAIChat {
	return &OpenAIChat{
		client:       openai.NewClient(apiKey),
		defaultModel: defaultModel,
	}
}

// NewOpenAIChatWithConfig creates an OpenAI-backed chat model with a custom
// client configuration, used to point at compatible endpoints.
func NewOpenAIChatWithConfig(config openai.ClientConfig, defaultModel string) *OpenAIChat {
	return &OpenAIChat{
		client:       openai.NewClientWithConfig(config),
		defaultModel: defaultModel,
	}
}

// Chat sends the messages to the completion API and returns the trimmed text
// of the first choice.
func (c *OpenAIChat) Chat(ctx context.Context, messages []Message, opts *ChatOptions) (*Response, error) {
	if opts == nil {
		opts = &ChatOptions{}
	}
	model := opts.Model
	if model == "" {
		model = c.defaultModel
	}

	chatMessages := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		chatMessages = append(chatMessages, openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    chatMessages,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, ErrEmptyCompletion
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return nil, ErrEmptyCompletion
	}

	return &Response{Content: content}, nil
}
