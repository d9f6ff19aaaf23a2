package assistant

import (
	"context"

	"github.com/symptocare/symptocare/internal/logger"
	"github.com/symptocare/symptocare/internal/models/chat"
	"github.com/symptocare/symptocare/internal/types"
	"github.com/symptocare/symptocare/internal/types/interfaces"
)

const chatSystemPrompt = "You are SymptoCare—an empathetic wellness companion and a careful, evidence-informed AI assistant. " +
	"Be warm, validating, and practical. Offer supportive reflections and simple, actionable suggestions. " +
	"If potential risk is mentioned (e.g., self-harm), encourage contacting crisis resources and seeking professional help. " +
	"Do not diagnose; you can discuss patterns and general guidance. Keep answers concise unless the user asks for more."

// FallbackReply is the fixed reply used when the model cannot produce usable
// output for a chat turn.
const FallbackReply = "I'm here with you. I had trouble generating a response just now, but I'm listening—" +
	"could you tell me a bit more about what's on your mind?"

const (
	chatTemperature = 0.7
	chatMaxTokens   = 500

	defaultThreadID = "default"
)

// ChatService implements the ChatService interface
type ChatService struct {
	chatLogRepo interfaces.ChatLogRepository
	chatModel   chat.Chat
	model       string
}

// NewChatService creates a new chat service
func NewChatService(chatLogRepo interfaces.ChatLogRepository, chatModel chat.Chat, model string) interfaces.ChatService {
	return &ChatService{
		chatLogRepo: chatLogRepo,
		chatModel:   chatModel,
		model:       model,
	}
}

// Reply generates an assistant reply for the question. Recent mood context, if
// provided, is surfaced to the model as a second system message. A generation
// failure is logged and replaced with the fixed fallback reply.
func (s *ChatService) Reply(ctx context.Context, req *types.ChatRequest) string {
	messages := []chat.Message{
		{Role: "system", Content: chatSystemPrompt},
	}
	if moodContext := summarizeMoodContext(req.Context); moodContext != "" {
		messages = append(messages, chat.Message{Role: "system", Content: moodContext})
	}
	messages = append(messages, chat.Message{Role: "user", Content: req.Question})

	resp, err := s.chatModel.Chat(ctx, messages, &chat.ChatOptions{
		Model:       s.model,
		Temperature: chatTemperature,
		MaxTokens:   chatMaxTokens,
	})
	if err != nil {
		logger.Errorf(ctx, "failed to generate chat reply: %v", err)
		return FallbackReply
	}

	return resp.Content
}

// LogExchange records the assistant reply in the chat log without blocking the
// caller. Failures are logged and swallowed; the response already computed is
// never affected.
func (s *ChatService) LogExchange(ctx context.Context, userID, threadID, reply string) {
	if threadID == "" {
		threadID = defaultThreadID
	}
	message := &types.ChatMessage{
		ThreadID: threadID,
		Role:     "assistant",
		Content:  reply,
	}
	if userID != "" {
		message.UserID = &userID
	}

	// Detached from request cancellation so the write can finish after the
	// response is sent.
	writeCtx := context.WithoutCancel(ctx)
	go func() {
		if err := s.chatLogRepo.SaveMessage(writeCtx, message); err != nil {
			logger.Warnf(writeCtx, "failed to log chat exchange: %v", err)
		}
	}()
}
