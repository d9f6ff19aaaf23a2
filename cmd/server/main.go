package main

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/symptocare/symptocare/internal/application/repository/chatlog"
	"github.com/symptocare/symptocare/internal/application/repository/insight"
	"github.com/symptocare/symptocare/internal/application/repository/mood"
	"github.com/symptocare/symptocare/internal/application/service/assistant"
	"github.com/symptocare/symptocare/internal/application/service/insights"
	"github.com/symptocare/symptocare/internal/config"
	"github.com/symptocare/symptocare/internal/handler"
	"github.com/symptocare/symptocare/internal/logger"
	"github.com/symptocare/symptocare/internal/middleware"
	"github.com/symptocare/symptocare/internal/models/chat"
)

func main() {
	ctx := context.Background()

	// .env is optional; deployed environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.GetLogger(ctx).Fatalf("failed to load config: %v", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.Supabase.DSN()), &gorm.Config{})
	if err != nil {
		logger.GetLogger(ctx).Fatalf("failed to connect to database: %v", err)
	}

	moodRepo := mood.NewMoodEntryRepository(db)
	insightRepo := insight.NewInsightRepository(db)
	chatLogRepo := chatlog.NewChatLogRepository(db)

	chatModel := chat.NewOpenAIChat(cfg.OpenAI.APIKey, cfg.OpenAI.SummaryModel)

	summaryService := insights.NewSummaryService(moodRepo, insightRepo, chatModel, cfg.OpenAI.SummaryModel)
	chatService := assistant.NewChatService(chatLogRepo, chatModel, cfg.OpenAI.ChatModel)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	handler.RegisterRoutes(r,
		handler.NewInsightHandler(summaryService),
		handler.NewChatHandler(chatService),
	)

	logger.Info(ctx, "listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.GetLogger(ctx).Fatalf("server exited: %v", err)
	}
}
