// @title Doc Quiz API
// @version 1.0
// @description Generates fill-in-the-blank quizzes from uploaded documents.
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"doc-quiz/internal/adapter"
	"doc-quiz/internal/cache"
	"doc-quiz/internal/config"
	"doc-quiz/internal/domain"
	"doc-quiz/internal/extractor"
	"doc-quiz/internal/logger"
	"doc-quiz/internal/quizgen"
	"doc-quiz/internal/server"
	"doc-quiz/internal/service"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	var textExtractor domain.TextExtractor = extractor.New(extractor.WithMaxBytes(int64(cfg.Server.BodyLimitBytes())))

	var cacheAdapter domain.Cache
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		textExtractor = extractor.NewCachedExtractor(textExtractor, cacheAdapter, cfg.Cache.ExtractionTTL)
		appLogger.Info("Extraction cache enabled",
			zap.String("address", cfg.Redis.Address),
			zap.Duration("ttl", cfg.Cache.ExtractionTTL),
		)
	} else {
		appLogger.Info("Extraction cache disabled; set REDIS_ADDRESS to enable")
	}

	generator := quizgen.New(quizgen.NewRandomSource(), quizgen.Options{
		MaxQuestions:      cfg.Quiz.MaxQuestions,
		MinSentenceLength: cfg.Quiz.MinSentenceLength,
		MinWordLength:     cfg.Quiz.MinWordLength,
	})
	quizService := service.NewQuizService(textExtractor, generator)

	app := server.NewApp(cfg.Server, server.Dependencies{
		QuizService: quizService,
		Cache:       cacheAdapter,
	})

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
