package main

import (
	"context"
	"log"

	"saathigo/internal/api"
	"saathigo/internal/config"
	"saathigo/internal/memory"
	"saathigo/internal/service/ai"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	sugar := logger.Sugar()

	gateway, err := ai.NewService(cfg, sugar)
	if err != nil {
		sugar.Fatalw("init generation gateway", "error", err)
	}

	sessions := memory.NewRegistry(cfg.HistoryCap, cfg.SessionIdleTTL, sugar)
	sweepCtx, sweepCancel := context.WithCancel(context.Background())
	defer sweepCancel()
	sessions.StartSweeper(sweepCtx, cfg.SweepInterval)

	handlers := api.NewHandler(gateway, sessions, cfg.ContextWindow)

	router := gin.Default()
	handlers.RegisterRoutes(router)

	sugar.Infow("starting server",
		"addr", cfg.ServerAddress,
		"provider", cfg.Provider,
		"model", cfg.Model,
	)
	if err := router.Run(cfg.ServerAddress); err != nil {
		sugar.Fatalw("server stopped", "error", err)
	}
}
