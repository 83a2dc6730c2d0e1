package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/yt-trending/internal/config"
	"github.com/yt-trending/internal/session"
	"github.com/yt-trending/internal/trending"
	"github.com/yt-trending/internal/web"
	"github.com/yt-trending/internal/youtube"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Warn(".env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		// The dashboard renders a configuration error instead; keep serving.
		logger.Warn("starting without a YouTube API key", slog.String("error", err.Error()))
	}

	client := youtube.NewClient(cfg.YouTubeAPIKey, youtube.WithLogger(logger))
	svc := trending.NewService(client, cfg.YouTubeAPIKey, logger)
	sessions := session.NewManager(session.Config{
		Username:      cfg.AuthUsername,
		Password:      cfg.AuthPassword,
		DefaultRegion: cfg.DefaultRegion,
	})

	server := web.NewServer(cfg, svc, sessions, logger)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("server starting", slog.String("addr", addr))
	if err := server.Start(addr); err != nil {
		logger.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
