package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/osuushi/datareduce/api"
	"github.com/osuushi/datareduce/cache"
	"github.com/osuushi/datareduce/config"
	"github.com/osuushi/datareduce/render"
	"github.com/rs/zerolog"
)

func runServe(cfg *config.Config, consoleLogger zerolog.Logger) error {
	// The service logs JSON
	logger := zerolog.New(os.Stderr).With().Timestamp().Str("namespace", "datareduce").Logger()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	importanceCache, err := cache.New(cfg.ImportanceCacheSize)
	if err != nil {
		return err
	}

	options := render.DefaultOptions()
	options.Width, options.Height = cfg.RenderWidth, cfg.RenderHeight

	apiErrors := make(chan error, 1)
	api.Start(cfg.BindAddr, cfg.CORSAllowedOrigins, api.New(importanceCache, logger, cfg.DefaultTarget, options), apiErrors)
	consoleLogger.Info().Str("bind_addr", cfg.BindAddr).Msg("serving")

	var serveErr error
	select {
	case serveErr = <-apiErrors:
		logger.Error().Err(serveErr).Msg("api error received")
	case <-signals:
		logger.Debug().Msg("os signal received")
	}

	// Gracefully shutdown the application closing any open resources.
	logger.Info().Dur("timeout", cfg.ShutdownTimeout).Msg("Shutdown with timeout")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := api.Close(ctx, logger); err != nil {
		return err
	}
	hits, misses := importanceCache.Stats()
	logger.Info().Uint64("cache_hits", hits).Uint64("cache_misses", misses).Msg("Shutdown complete")
	return serveErr
}
