// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/culturekeepers/impactwatch/pkg/logging"
	"github.com/culturekeepers/impactwatch/services/catalog/config"
	"github.com/culturekeepers/impactwatch/services/catalog/middleware"
	"github.com/culturekeepers/impactwatch/services/catalog/routes"
	"github.com/culturekeepers/impactwatch/services/catalog/store"
)

func runServeCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cmd.Flags().Changed("data") {
		cfg.DataPath = dataPath
	}

	logger := logging.New(logging.Config{
		Level:   logging.ParseLevel(cfg.LogLevel),
		LogDir:  cfg.LogDir,
		Service: "catalog",
	})
	defer logger.Close()
	slog.SetDefault(logger.Slog())

	var storeOpts []store.Option
	if cfg.CacheCatalog {
		storeOpts = append(storeOpts, store.WithCaching())
	}
	catalogStore := store.New(cfg.DataPath, storeOpts...)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if cfg.CacheCatalog {
		watcher, err := store.NewWatcher(catalogStore, nil)
		if err != nil {
			return fmt.Errorf("creating catalog watcher: %w", err)
		}
		if err := watcher.Start(ctx); err != nil {
			return fmt.Errorf("starting catalog watcher: %w", err)
		}
		defer watcher.Stop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	routes.SetupRoutes(router, catalogStore, middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	slog.Info("catalog service listening", "addr", addr)
	return router.Run(addr)
}
