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
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/culturekeepers/impactwatch/pkg/logging"
	"github.com/culturekeepers/impactwatch/services/catalog/config"
	"github.com/culturekeepers/impactwatch/services/catalog/middleware"
	"github.com/culturekeepers/impactwatch/services/catalog/routes"
	"github.com/culturekeepers/impactwatch/services/catalog/store"
)

// initTracer sets up OTLP trace export when a collector endpoint is
// configured. Returns a no-op cleanup when tracing is disabled.
func initTracer() (func(context.Context), error) {
	otelEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otelEndpoint == "" {
		return func(context.Context) {}, nil
	}

	ctx := context.Background()
	conn, err := grpc.NewClient(otelEndpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, err
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceNameKey.String("catalog-service")))
	if err != nil {
		return nil, err
	}
	bsp := sdktrace.NewBatchSpanProcessor(traceExporter)
	traceProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(bsp))
	otel.SetTracerProvider(traceProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.
		TraceContext{}, propagation.Baggage{}))

	return func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, time.Second*5)
		defer cancel()
		if err := traceExporter.Shutdown(ctx); err != nil {
			slog.Error("failed to shutdown OTLP exporter", "error", err)
		}
	}, nil
}

func main() {
	cfg, err := config.Load(os.Getenv("CATALOG_CONFIG"))
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logger := logging.New(logging.Config{
		Level:   logging.ParseLevel(cfg.LogLevel),
		LogDir:  cfg.LogDir,
		Service: "catalog",
		JSON:    true,
	})
	defer logger.Close()
	slog.SetDefault(logger.Slog())

	cleanup, err := initTracer()
	if err != nil {
		log.Fatalf("failed to setup the OTLP tracer: %v", err)
	}
	defer cleanup(context.Background())

	var storeOpts []store.Option
	if cfg.CacheCatalog {
		storeOpts = append(storeOpts, store.WithCaching())
	}
	catalogStore := store.New(cfg.DataPath, storeOpts...)

	// Fail fast on a broken catalog, but keep serving if the file is
	// merely missing at boot: the next request retries the load.
	if catalog, err := catalogStore.Snapshot(); err != nil {
		slog.Warn("catalog not loadable at startup", "path", cfg.DataPath, "error", err)
	} else {
		slog.Info("catalog loaded", "path", cfg.DataPath, "entries", len(catalog.Litigation))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.CacheCatalog {
		watcher, err := store.NewWatcher(catalogStore, nil)
		if err != nil {
			log.Fatalf("failed to create catalog watcher: %v", err)
		}
		if err := watcher.Start(ctx); err != nil {
			log.Fatalf("failed to start catalog watcher: %v", err)
		}
		defer watcher.Stop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("catalog-service"))

	routes.SetupRoutes(router, catalogStore, middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	slog.Info("catalog service listening", "addr", addr, "caching", cfg.CacheCatalog)
	if err := router.Run(addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
