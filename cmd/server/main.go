// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package main is the entry point for the video insights backend server.
//
// The application runs a Gin web server exposing a REST API that analyzes
// YouTube videos with a Gemini model and serves each user's analysis
// history. Results are cached per (user, video) in Firestore, so repeat
// requests are answered without calling the metadata or model providers
// again. The server is instrumented with OpenTelemetry for logging,
// tracing, and metrics.
//
// Functions:
//   - main: Sets up logging, telemetry, configuration, and application
//     state, registers the API routes, and handles graceful shutdown.
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/jaycherian/gcp-go-video-insights/internal/api"
	"github.com/jaycherian/gcp-go-video-insights/internal/telemetry"
)

func main() {
	// Initialize structured logging for the application.
	telemetry.SetupLogging()
	slog.Info("Logging initialized")

	// Root context for the application; cancelled on exit.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load application configuration from TOML files.
	config := GetConfig()

	// Initialize OpenTelemetry for distributed tracing and metrics.
	shutdownTelemetry, err := telemetry.SetupOpenTelemetry(ctx, config)
	if err != nil {
		slog.Error("Failed to setup OpenTelemetry", "error", err)
		log.Fatal(err)
	}
	slog.Info("Tracing initialized")

	// Initialize the application's state, including all service clients.
	InitState(ctx)
	defer state.cloud.Close()
	slog.Info("Initialized State")

	r := gin.Default()

	// Trace incoming requests before any handler runs.
	r.Use(otelgin.Middleware(config.Application.Name))

	// Permissive CORS; the service sits behind an authenticating front end.
	r.Use(cors.Default())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": config.Application.Name})
	})

	apiV1 := r.Group("/api/v1")
	{
		api.AnalysisRouter(apiV1, state.analysisService)
		api.StatsRouter(apiV1, state.usageService)
	}

	srv := &http.Server{
		Addr:         ":8080",
		Handler:      r,
		ReadTimeout:  20 * time.Second,
		WriteTimeout: 20 * time.Second,
	}

	// Serve in a goroutine so the main thread can wait on signals.
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to listen: ", "error", err)
		}
	}()
	slog.Info("Server Ready on port 8080")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutdown Server ...")

	// Give active requests five seconds to complete.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server Shutdown Failed:", "error", err)
	}
	if err := shutdownTelemetry(context.Background()); err != nil {
		slog.Error("Telemetry Shutdown Failed:", "error", err)
	}

	log.Println("Server exiting")
}
