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

// Package main contains the setup and initialization logic for the
// application's state. This file creates a centralized state manager that
// holds the shared dependencies: configuration, Google Cloud service
// clients, the analysis pipeline, and the services behind the API routes.
//
// Functions:
//   - SetupOS: Points the configuration loader at the TOML files for the
//     current runtime environment.
//   - GetConfig: A singleton accessor that loads the configuration once.
//   - InitState: Creates all service clients, builds the analysis pipeline,
//     and wires the request facing services.
package main

import (
	"context"
	"log"
	"os"

	"github.com/jaycherian/gcp-go-video-insights/internal/cloud"
	"github.com/jaycherian/gcp-go-video-insights/internal/core/services"
	"github.com/jaycherian/gcp-go-video-insights/internal/core/workflow"
)

// summaryAgent names the configured agent model used for summarization.
const summaryAgent = "creative-flash"

// StateManager holds all the shared dependencies for the application,
// acting as a centralized container for service clients and configuration.
type StateManager struct {
	config          *cloud.Config
	cloud           *cloud.ServiceClients
	analysisService *services.AnalysisService
	usageService    *services.BigQueryUsageService
}

// state is the single instance of StateManager for the process.
var state = &StateManager{}

// SetupOS sets the environment variables the configuration loader uses to
// find the TOML files. The runtime defaults to "local" so a developer
// checkout works without any environment preparation.
func SetupOS() (err error) {
	err = os.Setenv(cloud.EnvConfigFilePrefix, "configs")
	if err != nil {
		return err
	}
	if os.Getenv(cloud.EnvConfigRuntime) == "" {
		err = os.Setenv(cloud.EnvConfigRuntime, "local")
	}
	return err
}

// GetConfig provides a singleton instance of the application configuration,
// loading it from the TOML files on first use.
func GetConfig() *cloud.Config {
	if state.config == nil {
		if err := SetupOS(); err != nil {
			log.Fatalf("failed to setup os environment: %v\n", err)
		}
		config := cloud.NewConfig()
		cloud.LoadConfig(&config)
		state.config = config
	}
	return state.config
}

// InitState initializes the application state: the Google Cloud clients,
// the record store, the metadata and summarization providers, the analysis
// pipeline, and the services the routes call into.
func InitState(ctx context.Context) {
	config := GetConfig()

	serviceClients, err := cloud.NewCloudServiceClients(ctx, config)
	if err != nil {
		log.Fatal(err)
	}
	state.cloud = serviceClients

	store := services.NewFirestoreAnalysisStore(serviceClients.FirestoreClient, config.Firestore)
	metadata := services.NewYouTubeMetadataService(serviceClients.YouTubeService)
	generator := services.NewGenAITextService(serviceClients.AgentModels[summaryAgent])
	state.usageService = services.NewBigQueryUsageService(serviceClients.BigQueryClient, config.BigQueryDataSource)

	pipeline, err := workflow.NewAnalysisPipeline(
		store,
		metadata,
		generator,
		state.usageService,
		config.PromptTemplates.SummaryPrompt)
	if err != nil {
		log.Fatal(err)
	}
	state.analysisService = services.NewAnalysisService(pipeline, store)
}
