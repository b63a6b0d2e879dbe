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

// This file initializes and holds the client objects used to communicate
// with external services. It acts as a small dependency injection
// container: `NewCloudServiceClients` is called once at startup and the
// resulting `ServiceClients` struct is shared by the API handlers and the
// analysis workflow.
//
// Logic flow:
//  1. `NewCloudServiceClients` takes the loaded `Config` and a root context.
//  2. It creates the Firestore, BigQuery, GenAI, and YouTube Data clients.
//  3. Each configured agent model is wrapped in the quota-aware rate
//     limiting wrapper and stored in a map keyed by its logical name.
package cloud

import (
	"context"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
	youtube "google.golang.org/api/youtube/v3"
	"google.golang.org/genai"
)

// ServiceClients is a container for all the clients that talk to external
// services. A single instance is created at startup and shared across the
// application.
type ServiceClients struct {
	FirestoreClient *firestore.Client                       // Client for the per-user analysis record store.
	BigQueryClient  *bigquery.Client                        // Client for the usage analytics dataset.
	GenAIClient     *genai.Client                           // Client for Vertex AI generative models.
	YouTubeService  *youtube.Service                        // Client for the YouTube Data API (metadata lookups).
	AgentModels     map[string]*QuotaAwareGenerativeAIModel // Configured GenAI models, keyed by logical name.
}

// Close releases the client connections that expose an explicit close.
// Useful in tests and controlled shutdowns; in the server the root context
// owns their lifetime.
func (c *ServiceClients) Close() {
	_ = c.FirestoreClient.Close()
	_ = c.BigQueryClient.Close()
}

// NewCloudServiceClients initializes every external client the application
// needs, based on the provided configuration.
func NewCloudServiceClients(ctx context.Context, config *Config) (cloud *ServiceClients, err error) {
	fc, err := firestore.NewClient(ctx, config.Application.GoogleProjectId)
	if err != nil {
		return nil, err
	}

	bc, err := bigquery.NewClient(ctx, config.Application.GoogleProjectId)
	if err != nil {
		return nil, err
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  config.Application.GoogleProjectId,
		Location: config.Application.GoogleLocation,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, err
	}

	yt, err := youtube.NewService(ctx, option.WithAPIKey(config.YouTube.APIKey))
	if err != nil {
		return nil, err
	}

	// Wrap each configured agent model with its generation parameters and a
	// client-side rate limiter.
	agentModels := make(map[string]*QuotaAwareGenerativeAIModel)
	for amKey := range config.AgentModels {
		values := config.AgentModels[amKey]

		model := &genai.GenerateContentConfig{
			Temperature:       genai.Ptr[float32](values.Temperature),
			TopP:              genai.Ptr[float32](values.TopP),
			TopK:              genai.Ptr[float32](values.TopK),
			MaxOutputTokens:   values.MaxTokens,
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: values.SystemInstructions}}},
			SafetySettings:    DefaultSafetySettings,
		}

		agentModels[amKey] = NewQuotaAwareModel(model, values.Model, gc.Models, values.RateLimit)
	}

	cloud = &ServiceClients{
		FirestoreClient: fc,
		BigQueryClient:  bc,
		GenAIClient:     gc,
		YouTubeService:  yt,
		AgentModels:     agentModels,
	}

	return cloud, err
}
