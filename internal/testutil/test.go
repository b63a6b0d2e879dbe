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

// Package test provides helpers for the test suite, chiefly a ready-made
// configuration that needs no config files or cloud project.
package test

import (
	"testing"

	"github.com/jaycherian/gcp-go-video-insights/internal/cloud"
)

// HandleErr fails the test when err is not nil. Convenience to reduce
// boilerplate error checks in tests.
func HandleErr(err error, t *testing.T) {
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// GetTestConfig returns a fully populated configuration without touching
// the file system, so unit tests never depend on TOML files or env vars.
func GetTestConfig() *cloud.Config {
	config := cloud.NewConfig()
	config.Application.Name = "video-insights-test"
	config.Application.GoogleProjectId = "test-project"
	config.Application.GoogleLocation = "us-central1"
	config.Firestore.UserCollection = "users"
	config.Firestore.AnalysisCollection = "analyses"
	config.BigQueryDataSource.DatasetName = "video_insights_test"
	config.BigQueryDataSource.EventTable = "analysis_events"
	config.YouTube.APIKey = "test-api-key"
	config.PromptTemplates.SummaryPrompt = GetTestSummaryPrompt()
	config.AgentModels["creative-flash"] = cloud.VertexAiLLMModel{
		Model:       "gemini-2.0-flash",
		Temperature: 1.0,
		TopP:        0.95,
		TopK:        40,
		MaxTokens:   8192,
		RateLimit:   2,
	}
	return config
}

// GetTestSummaryPrompt returns a small prompt template that exercises every
// metadata field used by the production template.
func GetTestSummaryPrompt() string {
	return "Summarize {{.Title}} by {{.ChannelTitle}} " +
		"(published {{.PublishedAt}}, {{.ViewCount}} views): {{.Description}}"
}
