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

// Package cloud defines the data structures for application configuration,
// loaded from TOML files, and holds the shared clients for the Google Cloud
// services the video insights server depends on.
//
// Structs:
//   - FirestoreDataSource: collection names for the per-user analysis store.
//   - BigQueryDataSource: dataset and table for the usage analytics sink.
//   - YouTubeDataSource: credentials for the YouTube Data API.
//   - PromptTemplates: text templates for prompts sent to the GenAI model.
//   - VertexAiLLMModel: configuration for a Vertex AI LLM.
//   - Config: the top-level aggregate loaded at startup.
package cloud

import "google.golang.org/genai"

// DefaultSafetySettings defines the content safety thresholds applied to all
// GenAI calls. Summaries are produced from public video metadata, so every
// category is configured as pass-through.
var DefaultSafetySettings = []*genai.SafetySetting{
	{
		Category:  genai.HarmCategoryDangerousContent,
		Threshold: genai.HarmBlockThresholdBlockNone,
	},
	{
		Category:  genai.HarmCategoryHarassment,
		Threshold: genai.HarmBlockThresholdBlockNone,
	},
	{
		Category:  genai.HarmCategoryHateSpeech,
		Threshold: genai.HarmBlockThresholdBlockNone,
	},
	{
		Category:  genai.HarmCategorySexuallyExplicit,
		Threshold: genai.HarmBlockThresholdBlockNone,
	},
}

// FirestoreDataSource names the Firestore collections that hold user
// profiles and their analysis records. Analyses live in a sub-collection
// under each user document, so a record cannot exist without its owner.
type FirestoreDataSource struct {
	UserCollection     string `toml:"user_collection"`     // Top-level collection of user profile documents.
	AnalysisCollection string `toml:"analysis_collection"` // Per-user sub-collection of analysis records.
}

// BigQueryDataSource represents the configuration for the BigQuery dataset
// that receives analysis usage events.
type BigQueryDataSource struct {
	DatasetName string `toml:"dataset"`     // The name of the BigQuery dataset.
	EventTable  string `toml:"event_table"` // The table receiving one row per fresh analysis.
}

// YouTubeDataSource holds the credentials for the YouTube Data API, the
// authoritative source of video metadata.
type YouTubeDataSource struct {
	APIKey string `toml:"api_key"` // API key used for videos.list lookups.
}

// PromptTemplates holds the templates for prompts sent to the GenAI model.
type PromptTemplates struct {
	SummaryPrompt string `toml:"summary"` // The template for generating video summaries.
}

// VertexAiLLMModel represents the configuration for a Vertex AI large
// language model (LLM).
type VertexAiLLMModel struct {
	Model              string  `toml:"model"`               // The name of the Vertex AI LLM.
	SystemInstructions string  `toml:"system_instructions"` // The system instructions for the LLM.
	Temperature        float32 `toml:"temperature"`         // The temperature parameter for the LLM.
	TopP               float32 `toml:"top_p"`               // The top_p parameter for the LLM.
	TopK               float32 `toml:"top_k"`               // The top_k parameter for the LLM.
	MaxTokens          int32   `toml:"max_tokens"`          // The maximum number of tokens for the LLM output.
	RateLimit          int     `toml:"rate_limit"`          // The rate limit for the LLM in requests per second.
}

// Config represents the overall configuration for the application, loaded
// from layered TOML files at startup.
type Config struct {
	Application struct {
		Name            string `toml:"name"`              // The name of the application.
		GoogleProjectId string `toml:"google_project_id"` // The Google Cloud project ID.
		GoogleLocation  string `toml:"location"`          // The Google Cloud location.
	} `toml:"application"`
	Firestore          FirestoreDataSource         `toml:"firestore"`             // Analysis record store configuration.
	BigQueryDataSource BigQueryDataSource          `toml:"big_query_data_source"` // Usage analytics sink configuration.
	YouTube            YouTubeDataSource           `toml:"youtube"`               // Metadata provider configuration.
	PromptTemplates    PromptTemplates             `toml:"prompt_templates"`      // Prompt templates configuration.
	AgentModels        map[string]VertexAiLLMModel `toml:"agent_models"`          // Vertex AI LLM models, keyed by a logical name.
}

// NewConfig creates a new, initialized Config instance. The map fields must
// be allocated before the TOML loader populates them.
func NewConfig() *Config {
	return &Config{
		AgentModels: make(map[string]VertexAiLLMModel),
	}
}
