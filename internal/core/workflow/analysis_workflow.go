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

// Package workflow wires the analysis commands into an executable chain.
package workflow

import (
	"github.com/jaycherian/gcp-go-video-insights/internal/core/commands"
	"github.com/jaycherian/gcp-go-video-insights/internal/core/cor"
)

// AnalysisStore is the full store surface the pipeline needs: a cache
// read before the expensive steps and a write after them. A single
// Firestore backed implementation serves both in production.
type AnalysisStore interface {
	commands.RecordReader
	commands.RecordWriter
}

// NewAnalysisPipeline builds the video analysis chain:
//
//	resolve reference -> cache check -> fetch metadata -> generate
//	summary -> assemble record -> persist -> usage event
//
// A cache hit publishes the stored record, which turns every later step
// non executable, so repeat requests cost a single store read. The sink
// may be nil when no warehouse is configured.
func NewAnalysisPipeline(
	store AnalysisStore,
	metadata commands.MetadataProvider,
	generator commands.TextGenerator,
	sink commands.EventSink,
	summaryPrompt string,
) (cor.Chain, error) {
	summaryCreator, err := commands.NewVideoSummaryCreator("video-summary-creator", generator, summaryPrompt)
	if err != nil {
		return nil, err
	}

	chain := cor.NewBaseChain("analysis-pipeline")
	chain.AddCommand(commands.NewVideoRefResolver("video-ref-resolver"))
	chain.AddCommand(commands.NewAnalysisCacheCheck("analysis-cache-check", store))
	chain.AddCommand(commands.NewVideoMetadataFetch("video-metadata-fetch", metadata))
	chain.AddCommand(summaryCreator)
	chain.AddCommand(commands.NewAnalysisAssembly("analysis-assembly"))
	chain.AddCommand(commands.NewAnalysisPersist("analysis-persist", store))
	if sink != nil {
		chain.AddCommand(commands.NewUsageEventSink("usage-event-sink", sink))
	}
	return chain, nil
}
