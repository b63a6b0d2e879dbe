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

package workflow_test

import (
	"errors"
	"testing"

	"github.com/jaycherian/gcp-go-video-insights/internal/core/commands"
	"github.com/jaycherian/gcp-go-video-insights/internal/core/cor"
	"github.com/jaycherian/gcp-go-video-insights/internal/core/model"
	"github.com/jaycherian/gcp-go-video-insights/internal/core/workflow"
	"github.com/stretchr/testify/assert"
)

const (
	testUserID   = "user-001"
	testVideoRef = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	testVideoID  = "dQw4w9WgXcQ"
)

// runPipeline builds the chain over the given fakes and executes it for
// the standard test request, returning the finished chain context.
func runPipeline(t *testing.T, store *fakeStore, metadata *fakeMetadata, generator *fakeGenerator, sink *fakeSink, videoRef string) cor.Context {
	t.Helper()

	pipeline, err := workflow.NewAnalysisPipeline(store, metadata, generator, sink, config.PromptTemplates.SummaryPrompt)
	assert.NoError(t, err)

	traceCtx, span := tracer.Start(ctx, t.Name())
	defer span.End()

	chainCtx := cor.NewBaseContext()
	chainCtx.SetContext(traceCtx)
	chainCtx.Add(cor.CtxIn, videoRef)
	chainCtx.Add(commands.ParamUserID, testUserID)
	chainCtx.Add(commands.ParamUserEmail, "user-001@example.com")

	pipeline.Execute(chainCtx)
	return chainCtx
}

// TestAnalysisPipelineFreshVideo runs the full chain for a video with no
// cached record: metadata is fetched, the summary is generated from the
// rendered prompt, and the record is persisted with a usage event.
func TestAnalysisPipelineFreshVideo(t *testing.T) {
	store := newFakeStore()
	metadata := &fakeMetadata{metadata: model.GetExampleMetadata()}
	generator := &fakeGenerator{text: "A classic music video."}
	sink := &fakeSink{}

	chainCtx := runPipeline(t, store, metadata, generator, sink, testVideoRef)

	assert.False(t, chainCtx.HasErrors())
	record, ok := chainCtx.Get(commands.ParamRecord).(*model.AnalysisRecord)
	assert.True(t, ok)
	assert.Equal(t, "A classic music video.", record.Summary)
	assert.Equal(t, testVideoID, record.VideoId)
	assert.Equal(t, metadata.metadata.Title, record.VideoDetails.Title)

	// The prompt is rendered from the metadata, description included.
	assert.True(t, promptMentions(generator.lastPrompt, metadata.metadata.Title))
	assert.True(t, promptMentions(generator.lastPrompt, metadata.metadata.Description))

	// One write, one usage event.
	assert.Equal(t, 1, store.puts)
	assert.Equal(t, 1, len(sink.events))
	assert.Equal(t, testUserID, sink.events[0].UserId)
}

// TestAnalysisPipelineCacheHit seeds the store and verifies that a repeat
// request is served from it: no metadata lookup, no generation, no write,
// and no usage event.
func TestAnalysisPipelineCacheHit(t *testing.T) {
	store := newFakeStore()
	cached := model.GetExampleRecord(testUserID)
	store.records[store.key(testUserID, testVideoID)] = cached

	metadata := &fakeMetadata{metadata: model.GetExampleMetadata()}
	generator := &fakeGenerator{text: "should never be generated"}
	sink := &fakeSink{}

	chainCtx := runPipeline(t, store, metadata, generator, sink, testVideoRef)

	assert.False(t, chainCtx.HasErrors())
	record := chainCtx.Get(commands.ParamRecord).(*model.AnalysisRecord)
	assert.Equal(t, cached.Summary, record.Summary)

	assert.Equal(t, 0, metadata.calls)
	assert.Equal(t, 0, generator.calls)
	assert.Equal(t, 0, store.puts)
	assert.Equal(t, 0, len(sink.events))
}

// TestAnalysisPipelineInvalidReference verifies that a reference that does
// not resolve stops the chain before any provider or store call.
func TestAnalysisPipelineInvalidReference(t *testing.T) {
	store := newFakeStore()
	metadata := &fakeMetadata{metadata: model.GetExampleMetadata()}
	generator := &fakeGenerator{text: "unused"}
	sink := &fakeSink{}

	chainCtx := runPipeline(t, store, metadata, generator, sink, "not a video reference")

	assert.True(t, chainCtx.HasErrors())
	found := false
	for _, err := range chainCtx.GetErrors() {
		found = found || errors.Is(err, model.ErrInvalidVideoReference)
	}
	assert.True(t, found)
	assert.Equal(t, 0, store.gets)
	assert.Equal(t, 0, metadata.calls)
	assert.Equal(t, 0, generator.calls)
}

// TestAnalysisPipelineVideoNotFound verifies that an unknown id fails the
// request without a generation attempt or any write.
func TestAnalysisPipelineVideoNotFound(t *testing.T) {
	store := newFakeStore()
	metadata := &fakeMetadata{err: model.ErrVideoNotFound}
	generator := &fakeGenerator{text: "unused"}
	sink := &fakeSink{}

	chainCtx := runPipeline(t, store, metadata, generator, sink, testVideoRef)

	assert.True(t, chainCtx.HasErrors())
	found := false
	for _, err := range chainCtx.GetErrors() {
		found = found || errors.Is(err, model.ErrVideoNotFound)
	}
	assert.True(t, found)
	assert.Equal(t, 0, generator.calls)
	assert.Equal(t, 0, store.puts)
	assert.Equal(t, 0, len(sink.events))
}

// TestAnalysisPipelineGenerationFailure verifies that a model failure is
// terminal and nothing is cached, so a later retry can succeed.
func TestAnalysisPipelineGenerationFailure(t *testing.T) {
	store := newFakeStore()
	metadata := &fakeMetadata{metadata: model.GetExampleMetadata()}
	generator := &fakeGenerator{err: errors.New("model unavailable")}
	sink := &fakeSink{}

	chainCtx := runPipeline(t, store, metadata, generator, sink, testVideoRef)

	assert.True(t, chainCtx.HasErrors())
	found := false
	for _, err := range chainCtx.GetErrors() {
		found = found || errors.Is(err, model.ErrUpstream)
	}
	assert.True(t, found)
	assert.Equal(t, 0, store.puts)
}

// TestAnalysisPipelineEmptyGeneration verifies that an empty model response
// still succeeds, with the fixed fallback text stored as the summary.
func TestAnalysisPipelineEmptyGeneration(t *testing.T) {
	store := newFakeStore()
	metadata := &fakeMetadata{metadata: model.GetExampleMetadata()}
	generator := &fakeGenerator{text: "   "}
	sink := &fakeSink{}

	chainCtx := runPipeline(t, store, metadata, generator, sink, testVideoRef)

	assert.False(t, chainCtx.HasErrors())
	record := chainCtx.Get(commands.ParamRecord).(*model.AnalysisRecord)
	assert.Equal(t, commands.FallbackSummary, record.Summary)
	assert.Equal(t, 1, store.puts)
}

// TestAnalysisPipelinePersistFailure verifies that persistence is best
// effort: a failing store write does not fail the chain and the caller
// still gets the fresh record.
func TestAnalysisPipelinePersistFailure(t *testing.T) {
	store := newFakeStore()
	store.putErr = errors.New("store unavailable")
	metadata := &fakeMetadata{metadata: model.GetExampleMetadata()}
	generator := &fakeGenerator{text: "A classic music video."}
	sink := &fakeSink{}

	chainCtx := runPipeline(t, store, metadata, generator, sink, testVideoRef)

	assert.False(t, chainCtx.HasErrors())
	record := chainCtx.Get(commands.ParamRecord).(*model.AnalysisRecord)
	assert.Equal(t, "A classic music video.", record.Summary)
}

// TestAnalysisPipelineDegradedCache verifies that a failing store read is
// treated as a miss and the pipeline still produces a fresh analysis.
func TestAnalysisPipelineDegradedCache(t *testing.T) {
	store := newFakeStore()
	store.getErr = errors.New("store unavailable")
	metadata := &fakeMetadata{metadata: model.GetExampleMetadata()}
	generator := &fakeGenerator{text: "A classic music video."}
	sink := &fakeSink{}

	chainCtx := runPipeline(t, store, metadata, generator, sink, testVideoRef)

	assert.False(t, chainCtx.HasErrors())
	record := chainCtx.Get(commands.ParamRecord).(*model.AnalysisRecord)
	assert.Equal(t, "A classic music video.", record.Summary)
	assert.Equal(t, 1, metadata.calls)
}
