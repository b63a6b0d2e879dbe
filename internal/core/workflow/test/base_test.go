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

// Package workflow_test contains tests for the analysis pipeline. This
// file provides the shared setup: tracing, a test configuration, and the
// in-memory fakes standing in for the cloud providers.
package workflow_test

import (
	"context"
	"strings"
	"sync"

	"github.com/jaycherian/gcp-go-video-insights/internal/core/model"
	test "github.com/jaycherian/gcp-go-video-insights/internal/testutil"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
)

const tName = "cloud.google.com/video-insights/tests/workflow"

var (
	ctx    = context.Background()
	config = test.GetTestConfig()
	tracer = otel.Tracer(tName)
	logger = otelslog.NewLogger(tName)
)

// fakeStore is an in-memory analysis record store. It counts reads and
// writes so tests can assert how often the pipeline touched it.
type fakeStore struct {
	mu      sync.Mutex
	records map[string]*model.AnalysisRecord
	getErr  error
	putErr  error
	gets    int
	puts    int
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string]*model.AnalysisRecord)}
}

func (f *fakeStore) key(userID, videoID string) string {
	return userID + "/" + videoID
}

func (f *fakeStore) Get(_ context.Context, userID string, videoID string) (*model.AnalysisRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.records[f.key(userID, videoID)], nil
}

func (f *fakeStore) Put(_ context.Context, userID string, _ string, record *model.AnalysisRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts++
	if f.putErr != nil {
		return f.putErr
	}
	f.records[f.key(userID, record.VideoId)] = record
	return nil
}

// fakeMetadata serves a single canned metadata value or a fixed error.
type fakeMetadata struct {
	metadata *model.VideoMetadata
	err      error
	calls    int
}

func (f *fakeMetadata) Lookup(_ context.Context, _ string) (*model.VideoMetadata, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.metadata, nil
}

// fakeGenerator returns canned model output. It records the last prompt so
// tests can check the template rendering.
type fakeGenerator struct {
	text       string
	err        error
	calls      int
	lastPrompt string
}

func (f *fakeGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

// fakeSink collects usage events.
type fakeSink struct {
	events []*model.AnalysisEvent
	err    error
}

func (f *fakeSink) Insert(_ context.Context, event *model.AnalysisEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

// promptMentions reports whether the rendered prompt contains the value.
func promptMentions(prompt string, value string) bool {
	return strings.Contains(prompt, value)
}
