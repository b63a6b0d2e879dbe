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

package commands

import (
	"context"
	"log/slog"

	"github.com/jaycherian/gcp-go-video-insights/internal/core/cor"
	"github.com/jaycherian/gcp-go-video-insights/internal/core/model"
)

// RecordReader is the read side of the analysis record store. A nil record
// with a nil error means no record exists for the pair.
type RecordReader interface {
	Get(ctx context.Context, userID string, videoID string) (*model.AnalysisRecord, error)
}

// AnalysisCacheCheck looks up an existing record for the (user, video)
// pair. On a hit it publishes the record, which makes every downstream
// command in the chain non executable and short circuits the pipeline.
// Store read failures are logged and treated as a miss so a degraded
// store never blocks a fresh analysis.
type AnalysisCacheCheck struct {
	cor.BaseCommand
	store RecordReader
}

func NewAnalysisCacheCheck(name string, store RecordReader) *AnalysisCacheCheck {
	return &AnalysisCacheCheck{
		BaseCommand: *cor.NewBaseCommand(name),
		store:       store,
	}
}

func (a *AnalysisCacheCheck) IsExecutable(context cor.Context) bool {
	return context.Get(ParamVideoID) != nil && context.Get(ParamUserID) != nil
}

func (a *AnalysisCacheCheck) Execute(context cor.Context) {
	userID := context.Get(ParamUserID).(string)
	videoID := context.Get(ParamVideoID).(string)

	record, err := a.store.Get(context.GetContext(), userID, videoID)
	if err != nil {
		slog.Warn("cache lookup failed, proceeding with fresh analysis",
			slog.String("video_id", videoID),
			slog.String("error", err.Error()))
		a.GetErrorCounter().Add(context.GetContext(), 1)
		return
	}
	if record != nil {
		context.Add(ParamRecord, record)
	}
	context.Add(a.GetOutputParam(), videoID)
	a.GetSuccessCounter().Add(context.GetContext(), 1)
}
