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

// RecordWriter is the write side of the analysis record store. Put stores
// the record under the (user, video) pair and refreshes the owning user
// profile in the same call.
type RecordWriter interface {
	Put(ctx context.Context, userID string, userEmail string, record *model.AnalysisRecord) error
}

// AnalysisPersist writes a freshly assembled record to the durable store.
// Persistence is best effort: a write failure is logged and counted but
// never fails the request, the caller still receives the analysis.
type AnalysisPersist struct {
	cor.BaseCommand
	store RecordWriter
}

func NewAnalysisPersist(name string, store RecordWriter) *AnalysisPersist {
	return &AnalysisPersist{
		BaseCommand: *cor.NewBaseCommand(name),
		store:       store,
	}
}

func (a *AnalysisPersist) IsExecutable(context cor.Context) bool {
	return context.Get(ParamFreshRecord) != nil && context.Get(ParamRecord) != nil
}

func (a *AnalysisPersist) Execute(context cor.Context) {
	userID := context.Get(ParamUserID).(string)
	userEmail, _ := context.Get(ParamUserEmail).(string)
	record := context.Get(ParamRecord).(*model.AnalysisRecord)

	if err := a.store.Put(context.GetContext(), userID, userEmail, record); err != nil {
		slog.Error("failed to persist analysis record",
			slog.String("video_id", record.VideoId),
			slog.String("error", err.Error()))
		a.GetErrorCounter().Add(context.GetContext(), 1)
		return
	}
	context.Add(a.GetOutputParam(), record)
	a.GetSuccessCounter().Add(context.GetContext(), 1)
}
