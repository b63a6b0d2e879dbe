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

// EventSink records one usage event per fresh analysis for offline
// reporting.
type EventSink interface {
	Insert(ctx context.Context, event *model.AnalysisEvent) error
}

// UsageEventSink emits an analysis event to the warehouse after a fresh
// record is assembled. Like persistence it is best effort and never fails
// the request. Cache hits emit nothing.
type UsageEventSink struct {
	cor.BaseCommand
	sink EventSink
}

func NewUsageEventSink(name string, sink EventSink) *UsageEventSink {
	return &UsageEventSink{
		BaseCommand: *cor.NewBaseCommand(name),
		sink:        sink,
	}
}

func (u *UsageEventSink) IsExecutable(context cor.Context) bool {
	return context.Get(ParamFreshRecord) != nil && context.Get(ParamRecord) != nil
}

func (u *UsageEventSink) Execute(context cor.Context) {
	userID := context.Get(ParamUserID).(string)
	record := context.Get(ParamRecord).(*model.AnalysisRecord)

	event := model.NewAnalysisEvent(userID, record)
	if err := u.sink.Insert(context.GetContext(), event); err != nil {
		slog.Error("failed to record usage event",
			slog.String("video_id", record.VideoId),
			slog.String("error", err.Error()))
		u.GetErrorCounter().Add(context.GetContext(), 1)
		return
	}
	context.Add(u.GetOutputParam(), record)
	u.GetSuccessCounter().Add(context.GetContext(), 1)
}
