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
	"github.com/jaycherian/gcp-go-video-insights/internal/core/cor"
	"github.com/jaycherian/gcp-go-video-insights/internal/core/model"
)

// AnalysisAssembly combines the fetched metadata and the generated summary
// into a durable record. It marks the record as fresh so the persistence
// commands run; cache hits never reach this step and keep their original
// record untouched.
type AnalysisAssembly struct {
	cor.BaseCommand
}

func NewAnalysisAssembly(name string) *AnalysisAssembly {
	return &AnalysisAssembly{BaseCommand: *cor.NewBaseCommand(name)}
}

func (a *AnalysisAssembly) IsExecutable(context cor.Context) bool {
	return context.Get(ParamSummary) != nil && context.Get(ParamRecord) == nil
}

func (a *AnalysisAssembly) Execute(context cor.Context) {
	userID := context.Get(ParamUserID).(string)
	videoID := context.Get(ParamVideoID).(string)
	metadata := context.Get(ParamMetadata).(*model.VideoMetadata)
	summary := context.Get(ParamSummary).(string)

	record := model.NewAnalysisRecord(userID, videoID)
	record.Summary = summary
	record.VideoDetails = *metadata

	context.Add(ParamRecord, record)
	context.Add(ParamFreshRecord, true)
	context.Add(a.GetOutputParam(), record)
	a.GetSuccessCounter().Add(context.GetContext(), 1)
}
