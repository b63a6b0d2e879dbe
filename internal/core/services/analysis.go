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

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jaycherian/gcp-go-video-insights/internal/core/commands"
	"github.com/jaycherian/gcp-go-video-insights/internal/core/cor"
	"github.com/jaycherian/gcp-go-video-insights/internal/core/model"
)

// HistoryLister lists a user's analysis records, newest first.
type HistoryLister interface {
	History(ctx context.Context, userID string) ([]*model.AnalysisRecord, error)
}

// AnalysisService is the request facing facade over the analysis pipeline
// and the record store. One value serves all requests; per request state
// lives in the chain context.
type AnalysisService struct {
	pipeline cor.Chain
	history  HistoryLister
}

func NewAnalysisService(pipeline cor.Chain, history HistoryLister) *AnalysisService {
	return &AnalysisService{pipeline: pipeline, history: history}
}

// Analyze runs the pipeline for one request and returns the resulting
// record, cached or fresh. Failures come back as one of the model error
// sentinels so callers can map them to a response code.
func (s *AnalysisService) Analyze(ctx context.Context, request model.AnalysisRequest) (*model.AnalysisRecord, error) {
	chainCtx := cor.NewBaseContext()
	chainCtx.SetContext(ctx)
	chainCtx.Add(cor.CtxIn, request.VideoRef)
	chainCtx.Add(commands.ParamUserID, request.UserID)
	chainCtx.Add(commands.ParamUserEmail, request.UserEmail)

	s.pipeline.Execute(chainCtx)

	if chainCtx.HasErrors() {
		return nil, classifyChainErrors(chainCtx.GetErrors())
	}
	record, ok := chainCtx.Get(commands.ParamRecord).(*model.AnalysisRecord)
	if !ok {
		return nil, fmt.Errorf("%w: pipeline produced no record", model.ErrUpstream)
	}
	return record, nil
}

// History returns the caller facing projection of the user's most recent
// analyses. A user with no history gets an empty slice.
func (s *AnalysisService) History(ctx context.Context, userID string) ([]*model.HistoryEntry, error) {
	records, err := s.history.History(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries := make([]*model.HistoryEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, &model.HistoryEntry{
			Id:           record.Id,
			Title:        record.VideoDetails.Title,
			Timestamp:    record.CreatedAt.Format(time.RFC3339),
			VideoId:      record.VideoId,
			ChannelTitle: record.VideoDetails.ChannelTitle,
			ViewCount:    record.VideoDetails.ViewCount,
		})
	}
	return entries, nil
}

// classifyChainErrors picks the most specific sentinel recorded on the
// chain. Validation and not-found outcomes win over generic upstream
// failures; anything unrecognized is reported as upstream.
func classifyChainErrors(chainErrors map[string]error) error {
	var fallback error
	for _, err := range chainErrors {
		if errors.Is(err, model.ErrInvalidVideoReference) || errors.Is(err, model.ErrVideoNotFound) {
			return err
		}
		fallback = err
	}
	if fallback == nil {
		return model.ErrUpstream
	}
	if errors.Is(fallback, model.ErrUpstream) {
		return fallback
	}
	return fmt.Errorf("%w: %v", model.ErrUpstream, fallback)
}
