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

// Package api_test tests the REST surface with an in-process router and a
// stubbed service: identity enforcement, status mapping, and response
// shapes.
package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/jaycherian/gcp-go-video-insights/internal/api"
	"github.com/jaycherian/gcp-go-video-insights/internal/core/model"
)

type stubAnalyzer struct {
	record      *model.AnalysisRecord
	analyzeErr  error
	entries     []*model.HistoryEntry
	historyErr  error
	lastRequest model.AnalysisRequest
}

func (s *stubAnalyzer) Analyze(_ context.Context, request model.AnalysisRequest) (*model.AnalysisRecord, error) {
	s.lastRequest = request
	if s.analyzeErr != nil {
		return nil, s.analyzeErr
	}
	return s.record, nil
}

func (s *stubAnalyzer) History(_ context.Context, _ string) ([]*model.HistoryEntry, error) {
	return s.entries, s.historyErr
}

type stubStats struct {
	stats *model.UsageStats
	err   error
}

func (s *stubStats) GetUsageStats(_ context.Context) (*model.UsageStats, error) {
	return s.stats, s.err
}

func newRouter(analyzer *stubAnalyzer, stats *stubStats) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/api/v1")
	api.AnalysisRouter(group, analyzer)
	api.StatsRouter(group, stats)
	return r
}

func doRequest(r *gin.Engine, method string, path string, body string, identified bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if identified {
		req.Header.Set(api.HeaderUserID, "user-001")
		req.Header.Set(api.HeaderUserEmail, "user-001@example.com")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyzeRequiresIdentity(t *testing.T) {
	r := newRouter(&stubAnalyzer{}, &stubStats{})

	w := doRequest(r, http.MethodPost, "/api/v1/analyses", `{"videoId":"x"}`, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, http.MethodGet, "/api/v1/analyses", "", false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAnalyzeRejectsMissingBody(t *testing.T) {
	r := newRouter(&stubAnalyzer{}, &stubStats{})

	w := doRequest(r, http.MethodPost, "/api/v1/analyses", `{}`, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeReturnsSummary(t *testing.T) {
	analyzer := &stubAnalyzer{record: model.GetExampleRecord("user-001")}
	r := newRouter(analyzer, &stubStats{})

	w := doRequest(r, http.MethodPost, "/api/v1/analyses", `{"videoId":"https://youtu.be/dQw4w9WgXcQ"}`, true)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "summary")
	assert.Contains(t, body, "videoDetails")

	// The identity headers flow into the service request untouched.
	assert.Equal(t, "user-001", analyzer.lastRequest.UserID)
	assert.Equal(t, "user-001@example.com", analyzer.lastRequest.UserEmail)
	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", analyzer.lastRequest.VideoRef)

	// The description never leaves the service.
	assert.NotContains(t, w.Body.String(), "description")
}

func TestAnalyzeStatusMapping(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		message string
	}{
		{model.ErrInvalidVideoReference, http.StatusBadRequest, "Invalid video reference"},
		{model.ErrVideoNotFound, http.StatusNotFound, "Video not found"},
		{model.ErrUpstream, http.StatusBadGateway, "Unable to analyze video"},
	}
	for _, tc := range cases {
		r := newRouter(&stubAnalyzer{analyzeErr: tc.err}, &stubStats{})
		w := doRequest(r, http.MethodPost, "/api/v1/analyses", `{"videoId":"https://youtu.be/dQw4w9WgXcQ"}`, true)
		assert.Equal(t, tc.status, w.Code)
		assert.Contains(t, w.Body.String(), tc.message)
	}
}

func TestHistoryReturnsEntries(t *testing.T) {
	analyzer := &stubAnalyzer{entries: []*model.HistoryEntry{{
		Id:      "record-1",
		Title:   "Never Gonna Give You Up",
		VideoId: "dQw4w9WgXcQ",
	}}}
	r := newRouter(analyzer, &stubStats{})

	w := doRequest(r, http.MethodGet, "/api/v1/analyses", "", true)
	assert.Equal(t, http.StatusOK, w.Code)

	var entries []*model.HistoryEntry
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	assert.Len(t, entries, 1)
	assert.Equal(t, "dQw4w9WgXcQ", entries[0].VideoId)
}

func TestHistoryEmptyIsAnArray(t *testing.T) {
	r := newRouter(&stubAnalyzer{entries: []*model.HistoryEntry{}}, &stubStats{})

	w := doRequest(r, http.MethodGet, "/api/v1/analyses", "", true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestStats(t *testing.T) {
	stats := &stubStats{stats: &model.UsageStats{TotalAnalyses: 10, DistinctUsers: 3, LastDay: 2}}
	r := newRouter(&stubAnalyzer{}, stats)

	w := doRequest(r, http.MethodGet, "/api/v1/stats", "", false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "total_analyses")
}
