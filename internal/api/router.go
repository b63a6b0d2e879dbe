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

package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jaycherian/gcp-go-video-insights/internal/core/model"
)

// Analyzer is the service surface the analysis routes depend on.
type Analyzer interface {
	Analyze(ctx context.Context, request model.AnalysisRequest) (*model.AnalysisRecord, error)
	History(ctx context.Context, userID string) ([]*model.HistoryEntry, error)
}

// StatsProvider answers the aggregate usage query.
type StatsProvider interface {
	GetUsageStats(ctx context.Context) (*model.UsageStats, error)
}

// analyzeRequest is the body of POST /analyses. VideoId carries the raw
// reference, URL or otherwise; resolution happens inside the pipeline.
type analyzeRequest struct {
	VideoId string `json:"videoId" binding:"required"`
}

// analyzeResponse is the success body of POST /analyses. The stored record
// id and creation time are deliberately not exposed here; history carries
// them.
type analyzeResponse struct {
	Summary      string              `json:"summary"`
	VideoDetails model.VideoMetadata `json:"videoDetails"`
}

// AnalysisRouter registers the identity guarded analysis routes.
//
//   - POST /analyses: analyze a video reference for the calling user.
//   - GET  /analyses: list the calling user's most recent analyses.
func AnalysisRouter(r *gin.RouterGroup, service Analyzer) {
	analyses := r.Group("/analyses")
	analyses.Use(RequireIdentity())
	{
		analyses.POST("", func(c *gin.Context) {
			var body analyzeRequest
			if err := c.ShouldBindJSON(&body); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
				return
			}
			request := model.AnalysisRequest{
				UserID:    c.GetString(ContextUserID),
				UserEmail: c.GetString(ContextUserEmail),
				VideoRef:  body.VideoId,
			}
			record, err := service.Analyze(c.Request.Context(), request)
			if err != nil {
				status, message := classifyError(err)
				// The cause stays in the logs; callers get a stable message.
				slog.Error("analyze request failed",
					slog.String("user_id", request.UserID),
					slog.Int("status", status),
					slog.String("error", err.Error()))
				c.JSON(status, gin.H{"error": message})
				return
			}
			c.JSON(http.StatusOK, analyzeResponse{
				Summary:      record.Summary,
				VideoDetails: record.VideoDetails,
			})
		})

		analyses.GET("", func(c *gin.Context) {
			userID := c.GetString(ContextUserID)
			entries, err := service.History(c.Request.Context(), userID)
			if err != nil {
				slog.Error("history request failed",
					slog.String("user_id", userID),
					slog.String("error", err.Error()))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
				return
			}
			c.JSON(http.StatusOK, entries)
		})
	}
}

// StatsRouter registers the usage reporting route. It sits outside the
// identity guard; the numbers are aggregates with no per-user data.
func StatsRouter(r *gin.RouterGroup, provider StatsProvider) {
	r.GET("/stats", func(c *gin.Context) {
		stats, err := provider.GetUsageStats(c.Request.Context())
		if err != nil {
			slog.Error("stats request failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})
}

// classifyError maps a service error to the response status and the fixed,
// non-leaking message for that failure class.
func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrInvalidVideoReference):
		return http.StatusBadRequest, "Invalid video reference"
	case errors.Is(err, model.ErrVideoNotFound):
		return http.StatusNotFound, "Video not found"
	default:
		return http.StatusBadGateway, "Unable to analyze video"
	}
}
