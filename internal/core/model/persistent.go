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

// This file holds the persistent types: the analysis record stored in
// Firestore and the usage event streamed to BigQuery.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisRecord is the persisted result of one successful analysis for one
// (user, video) pair. Records are written once and never updated; a repeat
// analysis of the same pair is served from the stored record.
type AnalysisRecord struct {
	Id           string        `json:"id" firestore:"id"`
	VideoId      string        `json:"videoId" firestore:"videoId"`
	Summary      string        `json:"summary" firestore:"summary"`
	VideoDetails VideoMetadata `json:"videoDetails" firestore:"videoDetails"`
	CreatedAt    time.Time     `json:"createdAt" firestore:"createdAt"`
}

// NewAnalysisRecord creates a record for the given owner and video. The id
// is derived deterministically from the (user, video) pair, so concurrent
// computations of the same pair converge on the same identity.
func NewAnalysisRecord(userID string, videoID string) *AnalysisRecord {
	return &AnalysisRecord{
		Id:        uuid.NewSHA1(uuid.NameSpaceURL, []byte(userID+"/"+videoID)).String(),
		VideoId:   videoID,
		CreatedAt: time.Now(),
	}
}

// AnalysisEvent is one row in the BigQuery usage table, written best-effort
// for every freshly computed analysis. It carries no summary text; it exists
// only to answer aggregate questions about service usage.
type AnalysisEvent struct {
	UserId       string    `bigquery:"user_id"`
	VideoId      string    `bigquery:"video_id"`
	ChannelTitle string    `bigquery:"channel_title"`
	CreatedAt    time.Time `bigquery:"created_at"`
}

// NewAnalysisEvent derives the usage event for a just-persisted record.
func NewAnalysisEvent(userID string, record *AnalysisRecord) *AnalysisEvent {
	return &AnalysisEvent{
		UserId:       userID,
		VideoId:      record.VideoId,
		ChannelTitle: record.VideoDetails.ChannelTitle,
		CreatedAt:    record.CreatedAt,
	}
}
