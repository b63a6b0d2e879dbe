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

// Package model defines the data types of the analysis subsystem. This
// file holds the transient types: values that flow through a single
// analyze call or response and are never stored on their own.
package model

// VideoMetadata holds the authoritative metadata for a video as reported by
// the upstream provider. Fields absent in the upstream response stay empty;
// nothing is defaulted. ViewCount is transmitted as text end-to-end, which
// is how the provider reports it.
//
// Description is used only to build the summarization prompt; it is neither
// returned to callers nor persisted with the record.
type VideoMetadata struct {
	Title        string `json:"title" firestore:"title"`
	ChannelTitle string `json:"channelTitle" firestore:"channelTitle"`
	PublishedAt  string `json:"publishedAt" firestore:"publishedAt"`
	ViewCount    string `json:"viewCount" firestore:"viewCount"`
	Description  string `json:"-" firestore:"-"`
}

// AnalysisRequest is the input to one analyze call. The identity fields come
// from the request metadata and are trusted as given; VideoRef is the raw,
// unvalidated reference supplied by the user.
type AnalysisRequest struct {
	UserID    string
	UserEmail string
	VideoRef  string
}

// HistoryEntry is the projection of an analysis record returned by the
// history operation.
type HistoryEntry struct {
	Id           string `json:"id"`
	Title        string `json:"title"`
	Timestamp    string `json:"timestamp"`
	VideoId      string `json:"videoId"`
	ChannelTitle string `json:"channelTitle"`
	ViewCount    string `json:"viewCount"`
}

// UsageStats is the aggregate returned by the stats endpoint, computed from
// the BigQuery usage events.
type UsageStats struct {
	TotalAnalyses int64 `json:"total_analyses" bigquery:"total_analyses"`
	DistinctUsers int64 `json:"distinct_users" bigquery:"distinct_users"`
	LastDay       int64 `json:"last_day" bigquery:"last_day"`
}
