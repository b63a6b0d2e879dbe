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

// Package services holds the concrete cloud backed implementations behind
// the pipeline's provider interfaces, plus the request facing facade.
package services

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jaycherian/gcp-go-video-insights/internal/cloud"
	"github.com/jaycherian/gcp-go-video-insights/internal/core/model"
)

// HistoryLimit caps the number of records the history operation returns.
// Older records stay in the store; they are simply not listed.
const HistoryLimit = 50

// FirestoreAnalysisStore keeps analysis records in Firestore, one document
// per (user, video) pair under the owning user's document. The layout is
//
//	{users}/{userId}/{analyses}/{videoId}
//
// so a point read answers the cache check and the videoId keys give
// last-write-wins convergence for concurrent first analyses of a pair.
type FirestoreAnalysisStore struct {
	client             *firestore.Client
	userCollection     string
	analysisCollection string
}

func NewFirestoreAnalysisStore(client *firestore.Client, config cloud.FirestoreDataSource) *FirestoreAnalysisStore {
	return &FirestoreAnalysisStore{
		client:             client,
		userCollection:     config.UserCollection,
		analysisCollection: config.AnalysisCollection,
	}
}

func (s *FirestoreAnalysisStore) recordRef(userID string, videoID string) *firestore.DocumentRef {
	return s.client.
		Collection(s.userCollection).
		Doc(userID).
		Collection(s.analysisCollection).
		Doc(videoID)
}

// Get returns the stored record for the pair, or (nil, nil) when none
// exists.
func (s *FirestoreAnalysisStore) Get(ctx context.Context, userID string, videoID string) (*model.AnalysisRecord, error) {
	snapshot, err := s.recordRef(userID, videoID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis record: %w", err)
	}
	record := &model.AnalysisRecord{}
	if err := snapshot.DataTo(record); err != nil {
		return nil, fmt.Errorf("failed to decode analysis record: %w", err)
	}
	return record, nil
}

// Put stores the record and refreshes the owning user profile. The profile
// write uses a merge set so fields written by other systems survive.
func (s *FirestoreAnalysisStore) Put(ctx context.Context, userID string, userEmail string, record *model.AnalysisRecord) error {
	// MergeAll requires map data.
	profile := map[string]interface{}{
		"email":     userEmail,
		"updatedAt": time.Now(),
	}
	userRef := s.client.Collection(s.userCollection).Doc(userID)
	if _, err := userRef.Set(ctx, profile, firestore.MergeAll); err != nil {
		return fmt.Errorf("failed to upsert user profile: %w", err)
	}
	if _, err := s.recordRef(userID, record.VideoId).Set(ctx, record); err != nil {
		return fmt.Errorf("failed to write analysis record: %w", err)
	}
	return nil
}

// History lists the user's analysis records newest first, capped at
// HistoryLimit. A user with no records gets an empty slice, not an error.
func (s *FirestoreAnalysisStore) History(ctx context.Context, userID string) ([]*model.AnalysisRecord, error) {
	iter := s.client.
		Collection(s.userCollection).
		Doc(userID).
		Collection(s.analysisCollection).
		OrderBy("createdAt", firestore.Desc).
		Limit(HistoryLimit).
		Documents(ctx)
	defer iter.Stop()

	records := make([]*model.AnalysisRecord, 0)
	for {
		snapshot, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list analysis records: %w", err)
		}
		record := &model.AnalysisRecord{}
		if err := snapshot.DataTo(record); err != nil {
			return nil, fmt.Errorf("failed to decode analysis record: %w", err)
		}
		records = append(records, record)
	}
	return records, nil
}
