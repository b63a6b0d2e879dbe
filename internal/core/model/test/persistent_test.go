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

// Package model_test contains unit tests for the data models, covering the
// constructors of the persistent types.
package model_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jaycherian/gcp-go-video-insights/internal/core/model"
	"github.com/stretchr/testify/assert"
)

// TestNewAnalysisRecord verifies that the record id is derived
// deterministically from the (user, video) pair, so two concurrent
// computations of the same pair produce the same identity, and that the
// creation timestamp is set to the current time.
func TestNewAnalysisRecord(t *testing.T) {
	userID := "user-001"
	videoID := "dQw4w9WgXcQ"

	record := model.NewAnalysisRecord(userID, videoID)

	expectedID := uuid.NewSHA1(uuid.NameSpaceURL, []byte(userID+"/"+videoID))
	assert.Equal(t, expectedID.String(), record.Id)
	assert.Equal(t, videoID, record.VideoId)
	assert.WithinDuration(t, time.Now(), record.CreatedAt, time.Second)

	// The same pair converges on the same id; a different owner does not.
	assert.Equal(t, record.Id, model.NewAnalysisRecord(userID, videoID).Id)
	assert.NotEqual(t, record.Id, model.NewAnalysisRecord("user-002", videoID).Id)
	assert.NotEqual(t, record.Id, model.NewAnalysisRecord(userID, "aaaaaaaaaaa").Id)
}

// TestNewAnalysisEvent verifies that the usage event carries the owning
// user and the record's fields, with no summary text.
func TestNewAnalysisEvent(t *testing.T) {
	userID := "user-001"
	record := model.GetExampleRecord(userID)

	event := model.NewAnalysisEvent(userID, record)

	assert.Equal(t, userID, event.UserId)
	assert.Equal(t, record.VideoId, event.VideoId)
	assert.Equal(t, record.VideoDetails.ChannelTitle, event.ChannelTitle)
	assert.Equal(t, record.CreatedAt, event.CreatedAt)
}
