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
	"fmt"
	"strconv"

	"google.golang.org/api/youtube/v3"

	"github.com/jaycherian/gcp-go-video-insights/internal/core/model"
)

// YouTubeMetadataService resolves video ids against the YouTube Data API.
type YouTubeMetadataService struct {
	service *youtube.Service
}

func NewYouTubeMetadataService(service *youtube.Service) *YouTubeMetadataService {
	return &YouTubeMetadataService{service: service}
}

// Lookup fetches the snippet and statistics parts for one video. An id the
// API has no items for wraps model.ErrVideoNotFound; transport and quota
// failures wrap model.ErrUpstream.
func (y *YouTubeMetadataService) Lookup(ctx context.Context, videoID string) (*model.VideoMetadata, error) {
	response, err := y.service.Videos.
		List([]string{"snippet", "statistics"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: video metadata lookup: %v", model.ErrUpstream, err)
	}
	if len(response.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", model.ErrVideoNotFound, videoID)
	}

	item := response.Items[0]
	metadata := &model.VideoMetadata{}
	if item.Snippet != nil {
		metadata.Title = item.Snippet.Title
		metadata.ChannelTitle = item.Snippet.ChannelTitle
		metadata.PublishedAt = item.Snippet.PublishedAt
		metadata.Description = item.Snippet.Description
	}
	if item.Statistics != nil {
		metadata.ViewCount = strconv.FormatUint(item.Statistics.ViewCount, 10)
	}
	return metadata, nil
}
