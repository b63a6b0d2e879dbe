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

	"github.com/jaycherian/gcp-go-video-insights/internal/core/cor"
	"github.com/jaycherian/gcp-go-video-insights/internal/core/model"
)

// MetadataProvider resolves a video id to its public metadata. Lookup
// returns an error wrapping model.ErrVideoNotFound when the id does not
// exist upstream.
type MetadataProvider interface {
	Lookup(ctx context.Context, videoID string) (*model.VideoMetadata, error)
}

// VideoMetadataFetch retrieves metadata for the resolved video. It only
// runs when no cached record satisfied the request.
type VideoMetadataFetch struct {
	cor.BaseCommand
	provider MetadataProvider
}

func NewVideoMetadataFetch(name string, provider MetadataProvider) *VideoMetadataFetch {
	return &VideoMetadataFetch{
		BaseCommand: *cor.NewBaseCommand(name),
		provider:    provider,
	}
}

func (v *VideoMetadataFetch) IsExecutable(context cor.Context) bool {
	return context.Get(ParamVideoID) != nil && context.Get(ParamRecord) == nil
}

func (v *VideoMetadataFetch) Execute(context cor.Context) {
	videoID := context.Get(ParamVideoID).(string)

	metadata, err := v.provider.Lookup(context.GetContext(), videoID)
	if err != nil {
		context.AddError(v.GetName(), err)
		v.GetErrorCounter().Add(context.GetContext(), 1)
		return
	}
	context.Add(ParamMetadata, metadata)
	context.Add(v.GetOutputParam(), metadata)
	v.GetSuccessCounter().Add(context.GetContext(), 1)
}
