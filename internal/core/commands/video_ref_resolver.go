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
	"fmt"
	"regexp"

	"github.com/jaycherian/gcp-go-video-insights/internal/core/cor"
	"github.com/jaycherian/gcp-go-video-insights/internal/core/model"
)

// videoRefPattern matches the URL shapes the service accepts: youtu.be
// short links, /v/ and /u/<char>/ paths, /embed/ paths, and watch URLs
// with the id in the v query parameter. The greedy anchored prefix makes
// the last marker in the reference the one that counts, so a v query
// parameter wins over an earlier path segment. Group 2 captures the
// candidate id.
var videoRefPattern = regexp.MustCompile(`^.*(youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)

// videoIDLength is the fixed width of a valid video identifier. Candidates
// of any other length are rejected rather than passed downstream.
const videoIDLength = 11

// ResolveVideoID extracts the canonical 11 character video id from a user
// supplied reference. Bare tokens without one of the recognized URL markers
// do not resolve, even when they happen to be 11 characters long.
func ResolveVideoID(ref string) (string, error) {
	match := videoRefPattern.FindStringSubmatch(ref)
	if match == nil || len(match[2]) != videoIDLength {
		return "", fmt.Errorf("%w: %q", model.ErrInvalidVideoReference, ref)
	}
	return match[2], nil
}

// VideoRefResolver is the first command of the analysis chain. It validates
// the raw reference from the request and publishes the resolved id for the
// rest of the pipeline.
type VideoRefResolver struct {
	cor.BaseCommand
}

func NewVideoRefResolver(name string) *VideoRefResolver {
	return &VideoRefResolver{BaseCommand: *cor.NewBaseCommand(name)}
}

func (v *VideoRefResolver) Execute(context cor.Context) {
	ref, ok := context.Get(v.GetInputParam()).(string)
	if !ok {
		context.AddError(v.GetName(), fmt.Errorf("%w: reference is not a string", model.ErrInvalidVideoReference))
		v.GetErrorCounter().Add(context.GetContext(), 1)
		return
	}
	videoID, err := ResolveVideoID(ref)
	if err != nil {
		context.AddError(v.GetName(), err)
		v.GetErrorCounter().Add(context.GetContext(), 1)
		return
	}
	context.Add(ParamVideoID, videoID)
	context.Add(v.GetOutputParam(), videoID)
	v.GetSuccessCounter().Add(context.GetContext(), 1)
}
