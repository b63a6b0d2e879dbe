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
	"fmt"
	"strings"
	"text/template"

	"github.com/jaycherian/gcp-go-video-insights/internal/core/cor"
	"github.com/jaycherian/gcp-go-video-insights/internal/core/model"
)

// TextGenerator produces model output for a rendered prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// FallbackSummary is stored when the model responds successfully but
// returns no usable text. The request still succeeds and the record is
// cached like any other.
const FallbackSummary = "A summary could not be generated for this video."

// VideoSummaryCreator renders the summary prompt from the video metadata
// and asks the language model for a summary. Generation failures are
// terminal for the request; an empty generation is not.
type VideoSummaryCreator struct {
	cor.BaseCommand
	generator      TextGenerator
	promptTemplate *template.Template
}

func NewVideoSummaryCreator(name string, generator TextGenerator, promptTemplate string) (*VideoSummaryCreator, error) {
	tmpl, err := template.New(name).Parse(promptTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse summary prompt template: %w", err)
	}
	return &VideoSummaryCreator{
		BaseCommand:    *cor.NewBaseCommand(name),
		generator:      generator,
		promptTemplate: tmpl,
	}, nil
}

func (v *VideoSummaryCreator) IsExecutable(context cor.Context) bool {
	return context.Get(ParamMetadata) != nil && context.Get(ParamRecord) == nil
}

func (v *VideoSummaryCreator) Execute(context cor.Context) {
	metadata := context.Get(ParamMetadata).(*model.VideoMetadata)

	prompt := new(strings.Builder)
	if err := v.promptTemplate.Execute(prompt, metadata); err != nil {
		context.AddError(v.GetName(), fmt.Errorf("%w: prompt rendering failed: %v", model.ErrUpstream, err))
		v.GetErrorCounter().Add(context.GetContext(), 1)
		return
	}

	summary, err := v.generator.GenerateText(context.GetContext(), prompt.String())
	if err != nil {
		context.AddError(v.GetName(), fmt.Errorf("%w: %v", model.ErrUpstream, err))
		v.GetErrorCounter().Add(context.GetContext(), 1)
		return
	}
	if strings.TrimSpace(summary) == "" {
		summary = FallbackSummary
	}
	context.Add(ParamSummary, summary)
	context.Add(v.GetOutputParam(), summary)
	v.GetSuccessCounter().Add(context.GetContext(), 1)
}
