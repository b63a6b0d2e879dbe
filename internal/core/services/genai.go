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

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/jaycherian/gcp-go-video-insights/internal/cloud"
	"github.com/jaycherian/gcp-go-video-insights/internal/telemetry"
)

// GenAITextService generates text with a quota aware Gemini model and
// tracks token usage and retries.
type GenAITextService struct {
	model              *cloud.QuotaAwareGenerativeAIModel
	inputTokenCounter  metric.Int64Counter
	outputTokenCounter metric.Int64Counter
	retryCounter       metric.Int64Counter
}

func NewGenAITextService(model *cloud.QuotaAwareGenerativeAIModel) *GenAITextService {
	meter := otel.Meter(telemetry.MeterScope)
	inputTokenCounter, _ := meter.Int64Counter("genai_input_tokens")
	outputTokenCounter, _ := meter.Int64Counter("genai_output_tokens")
	retryCounter, _ := meter.Int64Counter("genai_retries")
	return &GenAITextService{
		model:              model,
		inputTokenCounter:  inputTokenCounter,
		outputTokenCounter: outputTokenCounter,
		retryCounter:       retryCounter,
	}
}

func (g *GenAITextService) GenerateText(ctx context.Context, prompt string) (string, error) {
	return cloud.GenerateTextResponse(
		ctx,
		g.inputTokenCounter,
		g.outputTokenCounter,
		g.retryCounter,
		0,
		g.model,
		cloud.NewTextPart(prompt))
}
