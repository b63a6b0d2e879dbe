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

package cloud

import (
	"context"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// QuotaAwareGenerativeAIModel wraps a Vertex AI model handle with a client
// side rate limiter so bursts of summary requests do not trip the per-minute
// quota on the model endpoint.
type QuotaAwareGenerativeAIModel struct {
	GenerativeContentConfig *genai.GenerateContentConfig // Generation parameters (temperature, token limits, safety).
	ModelName               string
	ModelHandle             *genai.Models
	RateLimit               rate.Limiter // Controls request frequency against the model endpoint.
}

func NewQuotaAwareModel(wrapped *genai.GenerateContentConfig, name string, modelHandle *genai.Models, requestsPerSecond int) *QuotaAwareGenerativeAIModel {
	return &QuotaAwareGenerativeAIModel{
		GenerativeContentConfig: wrapped,
		ModelName:               name,
		ModelHandle:             modelHandle,
		RateLimit:               *rate.NewLimiter(rate.Every(time.Second), requestsPerSecond),
	}
}

// GenerateContent waits for a limiter token and forwards to the underlying
// model. The wait honors the request context, so a caller that gives up
// does not hold a summarization slot. Retry policy belongs to the caller;
// GenerateTextResponse retries with a short backoff.
func (q *QuotaAwareGenerativeAIModel) GenerateContent(ctx context.Context, content []*genai.Content) (*genai.GenerateContentResponse, error) {
	if err := q.RateLimit.Wait(ctx); err != nil {
		return nil, err
	}
	return q.ModelHandle.GenerateContent(ctx, q.ModelName, content, q.GenerativeContentConfig)
}
