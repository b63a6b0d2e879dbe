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

package cloud_test

import (
	"context"
	"testing"

	"github.com/jaycherian/gcp-go-video-insights/internal/cloud"
	"github.com/stretchr/testify/assert"
)

// TestQuotaAwareModelThrottleConfig verifies the client side limiter is
// sized from the configured rate: the configured burst is available
// immediately and the next request has to wait.
func TestQuotaAwareModelThrottleConfig(t *testing.T) {
	model := cloud.NewQuotaAwareModel(nil, "gemini-2.0-flash", nil, 2)

	assert.Equal(t, 2, model.RateLimit.Burst())
	assert.True(t, model.RateLimit.Allow())
	assert.True(t, model.RateLimit.Allow())
	assert.False(t, model.RateLimit.Allow())
}

// TestQuotaAwareModelHonorsCancelledContext verifies that a caller that has
// given up is released while waiting for a summarization slot instead of
// sleeping through to the model call.
func TestQuotaAwareModelHonorsCancelledContext(t *testing.T) {
	model := cloud.NewQuotaAwareModel(nil, "gemini-2.0-flash", nil, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := model.GenerateContent(ctx, cloud.NewTextPart("hello"))
	assert.Error(t, err)
	assert.Nil(t, resp)
}
