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
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"go.opentelemetry.io/otel/metric"
	"google.golang.org/genai"
)

const (
	ConfigFileBaseName  = ".env"              // The base name for configuration files (e.g., ".env.toml").
	ConfigFileExtension = ".toml"             // The file extension for configuration files.
	ConfigSeparator     = "."                 // The separator used in config file names (e.g., ".env.local.toml").
	EnvConfigFilePrefix = "GCP_CONFIG_PREFIX" // The environment variable for specifying the config directory.
	EnvConfigRuntime    = "GCP_RUNTIME"       // The environment variable for specifying the runtime context (e.g., "local", "test", "prod").
	MaxRetries          = 3                   // The maximum number of times to retry a failed GenAI call.

	// RetryBackoff is the base wait between GenAI retries; attempt n waits
	// n times this long.
	RetryBackoff = 2 * time.Second
)

func fileExists(in string) bool {
	_, err := os.Stat(in)
	return !errors.Is(err, os.ErrNotExist)
}

// LoadConfig populates baseConfig from layered TOML files: the base
// `.env.toml` is applied first, then `.env.<runtime>.toml` overrides it.
// Both the directory prefix and the runtime name come from environment
// variables; the runtime defaults to "test".
func LoadConfig(baseConfig interface{}) {
	configurationFilePrefix := os.Getenv(EnvConfigFilePrefix)
	if len(configurationFilePrefix) > 0 && !strings.HasSuffix(configurationFilePrefix, string(os.PathSeparator)) {
		configurationFilePrefix = configurationFilePrefix + string(os.PathSeparator)
	}

	runtimeEnvironment := os.Getenv(EnvConfigRuntime)
	if runtimeEnvironment == "" {
		runtimeEnvironment = "test"
	}

	baseConfigFileName := configurationFilePrefix + ConfigFileBaseName + ConfigFileExtension
	envConfigFileName := configurationFilePrefix + ConfigFileBaseName + ConfigSeparator + runtimeEnvironment + ConfigFileExtension

	if fileExists(baseConfigFileName) {
		_, err := toml.DecodeFile(baseConfigFileName, baseConfig)
		if err != nil {
			log.Fatalf("failed to decode base configuration file %s with error: %s", baseConfigFileName, err)
		}
	}

	if fileExists(envConfigFileName) {
		_, err := toml.DecodeFile(envConfigFileName, baseConfig)
		if err != nil {
			log.Fatalf("failed to decode environment configuration file: %s with error: %s", envConfigFileName, err)
		}
	}
}

// GenerateTextResponse sends a text-only prompt to the given model and
// returns the concatenated candidate text. Transport-level failures are
// retried up to MaxRetries times; token usage and retries are recorded on
// the provided counters. Markdown code fences, which some models insist on
// adding, are stripped from the result.
func GenerateTextResponse(
	ctx context.Context,
	inputTokenCounter metric.Int64Counter,
	outputTokenCounter metric.Int64Counter,
	retryCounter metric.Int64Counter,
	tryCount int,
	model *QuotaAwareGenerativeAIModel,
	content []*genai.Content) (value string, err error) {
	resp, err := model.GenerateContent(ctx, content)

	if err != nil {
		if tryCount < MaxRetries && ctx.Err() == nil {
			retryCounter.Add(ctx, 1)
			// Linear backoff, sized for an interactive request.
			time.Sleep(time.Duration(tryCount+1) * RetryBackoff)
			return GenerateTextResponse(ctx, inputTokenCounter, outputTokenCounter, retryCounter, tryCount+1, model, content)
		}
		return "", err
	}
	if resp.UsageMetadata != nil {
		inputTokenCounter.Add(ctx, int64(resp.UsageMetadata.PromptTokenCount))
		outputTokenCounter.Add(ctx, int64(resp.UsageMetadata.CandidatesTokenCount))
	}

	value = ""
	for _, candidate := range resp.Candidates {
		if candidate.Content != nil {
			for _, part := range candidate.Content.Parts {
				value += part.Text
			}
		}
	}
	value = strings.TrimPrefix(value, "```")
	value = strings.TrimSuffix(value, "```")
	return strings.TrimSpace(value), nil
}

// NewTextPart wraps a prompt string in the content envelope the GenAI
// client expects.
func NewTextPart(in string) []*genai.Content {
	return genai.Text(in)
}
