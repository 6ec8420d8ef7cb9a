// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
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
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/metric"
	"google.golang.org/genai"
)

const (
	ConfigFileBaseName  = ".env"
	ConfigFileExtension = ".toml"
	ConfigSeparator     = "."
	EnvConfigFilePrefix = "GCP_CONFIG_PREFIX"
	EnvConfigRuntime    = "GCP_RUNTIME"
)

// Environment variables overlaid onto the TOML configuration.
const (
	EnvAssemblyAIKey  = "ASSEMBLYAI_API_KEY"
	EnvGenAIKey       = "GEN_AI"
	EnvModelName      = "MODEL_NAME"
	EnvGoogleAPIKey   = "GOOGLE_API_KEY"
	EnvGoogleSearchID = "GOOGLE_CSE_ID"
	EnvMongoURI       = "MONGO_URI"
	EnvCORSOrigins    = "CORS_ORIGINS"
	EnvPort           = "PORT"
)

// ErrEmptyResponse is returned when the model produced no usable text,
// including responses withheld by safety filtering.
var ErrEmptyResponse = errors.New("model returned an empty or blocked response")

func fileExists(in string) bool {
	_, err := os.Stat(in)
	return !errors.Is(err, os.ErrNotExist)
}

// LoadConfig decodes the base configuration file followed by the runtime
// specific override into baseConfig. The directory comes from
// GCP_CONFIG_PREFIX and the runtime from GCP_RUNTIME (default "test").
// Missing files are skipped.
func LoadConfig(baseConfig any) error {
	prefix := os.Getenv(EnvConfigFilePrefix)
	if len(prefix) > 0 && !strings.HasSuffix(prefix, string(os.PathSeparator)) {
		prefix = prefix + string(os.PathSeparator)
	}

	runtime := os.Getenv(EnvConfigRuntime)
	if runtime == "" {
		runtime = "test"
	}

	files := []string{
		prefix + ConfigFileBaseName + ConfigFileExtension,
		prefix + ConfigFileBaseName + ConfigSeparator + runtime + ConfigFileExtension,
	}
	for _, name := range files {
		if !fileExists(name) {
			slog.Debug("configuration file not found", "file", name)
			continue
		}
		if _, err := toml.DecodeFile(name, baseConfig); err != nil {
			return fmt.Errorf("failed to decode configuration file %s: %w", name, err)
		}
		slog.Info("loaded configuration file", "file", name)
	}
	return nil
}

// LoadDotEnv reads KEY=VALUE pairs from the given files into the process
// environment without overriding variables that are already set. Missing
// files are ignored.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if !fileExists(f) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnvironment overlays secrets and deployment values from the process
// environment. Unset variables leave the configured value in place.
func ApplyEnvironment(c *Config) {
	setIfPresent(EnvAssemblyAIKey, &c.Secrets.AssemblyAIKey)
	setIfPresent(EnvGenAIKey, &c.Secrets.GenAIKey)
	setIfPresent(EnvGoogleAPIKey, &c.Secrets.GoogleAPIKey)
	setIfPresent(EnvGoogleSearchID, &c.Secrets.GoogleSearchID)
	setIfPresent(EnvMongoURI, &c.RecordStore.URI)
	setIfPresent(EnvPort, &c.Application.Port)

	if v := os.Getenv(EnvModelName); v != "" {
		if c.AgentModels == nil {
			c.AgentModels = make(map[string]GenAIModel)
		}
		m := c.AgentModels[DefaultAgentModel]
		m.Model = v
		c.AgentModels[DefaultAgentModel] = m
	}
	if v := os.Getenv(EnvCORSOrigins); v != "" {
		origins := make([]string, 0)
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.Application.AllowedOrigins = origins
	}
}

func setIfPresent(key string, target *string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*target = v
	}
}

// GenerateTextResponse sends the prompt to the model and concatenates the
// text of every returned part. Token usage is recorded on the counters. A
// response without candidates, parts or text yields ErrEmptyResponse.
//
// Failed calls are retried up to model.MaxRetries times, which defaults to
// none. A call that ran past its timeout is never retried.
func GenerateTextResponse(
	ctx context.Context,
	inputTokenCounter metric.Int64Counter,
	outputTokenCounter metric.Int64Counter,
	model *QuotaAwareGenerativeAIModel,
	content []*genai.Content) (string, error) {

	var resp *genai.GenerateContentResponse
	var err error
	for attempt := 0; attempt <= model.MaxRetries; attempt++ {
		resp, err = model.GenerateContent(ctx, content)
		if err == nil || ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
			break
		}
		slog.WarnContext(ctx, "generation attempt failed", "attempt", attempt+1, "error", err)
	}
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", ErrEmptyResponse
	}

	if resp.UsageMetadata != nil {
		if inputTokenCounter != nil {
			inputTokenCounter.Add(ctx, int64(resp.UsageMetadata.PromptTokenCount))
		}
		if outputTokenCounter != nil {
			outputTokenCounter.Add(ctx, int64(resp.UsageMetadata.CandidatesTokenCount))
		}
	}

	var sb strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part != nil {
				sb.WriteString(part.Text)
			}
		}
	}
	value := strings.TrimSpace(sb.String())
	if value == "" {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("%w: %s", ErrEmptyResponse, resp.PromptFeedback.BlockReason)
		}
		return "", ErrEmptyResponse
	}
	return value, nil
}

func NewTextPart(in string) []*genai.Content {
	return genai.Text(in)
}
