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
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// ContentGenerator is the subset of *genai.Models used for generation.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// QuotaAwareGenerativeAIModel binds a model name and generation settings to
// a generator and throttles calls to the configured requests per second.
type QuotaAwareGenerativeAIModel struct {
	GenerativeContentConfig *genai.GenerateContentConfig
	ModelName               string
	ModelHandle             ContentGenerator
	RateLimit               *rate.Limiter
	Timeout                 time.Duration
	MaxRetries              int
}

// NewQuotaAwareModel wraps handle with a limiter allowing requestsPerSecond
// calls, at least 1.
func NewQuotaAwareModel(wrapped *genai.GenerateContentConfig, name string, handle ContentGenerator, requestsPerSecond int) *QuotaAwareGenerativeAIModel {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}
	return &QuotaAwareGenerativeAIModel{
		GenerativeContentConfig: wrapped,
		ModelName:               name,
		ModelHandle:             handle,
		RateLimit:               rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
	}
}

// NewQuotaAwareModelFromConfig builds the generation settings for m and wraps
// them around handle.
func NewQuotaAwareModelFromConfig(m GenAIModel, handle ContentGenerator) *QuotaAwareGenerativeAIModel {
	settings := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](m.Temperature),
		TopP:             genai.Ptr[float32](m.TopP),
		TopK:             genai.Ptr[float32](m.TopK),
		MaxOutputTokens:  m.MaxTokens,
		SafetySettings:   DefaultSafetySettings,
		ResponseMIMEType: m.OutputFormat,
	}
	if m.SystemInstructions != "" {
		settings.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: m.SystemInstructions}}}
	}
	q := NewQuotaAwareModel(settings, m.Model, handle, m.RateLimit)
	q.Timeout = m.Timeout()
	q.MaxRetries = m.MaxRetries
	return q
}

// GenerateContent waits for a rate limit token and then calls the model with
// the configured per-call timeout.
func (q *QuotaAwareGenerativeAIModel) GenerateContent(ctx context.Context, content []*genai.Content) (*genai.GenerateContentResponse, error) {
	if err := q.RateLimit.Wait(ctx); err != nil {
		return nil, err
	}
	if q.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.Timeout)
		defer cancel()
	}
	return q.ModelHandle.GenerateContent(ctx, q.ModelName, content, q.GenerativeContentConfig)
}
