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

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/cloud"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/cor"
)

// GenAITextGenerator sends text prompts to a rate limited generative model
// and records token usage.
type GenAITextGenerator struct {
	Model        *cloud.QuotaAwareGenerativeAIModel
	InputTokens  metric.Int64Counter
	OutputTokens metric.Int64Counter
}

func NewGenAITextGenerator(model *cloud.QuotaAwareGenerativeAIModel) *GenAITextGenerator {
	meter := otel.Meter(cor.MeterName)
	in, err := meter.Int64Counter("genai.tokens.input")
	if err != nil {
		slog.Warn("failed to create token counter", "error", err)
	}
	out, err := meter.Int64Counter("genai.tokens.output")
	if err != nil {
		slog.Warn("failed to create token counter", "error", err)
	}
	return &GenAITextGenerator{Model: model, InputTokens: in, OutputTokens: out}
}

func (g *GenAITextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	out, err := cloud.GenerateTextResponse(ctx, g.InputTokens, g.OutputTokens, g.Model, cloud.NewTextPart(prompt))
	if errors.Is(err, cloud.ErrEmptyResponse) {
		return "", fmt.Errorf("%w: %w", ErrGenerationBlocked, err)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExternalService, err)
	}
	return out, nil
}
