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

// This file defines the command that asks the generative model to label a
// transcript.
//
// Logic Flow:
//  1. Truncate the transcript to MaxTranscriptChars on a rune boundary.
//  2. Render the extraction template with TRANSCRIPT and EXAMPLE_OUTPUT.
//  3. Send the prompt to the TextGenerator and output the raw answer for
//     MetadataParser. Empty or blocked answers fail the command.
package commands

import (
	"bytes"
	"fmt"
	"log/slog"
	"text/template"
	"unicode/utf8"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/cor"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/model"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/services"
)

// MaxTranscriptChars bounds the transcript text sent to the model.
const MaxTranscriptChars = 15000

// MetadataExtractor asks the generative model for the five labelled metadata
// lines of a transcript and outputs the raw answer.
type MetadataExtractor struct {
	cor.BaseCommand
	generator services.TextGenerator
	template  *template.Template
}

// NewMetadataExtractor is the constructor for MetadataExtractor.
//
// Inputs:
//   - name: The command name used for logging and telemetry.
//   - generator: The text generation adapter.
//   - template: The parsed extraction prompt.
//
// Outputs:
//   - *MetadataExtractor: Reads ParamTranscript and writes ParamRawMetadata.
func NewMetadataExtractor(name string, generator services.TextGenerator, template *template.Template) *MetadataExtractor {
	out := &MetadataExtractor{BaseCommand: *cor.NewBaseCommand(name), generator: generator, template: template}
	out.InputParamName = ParamTranscript
	out.OutputParamName = ParamRawMetadata
	return out
}

// TruncateTranscript cuts s to at most limit characters on a rune boundary.
func TruncateTranscript(s string, limit int) (string, bool) {
	if utf8.RuneCountInString(s) <= limit {
		return s, false
	}
	return string([]rune(s)[:limit]), true
}

// GenerateParams returns the template vocabulary for transcript.
func (c *MetadataExtractor) GenerateParams(transcript string) map[string]any {
	return map[string]any{
		"TRANSCRIPT":     transcript,
		"EXAMPLE_OUTPUT": model.GetExampleModelResponse(),
	}
}

// Execute renders the prompt for the transcript in the context and outputs
// the model's answer.
func (c *MetadataExtractor) Execute(context cor.Context) {
	transcript, _ := getString(context, c.GetInputParam())
	truncated, cut := TruncateTranscript(transcript, MaxTranscriptChars)
	if cut {
		slog.WarnContext(context.GetContext(), "transcript truncated for metadata prompt", "limit", MaxTranscriptChars)
	}

	var buffer bytes.Buffer
	if err := c.template.Execute(&buffer, c.GenerateParams(truncated)); err != nil {
		fail(c, context, fmt.Errorf("failed to execute prompt template: %w", err))
		return
	}

	out, err := c.generator.Generate(context.GetContext(), buffer.String())
	if err != nil {
		fail(c, context, err)
		return
	}
	slog.DebugContext(context.GetContext(), "received metadata response", "chars", len(out))
	succeed(c, context, out)
}
