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

package commands_test

import (
	"fmt"
	"strings"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/commands"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/model"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/services"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/services/mocks"
)

func TestParseMetadata(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *model.LectureMetadata
	}{
		{
			name: "well formed",
			text: model.GetExampleModelResponse(),
			want: model.GetExampleMetadata(),
		},
		{
			name: "markdown emphasis and odd spacing",
			text: "Here you go:\n  **1.  subject:**  Chemistry \n2. CLASS: 10th\n\n3. Topic:\tAcids\n4. Sub-Topics: pH , , Bases,\n5. Summary: Acids and bases.\r\n",
			want: &model.LectureMetadata{
				Subject:   "Chemistry",
				Class:     "10th",
				Topic:     "Acids",
				SubTopics: []string{"pH", "Bases"},
				Summary:   "Acids and bases.",
			},
		},
		{
			name: "missing fields take defaults",
			text: "3. Topic: Fractions",
			want: &model.LectureMetadata{
				Subject:   model.DefaultCategory,
				Class:     model.DefaultCategory,
				Topic:     "Fractions",
				SubTopics: []string{},
				Summary:   model.DefaultSummary,
			},
		},
		{
			name: "labels without numbers are ignored",
			text: "Subject: History\nClass: 9",
			want: model.NewLectureMetadata(),
		},
		{
			name: "empty",
			text: "",
			want: model.NewLectureMetadata(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, commands.ParseMetadata(tt.text))
		})
	}
}

func TestTruncateTranscript(t *testing.T) {
	out, cut := commands.TruncateTranscript("short", commands.MaxTranscriptChars)
	assert.False(t, cut)
	assert.Equal(t, "short", out)

	long := strings.Repeat("é", commands.MaxTranscriptChars+10)
	out, cut = commands.TruncateTranscript(long, commands.MaxTranscriptChars)
	assert.True(t, cut)
	assert.Equal(t, commands.MaxTranscriptChars, len([]rune(out)))
}

func TestMetadataExtractor(t *testing.T) {
	ctrl := gomock.NewController(t)
	tmpl := template.Must(template.New("extraction").Parse("TRANSCRIPT: {{ .TRANSCRIPT }}\nEXAMPLE:\n{{ .EXAMPLE_OUTPUT }}"))
	generator := mocks.NewMockTextGenerator(ctrl)
	generator.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, prompt string) (string, error) {
		assert.Contains(t, prompt, "TRANSCRIPT: today we study motion")
		assert.Contains(t, prompt, "4. Sub-Topics:")
		return model.GetExampleModelResponse(), nil
	})

	ctx := newContext(t)
	ctx.Add(commands.ParamTranscript, "today we study motion")
	commands.NewMetadataExtractor("extract", generator, tmpl).Execute(ctx)
	commands.NewMetadataParser("parse").Execute(ctx)

	require.False(t, ctx.HasErrors())
	assert.Equal(t, model.GetExampleMetadata(), ctx.Get(commands.ParamMetadata))
}

func TestMetadataExtractorBlockedResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	tmpl := template.Must(template.New("extraction").Parse("{{ .TRANSCRIPT }}"))
	generator := mocks.NewMockTextGenerator(ctrl)
	generator.EXPECT().Generate(gomock.Any(), "words").Return("", fmt.Errorf("%w: SAFETY", services.ErrGenerationBlocked))

	ctx := newContext(t)
	ctx.Add(commands.ParamTranscript, "words")
	extractor := commands.NewMetadataExtractor("extract", generator, tmpl)
	extractor.Execute(ctx)

	assert.ErrorIs(t, ctx.Err(), services.ErrGenerationBlocked)
	assert.False(t, commands.NewMetadataParser("parse").IsExecutable(ctx))
}
