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

package commands

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/cor"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/model"
)

var (
	subjectPattern   = regexp.MustCompile(`(?im)^\s*1\.\s+Subject:[ \t]*(.+)$`)
	classPattern     = regexp.MustCompile(`(?im)^\s*2\.\s+Class:[ \t]*(.+)$`)
	topicPattern     = regexp.MustCompile(`(?im)^\s*3\.\s+Topic:[ \t]*(.+)$`)
	subTopicsPattern = regexp.MustCompile(`(?im)^\s*4\.\s+Sub-Topics:[ \t]*(.+)$`)
	summaryPattern   = regexp.MustCompile(`(?im)^\s*5\.\s+Summary:[ \t]*(.+)$`)
)

// MetadataParser converts the raw model answer into LectureMetadata.
type MetadataParser struct {
	cor.BaseCommand
}

// NewMetadataParser reads ParamRawMetadata and writes ParamMetadata.
func NewMetadataParser(name string) *MetadataParser {
	out := &MetadataParser{BaseCommand: *cor.NewBaseCommand(name)}
	out.InputParamName = ParamRawMetadata
	out.OutputParamName = ParamMetadata
	return out
}

func (c *MetadataParser) Execute(context cor.Context) {
	raw, _ := getString(context, c.GetInputParam())
	meta := ParseMetadata(raw)
	slog.InfoContext(context.GetContext(), "parsed lecture metadata",
		"subject", meta.Subject, "class", meta.Class, "topic", meta.Topic, "subtopics", len(meta.SubTopics))
	succeed(c, context, meta)
}

// ParseMetadata extracts each labelled line independently. Asterisks are
// removed before matching so markdown emphasis does not hide a label. A field
// that is absent or blank takes its default.
func ParseMetadata(text string) *model.LectureMetadata {
	text = strings.ReplaceAll(text, "*", "")
	meta := model.NewLectureMetadata()

	if v := capture(subjectPattern, text); v != "" {
		meta.Subject = v
	}
	if v := capture(classPattern, text); v != "" {
		meta.Class = v
	}
	if v := capture(topicPattern, text); v != "" {
		meta.Topic = v
	}
	if v := capture(summaryPattern, text); v != "" {
		meta.Summary = v
	}
	for _, s := range strings.Split(capture(subTopicsPattern, text), ",") {
		if s = strings.TrimSpace(s); s != "" {
			meta.SubTopics = append(meta.SubTopics, s)
		}
	}
	return meta
}

func capture(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}
