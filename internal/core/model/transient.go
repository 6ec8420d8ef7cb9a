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

package model

import "strings"

// Fallback values used when the model response lacks a field.
const (
	DefaultCategory = "Uncategorized"
	DefaultSummary  = "Summary could not be generated."
)

// LectureMetadata is the structured description extracted from a transcript.
type LectureMetadata struct {
	Subject   string   `json:"subject"`
	Class     string   `json:"class"`
	Topic     string   `json:"topic"`
	SubTopics []string `json:"subtopics"`
	Summary   string   `json:"summary"`
}

// NewLectureMetadata returns metadata populated with every fallback value.
func NewLectureMetadata() *LectureMetadata {
	return &LectureMetadata{
		Subject:   DefaultCategory,
		Class:     DefaultCategory,
		Topic:     DefaultCategory,
		SubTopics: make([]string, 0),
		Summary:   DefaultSummary,
	}
}

// SourceKind classifies where a lecture came from.
type SourceKind string

const (
	SourceLink     SourceKind = "link"
	SourceDocument SourceKind = "document"
	SourceVideo    SourceKind = "video"
)

var uploadKinds = map[string]SourceKind{
	"pdf":  SourceDocument,
	"docx": SourceDocument,
	"mp4":  SourceVideo,
	"mov":  SourceVideo,
}

// KindForExtension maps an upload extension (with or without the leading
// dot, any case) to its kind. The second result is false for extensions
// that are not accepted.
func KindForExtension(ext string) (SourceKind, bool) {
	k, ok := uploadKinds[strings.ToLower(strings.TrimPrefix(ext, "."))]
	return k, ok
}

// AllowedExtensions lists the accepted upload extensions.
func AllowedExtensions() []string {
	return []string{"pdf", "docx", "mp4", "mov"}
}

// UploadedFile describes an upload after it has been written to disk.
type UploadedFile struct {
	Path         string
	OriginalName string
	Extension    string
	Kind         SourceKind
}

// IngestionEvent is published after a record has been stored.
type IngestionEvent struct {
	ID      string     `json:"id"`
	Subject string     `json:"subject"`
	Class   string     `json:"class"`
	Topic   string     `json:"topic"`
	Source  SourceKind `json:"source"`
}
