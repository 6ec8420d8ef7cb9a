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

// Package api exposes the lecture library over HTTP with gin.
package api

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_record_queries.go -package=mocks github.com/jaycherian/gcp-go-lecture-notes/internal/api RecordQueries
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_lecture_ingestor.go -package=mocks github.com/jaycherian/gcp-go-lecture-notes/internal/api LectureIngestor

import (
	"context"
	"io"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/model"
)

// RecordQueries reads and deletes stored records.
type RecordQueries interface {
	Structure(ctx context.Context) (model.Structure, error)
	Content(ctx context.Context, subject, class, topic string) ([]model.StudyRecord, error)
	All(ctx context.Context) ([]model.StudyRecord, error)
	Delete(ctx context.Context, id string) error
}

// LectureIngestor runs the ingestion pipelines and returns the new record id.
type LectureIngestor interface {
	IngestLink(ctx context.Context, url string) (string, error)
	IngestFile(ctx context.Context, fileName string, r io.Reader) (string, error)
}
