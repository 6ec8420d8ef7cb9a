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

// Package services holds the adapters around external systems (speech to
// text, generative model, web search, record store, event bus) and the
// record queries served by the HTTP API.
package services

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_transcriber.go -package=mocks github.com/jaycherian/gcp-go-lecture-notes/internal/core/services Transcriber
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_text_generator.go -package=mocks github.com/jaycherian/gcp-go-lecture-notes/internal/core/services TextGenerator
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_searcher.go -package=mocks github.com/jaycherian/gcp-go-lecture-notes/internal/core/services Searcher
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_record_store.go -package=mocks github.com/jaycherian/gcp-go-lecture-notes/internal/core/services RecordStore
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_event_publisher.go -package=mocks github.com/jaycherian/gcp-go-lecture-notes/internal/core/services EventPublisher

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/model"
)

// Transcriber converts a local audio file to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// TextGenerator answers a single text prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Searcher returns result links for query, optionally restricted to site,
// capped at num results. An unconfigured searcher returns no links and no
// error.
type Searcher interface {
	Search(ctx context.Context, query string, site string, num int64) ([]string, error)
}

// RecordStore persists StudyRecords.
type RecordStore interface {
	Insert(ctx context.Context, record *model.StudyRecord) (primitive.ObjectID, error)
	FindCategories(ctx context.Context) ([]model.StudyRecord, error)
	FindByCategory(ctx context.Context, subject, class, topic string) ([]model.StudyRecord, error)
	FindAll(ctx context.Context) ([]model.StudyRecord, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// EventPublisher sends a message to a topic and returns the server id.
type EventPublisher interface {
	Publish(ctx context.Context, data []byte, attributes map[string]string) (string, error)
}
