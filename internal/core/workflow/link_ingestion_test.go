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

package workflow_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/mock/gomock"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/model"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/services"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/workflow"
)

func TestLinkIngestion(t *testing.T) {
	traceCtx, span := tracer.Start(context.Background(), "link-ingestion-test")
	defer span.End()

	f := newFixture(t)
	id := primitive.NewObjectID()
	var stored *model.StudyRecord

	f.transcriber.EXPECT().Transcribe(gomock.Any(), gomock.Any()).Return("Today we cover Newton's laws.", nil)
	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(model.GetExampleModelResponse(), nil)
	f.searcher.EXPECT().Search(gomock.Any(), gomock.Any(), "youtube.com", int64(1)).Return([]string{"https://www.youtube.com/watch?v=1"}, nil).Times(3)
	f.searcher.EXPECT().Search(gomock.Any(), gomock.Any(), "", int64(5)).Return([]string{"https://en.wikipedia.org/wiki/Inertia"}, nil).Times(3)
	f.store.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, r *model.StudyRecord) (primitive.ObjectID, error) {
		stored = r
		return id, nil
	})
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), map[string]string{"source": "link"}).Return("m-1", nil)

	got, err := f.ingestor(t).IngestLink(traceCtx, "https://www.youtube.com/watch?v=lecture")
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	require.NoError(t, err)
	span.SetStatus(codes.Ok, "passed - link ingestion test")

	assert.Equal(t, id.Hex(), got)
	require.NotNil(t, stored)
	assert.Equal(t, "Physics", stored.Subject)
	assert.Equal(t, "Today we cover Newton's laws.", stored.Transcript)
	assert.Len(t, stored.StructuredResources, 3)
	assert.Equal(t, []string{"yt-dlp"}, f.runs)
	assert.True(t, dirEmpty(t, f.config.Application.AudioDir))
}

func TestLinkIngestionRequiresURL(t *testing.T) {
	f := newFixture(t)

	_, err := f.ingestor(t).IngestLink(context.Background(), "   ")

	assert.ErrorIs(t, err, services.ErrInvalidInput)
	assert.Empty(t, f.runs)
}

func TestLinkIngestionTranscriptionFailure(t *testing.T) {
	f := newFixture(t)
	f.transcriber.EXPECT().Transcribe(gomock.Any(), gomock.Any()).Return("", fmt.Errorf("%w: status error", services.ErrTranscription))

	_, err := f.ingestor(t).IngestLink(context.Background(), "https://youtu.be/x")

	assert.ErrorIs(t, err, services.ErrTranscription)
	assert.True(t, dirEmpty(t, f.config.Application.AudioDir))
}

func TestLinkIngestionBlockedGeneration(t *testing.T) {
	f := newFixture(t)
	f.transcriber.EXPECT().Transcribe(gomock.Any(), gomock.Any()).Return("words", nil)
	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", fmt.Errorf("%w: SAFETY", services.ErrGenerationBlocked))

	_, err := f.ingestor(t).IngestLink(context.Background(), "https://youtu.be/x")

	assert.ErrorIs(t, err, services.ErrGenerationBlocked)
}

func TestLinkIngestionDegradedExtraction(t *testing.T) {
	f := newFixture(t)
	f.transcriber.EXPECT().Transcribe(gomock.Any(), gomock.Any()).Return("words", nil)
	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("I could not find any structure.", nil)
	f.store.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, r *model.StudyRecord) (primitive.ObjectID, error) {
		assert.Equal(t, model.DefaultCategory, r.Subject)
		assert.Equal(t, model.DefaultSummary, r.Summary)
		assert.Empty(t, r.StructuredResources)
		return primitive.NewObjectID(), nil
	})
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return("m-1", nil)

	_, err := f.ingestor(t).IngestLink(context.Background(), "https://youtu.be/x")
	assert.NoError(t, err)
}

func TestNewIngestorValidatesDependencies(t *testing.T) {
	f := newFixture(t)
	deps := f.deps()
	deps.Store = nil
	_, err := workflow.NewIngestor(f.config, deps)
	assert.Error(t, err)

	f.config.PromptTemplates.Extraction = ""
	_, err = workflow.NewIngestor(f.config, f.deps())
	assert.Error(t, err)
}

func TestLinkIngestionOutlivesCallerCancellation(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	id := primitive.NewObjectID()

	f.transcriber.EXPECT().Transcribe(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, string) (string, error) {
		cancel()
		return "words", nil
	})
	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(func(gctx context.Context, _ string) (string, error) {
		assert.NoError(t, gctx.Err())
		return model.GetExampleModelResponse(), nil
	})
	f.searcher.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.store.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(id, nil)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return("m-1", nil)

	got, err := f.ingestor(t).IngestLink(ctx, "https://youtu.be/x")

	require.NoError(t, err)
	assert.Equal(t, id.Hex(), got)
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.True(t, dirEmpty(t, f.config.Application.AudioDir))
}
