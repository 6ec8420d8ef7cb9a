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
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/model"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/services"
)

func docx(t *testing.T, text string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>` + text + `</w:t></w:r></w:p></w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestFileIngestionDocument(t *testing.T) {
	f := newFixture(t)
	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("1. Subject: History\n4. Sub-Topics: Rome", nil)
	f.searcher.EXPECT().Search(gomock.Any(), "Rome", gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	f.store.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, r *model.StudyRecord) (primitive.ObjectID, error) {
		assert.Equal(t, "The fall of Rome.", r.Transcript)
		assert.Equal(t, "History", r.Subject)
		assert.Equal(t, []model.Resource{{Topic: "Rome"}}, r.StructuredResources)
		return primitive.NewObjectID(), nil
	})
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), map[string]string{"source": "document"}).Return("m-1", nil)

	id, err := f.ingestor(t).IngestFile(context.Background(), "rome.docx", bytes.NewReader(docx(t, "The fall of Rome.")))

	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Empty(t, f.runs)
	assert.True(t, dirEmpty(t, f.config.Application.UploadDir))
}

func TestFileIngestionVideo(t *testing.T) {
	f := newFixture(t)
	f.transcriber.EXPECT().Transcribe(gomock.Any(), gomock.Any()).Return("Cells divide.", nil)
	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("1. Subject: Biology", nil)
	f.store.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(primitive.NewObjectID(), nil)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), map[string]string{"source": "video"}).Return("m-1", nil)

	_, err := f.ingestor(t).IngestFile(context.Background(), "cells.mp4", strings.NewReader("opaque video bytes"))

	require.NoError(t, err)
	assert.Equal(t, []string{"ffmpeg"}, f.runs)
	assert.True(t, dirEmpty(t, f.config.Application.UploadDir))
	assert.True(t, dirEmpty(t, f.config.Application.AudioDir))
}

func TestFileIngestionRejectsDisallowedType(t *testing.T) {
	f := newFixture(t)

	_, err := f.ingestor(t).IngestFile(context.Background(), "notes.txt", strings.NewReader("hello"))

	assert.ErrorIs(t, err, services.ErrInvalidInput)
	assert.True(t, dirEmpty(t, f.config.Application.UploadDir))
}

func TestFileIngestionStoreFailure(t *testing.T) {
	f := newFixture(t)
	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", nil)
	f.store.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(primitive.NilObjectID, services.ErrExternalService)

	_, err := f.ingestor(t).IngestFile(context.Background(), "notes.docx", bytes.NewReader(docx(t, "Some words.")))

	assert.ErrorIs(t, err, services.ErrExternalService)
}

func TestFileIngestionOutlivesCallerCancellation(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.transcriber.EXPECT().Transcribe(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, string) (string, error) {
		cancel()
		return "Cells divide.", nil
	})
	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("1. Subject: Biology", nil)
	f.store.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(primitive.NewObjectID(), nil)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return("m-1", nil)

	id, err := f.ingestor(t).IngestFile(ctx, "cells.mp4", strings.NewReader("opaque video bytes"))

	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.True(t, dirEmpty(t, f.config.Application.UploadDir))
	assert.True(t, dirEmpty(t, f.config.Application.AudioDir))
}
