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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/commands"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/model"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/services"
)

const pdfHead = "%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj\n<<>>\nendobj\n"

func TestSaveUpload(t *testing.T) {
	dir := t.TempDir()
	saved, err := commands.SaveUpload(dir, &commands.UploadSource{
		FileName: "../../Notes.PDF",
		Reader:   strings.NewReader(pdfHead),
	})
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(saved.Path))
	assert.Equal(t, "Notes.PDF", saved.OriginalName)
	assert.Equal(t, "pdf", saved.Extension)
	assert.Equal(t, model.SourceDocument, saved.Kind)
	data, err := os.ReadFile(saved.Path)
	require.NoError(t, err)
	assert.Equal(t, pdfHead, string(data))
}

func TestSaveUploadRejects(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		content  string
	}{
		{"no name", "", pdfHead},
		{"disallowed extension", "notes.txt", "hello"},
		{"no extension", "notes", "hello"},
		{"empty file", "notes.pdf", ""},
		{"content mismatch", "lecture.mp4", pdfHead},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			saved, err := commands.SaveUpload(dir, &commands.UploadSource{FileName: tt.fileName, Reader: strings.NewReader(tt.content)})
			assert.Nil(t, saved)
			assert.ErrorIs(t, err, services.ErrInvalidInput)

			entries, _ := os.ReadDir(dir)
			assert.Empty(t, entries)
		})
	}
}

func TestMediaUploadCommand(t *testing.T) {
	config := testConfig(t)
	cmd := commands.NewMediaUpload("upload", config)

	ctx := newContext(t)
	ctx.Add(commands.ParamUpload, &commands.UploadSource{FileName: "notes.pdf", Reader: bytes.NewReader([]byte(pdfHead))})
	cmd.Execute(ctx)

	require.False(t, ctx.HasErrors())
	saved := ctx.Get(commands.ParamUploadFile).(*model.UploadedFile)
	assert.Equal(t, model.SourceDocument, ctx.Get(commands.ParamSourceKind))
	assert.Equal(t, []string{saved.Path}, ctx.GetTempFiles())
}

func TestMediaUploadCommandMissingFile(t *testing.T) {
	cmd := commands.NewMediaUpload("upload", testConfig(t))
	ctx := newContext(t)
	ctx.Add(commands.ParamUpload, &commands.UploadSource{FileName: "notes.pdf"})
	cmd.Execute(ctx)

	assert.ErrorIs(t, ctx.Err(), services.ErrInvalidInput)
}
