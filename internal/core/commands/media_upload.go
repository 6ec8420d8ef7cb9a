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

// This file defines the command that accepts an uploaded lecture file.
//
// Logic Flow:
//  1. Check the extension against the allowed kinds (pdf, docx, mp4, mov).
//  2. Sniff the first bytes with filetype and reject content that clearly
//     belongs to the other kind.
//  3. Stream the upload to <uuid>.<ext> under the upload directory.
//  4. Register the saved file for cleanup and output an UploadedFile carrying
//     its kind, so later steps choose between document text and audio
//     extraction.
package commands

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/h2non/filetype"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/cloud"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/cor"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/model"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/services"
)

// UploadSource is an incoming upload before it is written to disk.
type UploadSource struct {
	FileName string    // The client supplied file name; only its extension is trusted.
	Reader   io.Reader // The upload body.
}

// MediaUpload validates an upload's extension, checks the content matches
// the claimed kind and writes it under the upload directory with a unique
// name. The saved file is registered for cleanup.
type MediaUpload struct {
	cor.BaseCommand
	config *cloud.Config
}

// NewMediaUpload is the constructor for MediaUpload.
//
// Inputs:
//   - name: The command name used for logging and telemetry.
//   - config: Supplies the upload directory.
//
// Outputs:
//   - *MediaUpload: Reads ParamUpload and writes ParamUploadFile.
func NewMediaUpload(name string, config *cloud.Config) *MediaUpload {
	out := &MediaUpload{BaseCommand: *cor.NewBaseCommand(name), config: config}
	out.InputParamName = ParamUpload
	out.OutputParamName = ParamUploadFile
	return out
}

func (c *MediaUpload) Execute(context cor.Context) {
	src, ok := context.Get(c.GetInputParam()).(*UploadSource)
	if !ok || src == nil || src.Reader == nil {
		fail(c, context, services.NewValidationError("file", "no file part in the request"))
		return
	}
	saved, err := SaveUpload(c.config.Application.UploadDir, src)
	if saved != nil {
		context.AddTempFile(saved.Path)
	}
	if err != nil {
		fail(c, context, err)
		return
	}
	slog.InfoContext(context.GetContext(), "saved upload", "file", src.FileName, "path", saved.Path, "kind", saved.Kind)
	context.Add(ParamSourceKind, saved.Kind)
	succeed(c, context, saved)
}

// SaveUpload writes src to dir. Only pdf, docx, mp4 and mov are accepted.
// When the content is recognisable and belongs to a different kind than the
// extension claims, the upload is rejected. On error a non-nil result still
// names any partial file that was written.
func SaveUpload(dir string, src *UploadSource) (*model.UploadedFile, error) {
	name := filepath.Base(strings.TrimSpace(src.FileName))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return nil, services.NewValidationError("file", "no selected file")
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	kind, ok := model.KindForExtension(ext)
	if !ok {
		return nil, services.NewValidationError("file", fmt.Sprintf("file type %q is not allowed, use one of %s", ext, strings.Join(model.AllowedExtensions(), ", ")))
	}

	reader := bufio.NewReaderSize(src.Reader, 8192)
	head, _ := reader.Peek(8192)
	if len(head) == 0 {
		return nil, services.NewValidationError("file", "file is empty")
	}
	if sniffed, err := filetype.Match(head); err == nil && sniffed != filetype.Unknown {
		if sk, known := model.KindForExtension(sniffed.Extension); known && sk != kind {
			return nil, services.NewValidationError("file", fmt.Sprintf("content looks like %s, not %s", sniffed.Extension, ext))
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %w", services.ErrAcquisition, err)
	}
	out := &model.UploadedFile{
		Path:         filepath.Join(dir, uuid.NewString()+"."+ext),
		OriginalName: name,
		Extension:    ext,
		Kind:         kind,
	}
	f, err := os.Create(out.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", services.ErrAcquisition, err)
	}
	if _, err := io.Copy(f, reader); err != nil {
		_ = f.Close()
		return out, fmt.Errorf("%w: failed to save upload: %w", services.ErrAcquisition, err)
	}
	if err := f.Close(); err != nil {
		return out, fmt.Errorf("%w: failed to save upload: %w", services.ErrAcquisition, err)
	}
	return out, nil
}
