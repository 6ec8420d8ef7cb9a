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
	"fmt"
	"io"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"time"

	"cloud.google.com/go/storage"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/cloud"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/cor"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/model"
)

// GCSFileUpload copies the original upload to the archive bucket. Archiving
// is optional, so the command is skipped without a client or bucket and a
// failed copy is logged rather than failing the pipeline.
type GCSFileUpload struct {
	cor.BaseCommand
	client *storage.Client // Optional; nil disables archiving.
	bucket string          // Optional; empty disables archiving.
}

// NewGCSFileUpload reads ParamUploadFile and writes ParamArchive.
func NewGCSFileUpload(name string, client *storage.Client, bucket string) *GCSFileUpload {
	out := &GCSFileUpload{BaseCommand: *cor.NewBaseCommand(name), client: client, bucket: bucket}
	out.InputParamName = ParamUploadFile
	out.OutputParamName = ParamArchive
	return out
}

func (c *GCSFileUpload) IsExecutable(context cor.Context) bool {
	return c.client != nil && c.bucket != "" && c.BaseCommand.IsExecutable(context)
}

// ArchiveObject names the archived copy of file, grouped by upload day.
func ArchiveObject(bucket string, file *model.UploadedFile, now time.Time) cloud.GCSObject {
	return cloud.GCSObject{
		Bucket:   bucket,
		Name:     fmt.Sprintf("uploads/%s/%s", now.UTC().Format("2006/01/02"), filepath.Base(file.Path)),
		MIMEType: mime.TypeByExtension("." + file.Extension),
	}
}

func (c *GCSFileUpload) Execute(context cor.Context) {
	file := context.Get(c.GetInputParam()).(*model.UploadedFile)
	target := ArchiveObject(c.bucket, file, time.Now())
	if err := c.copy(context, file.Path, target); err != nil {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		slog.WarnContext(context.GetContext(), "failed to archive upload", "file", file.OriginalName, "target", target.URI(), "error", err)
		return
	}
	slog.InfoContext(context.GetContext(), "archived upload", "file", file.OriginalName, "target", target.URI())
	succeed(c, context, &target)
}

func (c *GCSFileUpload) copy(context cor.Context, path string, target cloud.GCSObject) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	writer := c.client.Bucket(target.Bucket).Object(target.Name).NewWriter(context.GetContext())
	writer.ContentType = target.MIMEType
	if written, err := io.Copy(writer, in); err != nil {
		_ = writer.Close()
		return fmt.Errorf("partial write of %d bytes: %w", written, err)
	}
	return writer.Close()
}
