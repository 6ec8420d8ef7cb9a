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

package workflow

import (
	"context"
	"io"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/cloud"
)

// Ingestor exposes both ingestion pipelines behind one value.
type Ingestor struct {
	Link *LinkIngestionWorkflow
	File *FileIngestionWorkflow
}

func NewIngestor(config *cloud.Config, deps Dependencies) (*Ingestor, error) {
	link, err := NewLinkIngestionWorkflow(config, deps)
	if err != nil {
		return nil, err
	}
	file, err := NewFileIngestionWorkflow(config, deps)
	if err != nil {
		return nil, err
	}
	return &Ingestor{Link: link, File: file}, nil
}

func (i *Ingestor) IngestLink(ctx context.Context, url string) (string, error) {
	return i.Link.Ingest(ctx, url)
}

func (i *Ingestor) IngestFile(ctx context.Context, fileName string, r io.Reader) (string, error) {
	return i.File.Ingest(ctx, fileName, r)
}
