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
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/commands"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/cor"
)

// FileIngestionWorkflow turns an uploaded file into a stored record.
// Documents are read directly; videos have their audio extracted and
// transcribed. The original upload is archived when a bucket is configured.
type FileIngestionWorkflow struct {
	cor.BaseCommand
	chain cor.Chain
}

func NewFileIngestionWorkflow(config *cloud.Config, deps Dependencies) (*FileIngestionWorkflow, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	tmpl, err := extractionTemplate(config)
	if err != nil {
		return nil, err
	}

	w := &FileIngestionWorkflow{BaseCommand: *cor.NewBaseCommand("file-ingestion-workflow")}
	w.InputParamName = commands.ParamUpload
	w.OutputParamName = commands.ParamRecordID

	chain := cor.NewBaseChain(w.GetName())
	chain.AddCommand(commands.NewMediaUpload("save-upload", config))
	chain.AddCommand(commands.NewGCSFileUpload("archive-upload", deps.Storage, config.Storage.ArchiveBucket))
	chain.AddCommand(commands.NewDocumentText("extract-document-text"))
	chain.AddCommand(commands.NewFFMpegCommand("extract-audio", config, deps.runner()))
	chain.AddCommand(commands.NewTranscribe("transcribe-audio", deps.Transcriber))
	addAnalysis(chain, config, deps, tmpl)
	logSteps(chain)
	w.chain = chain
	return w, nil
}

func (w *FileIngestionWorkflow) Execute(context cor.Context) {
	w.chain.Execute(context)
}

// Ingest saves the upload and runs the pipeline over it, returning the hex id
// of the new record. Cancellation of ctx is not passed on. The saved upload
// and any audio are removed before it returns.
func (w *FileIngestionWorkflow) Ingest(ctx context.Context, fileName string, r io.Reader) (string, error) {
	chCtx := cor.NewBaseContext()
	chCtx.SetContext(context.WithoutCancel(ctx))
	defer closeContext(chCtx)

	chCtx.Add(commands.ParamUpload, &commands.UploadSource{FileName: fileName, Reader: r})
	w.Execute(chCtx)
	return result(chCtx)
}
