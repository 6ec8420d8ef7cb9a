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

	"github.com/jaycherian/gcp-go-lecture-notes/internal/cloud"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/commands"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/cor"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/model"
)

// LinkIngestionWorkflow turns a remote video link into a stored record:
// download audio, transcribe, extract metadata, enrich, persist.
type LinkIngestionWorkflow struct {
	cor.BaseCommand
	chain cor.Chain
}

func NewLinkIngestionWorkflow(config *cloud.Config, deps Dependencies) (*LinkIngestionWorkflow, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	tmpl, err := extractionTemplate(config)
	if err != nil {
		return nil, err
	}

	w := &LinkIngestionWorkflow{BaseCommand: *cor.NewBaseCommand("link-ingestion-workflow")}
	w.InputParamName = commands.ParamSourceURL
	w.OutputParamName = commands.ParamRecordID

	chain := cor.NewBaseChain(w.GetName())
	chain.AddCommand(commands.NewMediaDownload("download-audio", config, deps.runner()))
	chain.AddCommand(commands.NewTranscribe("transcribe-audio", deps.Transcriber))
	addAnalysis(chain, config, deps, tmpl)
	logSteps(chain)
	w.chain = chain
	return w, nil
}

// IsExecutable always holds so a missing URL surfaces as a validation error.
func (w *LinkIngestionWorkflow) IsExecutable(context cor.Context) bool {
	return context != nil && context.GetContext() != nil
}

func (w *LinkIngestionWorkflow) Execute(context cor.Context) {
	w.chain.Execute(context)
}

// Ingest runs the pipeline for url and returns the hex id of the new record.
// Cancellation of ctx is not passed on; each stage is bounded by its own
// timeout. Temporary artifacts are removed before it returns.
func (w *LinkIngestionWorkflow) Ingest(ctx context.Context, url string) (string, error) {
	chCtx := cor.NewBaseContext()
	chCtx.SetContext(context.WithoutCancel(ctx))
	defer closeContext(chCtx)

	chCtx.Add(commands.ParamSourceURL, url)
	chCtx.Add(commands.ParamSourceKind, model.SourceLink)
	w.Execute(chCtx)
	return result(chCtx)
}
