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

// Package workflow assembles the ingestion commands into the pipelines run
// for each request.
package workflow

import (
	"errors"
	"fmt"
	"log/slog"
	"text/template"

	"cloud.google.com/go/storage"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/cloud"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/commands"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/cor"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/services"
)

// ErrNoRecord is returned when a pipeline finished without errors but did
// not store a record.
var ErrNoRecord = errors.New("pipeline did not produce a record")

// Dependencies are the adapters the ingestion pipelines call. Publisher and
// Storage are optional.
type Dependencies struct {
	Transcriber services.Transcriber
	Generator   services.TextGenerator
	Searcher    services.Searcher
	Store       services.RecordStore
	Publisher   services.EventPublisher
	Storage     *storage.Client
	Run         commands.Runner
}

func (d Dependencies) validate() error {
	switch {
	case d.Transcriber == nil:
		return errors.New("missing transcriber")
	case d.Generator == nil:
		return errors.New("missing text generator")
	case d.Searcher == nil:
		return errors.New("missing searcher")
	case d.Store == nil:
		return errors.New("missing record store")
	}
	return nil
}

func (d Dependencies) runner() commands.Runner {
	if d.Run == nil {
		return commands.ExecRunner
	}
	return d.Run
}

func extractionTemplate(config *cloud.Config) (*template.Template, error) {
	if config.PromptTemplates.Extraction == "" {
		return nil, errors.New("extraction prompt template is empty")
	}
	tmpl, err := template.New("extraction-template").Parse(config.PromptTemplates.Extraction)
	if err != nil {
		return nil, fmt.Errorf("failed to parse extraction prompt template: %w", err)
	}
	return tmpl, nil
}

// addAnalysis appends the steps shared by every source once a transcript is
// available: extraction, enrichment, assembly, persistence and notification.
func addAnalysis(chain cor.Chain, config *cloud.Config, deps Dependencies, tmpl *template.Template) {
	chain.AddCommand(commands.NewMetadataExtractor("extract-metadata", deps.Generator, tmpl))
	chain.AddCommand(commands.NewMetadataParser("parse-metadata"))
	chain.AddCommand(commands.NewResourceEnricher("enrich-resources", deps.Searcher, config.Search, config.Application.ThreadPoolSize))
	chain.AddCommand(commands.NewRecordAssembler("assemble-record"))
	chain.AddCommand(commands.NewRecordPersist("persist-record", deps.Store))
	chain.AddCommand(commands.NewRecordPublish("publish-record", deps.Publisher))
}

// result returns the stored record id or the joined pipeline errors.
func result(chCtx cor.Context) (string, error) {
	if err := chCtx.Err(); err != nil {
		return "", err
	}
	id, ok := chCtx.Get(commands.ParamRecordID).(string)
	if !ok || id == "" {
		return "", ErrNoRecord
	}
	return id, nil
}

// logSteps records the command order of a newly built pipeline.
func logSteps(chain *cor.BaseChain) {
	steps := make([]string, 0, len(chain.Commands()))
	for _, c := range chain.Commands() {
		steps = append(steps, c.GetName())
	}
	slog.Debug("built ingestion pipeline", "name", chain.GetName(), "steps", steps)
}

func closeContext(chCtx cor.Context) {
	if files := chCtx.GetTempFiles(); len(files) > 0 {
		slog.DebugContext(chCtx.GetContext(), "removing temporary files", "files", files)
	}
	chCtx.Close()
}
