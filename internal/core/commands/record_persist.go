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
	"log/slog"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/cor"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/model"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/services"
)

// RecordPersist inserts the assembled record and outputs its hex id.
type RecordPersist struct {
	cor.BaseCommand
	store services.RecordStore
}

// NewRecordPersist is the constructor for RecordPersist.
//
// Inputs:
//   - name: The command name used for logging and telemetry.
//   - store: The record store receiving the insert.
//
// Outputs:
//   - *RecordPersist: Reads ParamRecord and writes ParamRecordID.
func NewRecordPersist(name string, store services.RecordStore) *RecordPersist {
	out := &RecordPersist{BaseCommand: *cor.NewBaseCommand(name), store: store}
	out.InputParamName = ParamRecord
	out.OutputParamName = ParamRecordID
	return out
}

func (c *RecordPersist) Execute(context cor.Context) {
	record := context.Get(c.GetInputParam()).(*model.StudyRecord)
	id, err := c.store.Insert(context.GetContext(), record)
	if err != nil {
		slog.ErrorContext(context.GetContext(), "failed to insert record", "subject", record.Subject, "topic", record.Topic, "error", err)
		fail(c, context, err)
		return
	}
	slog.InfoContext(context.GetContext(), "stored record", "id", id.Hex(), "subject", record.Subject, "class", record.Class, "topic", record.Topic)
	succeed(c, context, id.Hex())
}
