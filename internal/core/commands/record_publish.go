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
	"encoding/json"
	"log/slog"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/cor"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/model"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/services"
)

// RecordPublish announces a stored record on the ingestion topic. It is
// skipped when no publisher is configured and its failures are only logged.
type RecordPublish struct {
	cor.BaseCommand
	publisher services.EventPublisher // Optional; nil skips the command.
}

func NewRecordPublish(name string, publisher services.EventPublisher) *RecordPublish {
	out := &RecordPublish{BaseCommand: *cor.NewBaseCommand(name), publisher: publisher}
	out.InputParamName = ParamRecordID
	return out
}

func (c *RecordPublish) IsExecutable(context cor.Context) bool {
	return c.publisher != nil && c.BaseCommand.IsExecutable(context) && context.Get(ParamRecord) != nil
}

func (c *RecordPublish) Execute(context cor.Context) {
	id, _ := getString(context, c.GetInputParam())
	record := context.Get(ParamRecord).(*model.StudyRecord)
	source, ok := context.Get(ParamSourceKind).(model.SourceKind)
	if !ok {
		source = model.SourceLink
	}

	event := model.IngestionEvent{
		ID:      id,
		Subject: record.Subject,
		Class:   record.Class,
		Topic:   record.Topic,
		Source:  source,
	}
	data, err := json.Marshal(event)
	if err != nil {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		slog.WarnContext(context.GetContext(), "failed to encode ingestion event", "id", id, "error", err)
		return
	}
	msgID, err := c.publisher.Publish(context.GetContext(), data, map[string]string{"source": string(source)})
	if err != nil {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		slog.WarnContext(context.GetContext(), "failed to publish ingestion event", "id", id, "error", err)
		return
	}
	c.GetSuccessCounter().Add(context.GetContext(), 1)
	slog.InfoContext(context.GetContext(), "published ingestion event", "id", id, "message_id", msgID)
}
