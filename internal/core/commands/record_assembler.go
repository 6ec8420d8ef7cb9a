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

	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/cor"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/model"
)

// RecordAssembler builds the StudyRecord from the metadata, transcript and
// enriched resources gathered by the earlier steps.
type RecordAssembler struct {
	cor.BaseCommand
}

// NewRecordAssembler reads ParamMetadata and writes ParamRecord.
func NewRecordAssembler(name string) *RecordAssembler {
	out := &RecordAssembler{BaseCommand: *cor.NewBaseCommand(name)}
	out.InputParamName = ParamMetadata
	out.OutputParamName = ParamRecord
	return out
}

func (c *RecordAssembler) Execute(context cor.Context) {
	meta, ok := context.Get(c.GetInputParam()).(*model.LectureMetadata)
	if !ok || meta == nil {
		fail(c, context, fmt.Errorf("missing lecture metadata"))
		return
	}
	transcript, ok := getString(context, ParamTranscript)
	if !ok {
		fail(c, context, fmt.Errorf("missing transcript"))
		return
	}
	resources, _ := context.Get(ParamResources).([]model.Resource)
	succeed(c, context, model.NewStudyRecord(meta, transcript, resources))
}
