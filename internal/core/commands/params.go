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

// Package commands contains the individual steps of the lecture ingestion
// pipelines. Each step is a cor.Command reading its input from, and writing
// its output to, a well known key of the shared chain context.
package commands

import (
	"context"
	"os/exec"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/cor"
)

// Context keys shared by the ingestion commands.
const (
	ParamSourceURL   = "__SOURCE_URL__"
	ParamUpload      = "__UPLOAD__"
	ParamUploadFile  = "__UPLOAD_FILE__"
	ParamAudioPath   = "__AUDIO_PATH__"
	ParamTranscript  = "__TRANSCRIPT__"
	ParamRawMetadata = "__RAW_METADATA__"
	ParamMetadata    = "__METADATA__"
	ParamResources   = "__RESOURCES__"
	ParamRecord      = "__RECORD__"
	ParamRecordID    = "__RECORD_ID__"
	ParamSourceKind  = "__SOURCE_KIND__"
	ParamArchive     = "__ARCHIVE__"
)

// Runner executes an external program and returns its combined output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner runs the program with os/exec, killing it when ctx ends.
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

func getString(context cor.Context, key string) (string, bool) {
	v, ok := context.Get(key).(string)
	return v, ok && v != ""
}

// fail records err against the command and bumps its error counter.
func fail(c cor.Command, context cor.Context, err error) {
	c.GetErrorCounter().Add(context.GetContext(), 1)
	context.AddError(c.GetName(), err)
}

// succeed stores value under the command's output key and bumps its success
// counter.
func succeed(c cor.Command, context cor.Context, value any) {
	c.GetSuccessCounter().Add(context.GetContext(), 1)
	if value != nil {
		context.Add(c.GetOutputParam(), value)
	}
}
