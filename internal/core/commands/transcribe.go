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
	"errors"
	"log/slog"
	"os"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/cor"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/services"
)

// Transcribe turns the audio artifact into text. The audio file is removed
// once the transcriber returns, whether or not it succeeded.
type Transcribe struct {
	cor.BaseCommand
	transcriber services.Transcriber
}

// NewTranscribe is the constructor for Transcribe.
//
// Inputs:
//   - name: The command name used for logging and telemetry.
//   - transcriber: The speech-to-text adapter.
//
// Outputs:
//   - *Transcribe: Reads ParamAudioPath and writes ParamTranscript.
func NewTranscribe(name string, transcriber services.Transcriber) *Transcribe {
	out := &Transcribe{BaseCommand: *cor.NewBaseCommand(name), transcriber: transcriber}
	out.InputParamName = ParamAudioPath
	out.OutputParamName = ParamTranscript
	return out
}

func (c *Transcribe) Execute(context cor.Context) {
	path, _ := getString(context, c.GetInputParam())
	defer removeArtifact(context, path)

	text, err := c.transcriber.Transcribe(context.GetContext(), path)
	if err != nil {
		fail(c, context, err)
		return
	}
	succeed(c, context, text)
}

func removeArtifact(context cor.Context, path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.WarnContext(context.GetContext(), "failed to remove audio file", "file", path, "error", err)
		return
	}
	slog.DebugContext(context.GetContext(), "removed audio file", "file", path)
}
