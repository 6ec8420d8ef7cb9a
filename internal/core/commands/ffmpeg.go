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

// This file defines the command that extracts the audio track of an
// uploaded video with ffmpeg. The output is a mono 16 kHz file in the audio
// directory, registered for cleanup before ffmpeg starts.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/cloud"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/cor"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/model"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/services"
)

// FFMpegCommand strips the audio track from an uploaded video into the audio
// directory. It only runs for video uploads.
type FFMpegCommand struct {
	cor.BaseCommand
	config *cloud.Config // Supplies the ffmpeg path, audio format and audio directory.
	run    Runner
}

// NewFFMpegCommand is the constructor for FFMpegCommand.
//
// Inputs:
//   - name: The command name used for logging and telemetry.
//   - config: The application configuration.
//   - run: The process runner, normally ExecRunner.
//
// Outputs:
//   - *FFMpegCommand: Reads ParamUploadFile and writes ParamAudioPath.
func NewFFMpegCommand(name string, config *cloud.Config, run Runner) *FFMpegCommand {
	out := &FFMpegCommand{BaseCommand: *cor.NewBaseCommand(name), config: config, run: run}
	out.InputParamName = ParamUploadFile
	out.OutputParamName = ParamAudioPath
	return out
}

func (c *FFMpegCommand) IsExecutable(context cor.Context) bool {
	f, ok := context.Get(c.GetInputParam()).(*model.UploadedFile)
	return ok && f != nil && f.Kind == model.SourceVideo && context.GetContext() != nil
}

// AudioArgs returns the ffmpeg arguments extracting a mono 16 kHz track
// from in to out.
func AudioArgs(in, out string) []string {
	return []string{"-y", "-hide_banner", "-loglevel", "error", "-i", in, "-vn", "-ac", "1", "-ar", "16000", out}
}

// Execute runs ffmpeg over the saved video and outputs the audio path.
func (c *FFMpegCommand) Execute(context cor.Context) {
	video := context.Get(c.GetInputParam()).(*model.UploadedFile)

	dir := c.config.Application.AudioDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fail(c, context, fmt.Errorf("%w: %w", services.ErrAcquisition, err))
		return
	}
	out := filepath.Join(dir, "audio_"+uuid.NewString()+"."+c.config.Downloader.AudioFormat)
	context.AddTempFile(out)

	ctx, cancel := contextWithTimeout(context.GetContext(), c.config.Downloader.Timeout())
	defer cancel()

	if res, err := c.run(ctx, c.config.Downloader.FFMpegPath, AudioArgs(video.Path, out)...); err != nil {
		slog.ErrorContext(ctx, "ffmpeg failed", "input", video.Path, "error", err, "output", tail(res))
		fail(c, context, fmt.Errorf("%w: error running ffmpeg: %w", services.ErrAcquisition, err))
		return
	}
	if _, err := os.Stat(out); err != nil {
		fail(c, context, fmt.Errorf("%w: ffmpeg produced no audio: %w", services.ErrAcquisition, err))
		return
	}
	succeed(c, context, out)
}
