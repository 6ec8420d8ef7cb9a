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

// This file defines the command that acquires the audio of a remote video.
//
// Logic Flow:
//  1. Read the source URL from the context. A blank URL is a validation error.
//  2. Reserve audio_<uuid>.<format> in the audio directory and register it
//     for cleanup before yt-dlp runs.
//  3. Run yt-dlp with the downloader timeout, extracting and converting the
//     audio stream.
//  4. Register any partial files yt-dlp left next to the target.
//  5. Output the audio path, or fail with ErrAcquisition when the tool failed
//     or produced nothing.
package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/cloud"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/cor"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/services"
)

// MediaDownload fetches the best audio stream of a remote video with yt-dlp
// and transcodes it to the configured format. Every request writes to its own
// audio_<uuid> file so concurrent downloads never collide.
type MediaDownload struct {
	cor.BaseCommand               // Embeds naming, tracing and metrics.
	config          *cloud.Config // Supplies the tool paths, audio format and audio directory.
	run             Runner        // Executes yt-dlp; swapped out in tests.
}

// NewMediaDownload is the constructor for MediaDownload.
//
// Inputs:
//   - name: The command name used for logging and telemetry.
//   - config: The application configuration.
//   - run: The process runner, normally ExecRunner.
//
// Outputs:
//   - *MediaDownload: Reads ParamSourceURL and writes ParamAudioPath.
func NewMediaDownload(name string, config *cloud.Config, run Runner) *MediaDownload {
	out := &MediaDownload{BaseCommand: *cor.NewBaseCommand(name), config: config, run: run}
	out.InputParamName = ParamSourceURL
	out.OutputParamName = ParamAudioPath
	return out
}

// IsExecutable lets the command run with a missing URL so that the
// validation failure is reported instead of silently skipped.
func (c *MediaDownload) IsExecutable(context cor.Context) bool {
	return context != nil && context.GetContext() != nil
}

// DownloadArgs returns the yt-dlp arguments writing base.<format>.
func DownloadArgs(d cloud.Downloader, url string, base string) []string {
	return []string{
		"--format", "bestaudio/best",
		"--no-playlist",
		"--extract-audio",
		"--audio-format", d.AudioFormat,
		"--audio-quality", d.AudioQuality,
		"--ffmpeg-location", d.FFMpegPath,
		"--output", base + ".%(ext)s",
		"--quiet", "--no-warnings",
		url,
	}
}

// Execute downloads the audio for the URL held in the context.
func (c *MediaDownload) Execute(context cor.Context) {
	url, _ := context.Get(c.GetInputParam()).(string)
	url = strings.TrimSpace(url)
	if url == "" {
		fail(c, context, services.NewValidationError("url", "is required"))
		return
	}

	dir := c.config.Application.AudioDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fail(c, context, fmt.Errorf("%w: %w", services.ErrAcquisition, err))
		return
	}
	base := filepath.Join(dir, "audio_"+uuid.NewString())
	expected := base + "." + c.config.Downloader.AudioFormat
	context.AddTempFile(expected)

	ctx, cancel := contextWithTimeout(context.GetContext(), c.config.Downloader.Timeout())
	defer cancel()

	slog.InfoContext(ctx, "downloading audio", "url", url, "output", expected)
	out, err := c.run(ctx, c.config.Downloader.YtDlpPath, DownloadArgs(c.config.Downloader, url, base)...)
	c.trackPartials(context, base)
	if err != nil {
		slog.ErrorContext(ctx, "audio download failed", "url", url, "error", err, "output", tail(out))
		fail(c, context, fmt.Errorf("%w: download failed: %w", services.ErrAcquisition, err))
		return
	}

	if _, err := os.Stat(expected); errors.Is(err, os.ErrNotExist) {
		slog.ErrorContext(ctx, "downloaded audio file is missing", "expected", expected, "present", listDir(dir))
		fail(c, context, fmt.Errorf("%w: audio file %s was not produced", services.ErrAcquisition, filepath.Base(expected)))
		return
	}

	succeed(c, context, expected)
}

// trackPartials registers every file yt-dlp left behind for this request.
func (c *MediaDownload) trackPartials(context cor.Context, base string) {
	matches, _ := filepath.Glob(base + ".*")
	expected := base + "." + c.config.Downloader.AudioFormat
	for _, m := range matches {
		if m != expected {
			context.AddTempFile(m)
		}
	}
}

func contextWithTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

func listDir(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// tail keeps the last part of a tool's output for logging.
func tail(b []byte) string {
	const limit = 2048
	if len(b) > limit {
		b = b[len(b)-limit:]
	}
	return strings.TrimSpace(string(b))
}
