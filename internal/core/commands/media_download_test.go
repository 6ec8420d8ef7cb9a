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

package commands_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/commands"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/services"
)

// ytDlpStub writes the file yt-dlp would have produced for the --output
// template.
func ytDlpStub(format string) commands.Runner {
	return func(_ context.Context, _ string, args ...string) ([]byte, error) {
		for i, a := range args {
			if a == "--output" {
				out := strings.Replace(args[i+1], "%(ext)s", format, 1)
				return nil, os.WriteFile(out, []byte("audio"), 0o600)
			}
		}
		return nil, errors.New("no output flag")
	}
}

func TestDownloadArgs(t *testing.T) {
	config := testConfig(t)
	args := commands.DownloadArgs(config.Downloader, "https://youtu.be/x", "/tmp/audio_1")

	assert.Equal(t, "https://youtu.be/x", args[len(args)-1])
	assert.Contains(t, args, "bestaudio/best")
	assert.Contains(t, args, "--no-playlist")
	assert.Contains(t, args, "wav")
	assert.Contains(t, args, "192")
	assert.Contains(t, args, "/tmp/audio_1.%(ext)s")
}

func TestMediaDownloadWritesUniqueAudio(t *testing.T) {
	config := testConfig(t)
	cmd := commands.NewMediaDownload("download", config, ytDlpStub("wav"))

	first, second := newContext(t), newContext(t)
	first.Add(commands.ParamSourceURL, "https://youtu.be/a")
	second.Add(commands.ParamSourceURL, "https://youtu.be/a")
	cmd.Execute(first)
	cmd.Execute(second)

	require.False(t, first.HasErrors())
	require.False(t, second.HasErrors())
	a := first.Get(commands.ParamAudioPath).(string)
	b := second.Get(commands.ParamAudioPath).(string)
	assert.NotEqual(t, a, b)
	assert.FileExists(t, a)
	assert.True(t, strings.HasSuffix(a, ".wav"))
	assert.Contains(t, first.GetTempFiles(), a)
}

func TestMediaDownloadRequiresURL(t *testing.T) {
	called := false
	run := func(context.Context, string, ...string) ([]byte, error) {
		called = true
		return nil, nil
	}
	cmd := commands.NewMediaDownload("download", testConfig(t), run)

	ctx := newContext(t)
	require.True(t, cmd.IsExecutable(ctx))
	cmd.Execute(ctx)

	assert.False(t, called)
	assert.ErrorIs(t, ctx.Err(), services.ErrInvalidInput)
}

func TestMediaDownloadFailures(t *testing.T) {
	tests := []struct {
		name string
		run  commands.Runner
	}{
		{"tool error", func(context.Context, string, ...string) ([]byte, error) {
			return []byte("ERROR: unavailable"), errors.New("exit status 1")
		}},
		{"no output file", func(context.Context, string, ...string) ([]byte, error) {
			return nil, nil
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := commands.NewMediaDownload("download", testConfig(t), tt.run)
			ctx := newContext(t)
			ctx.Add(commands.ParamSourceURL, "https://youtu.be/a")
			cmd.Execute(ctx)

			assert.ErrorIs(t, ctx.Err(), services.ErrAcquisition)
			assert.Nil(t, ctx.Get(commands.ParamAudioPath))
			assert.Len(t, ctx.GetTempFiles(), 1)
		})
	}
}
