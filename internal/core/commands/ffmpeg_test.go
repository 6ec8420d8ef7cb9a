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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/commands"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/model"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/services"
)

func TestAudioArgs(t *testing.T) {
	args := commands.AudioArgs("in.mp4", "out.wav")
	assert.Equal(t, "out.wav", args[len(args)-1])
	assert.Contains(t, strings.Join(args, " "), "-i in.mp4 -vn")
}

func TestFFMpegCommand(t *testing.T) {
	config := testConfig(t)
	var gotTool string
	run := func(ctx context.Context, name string, args ...string) ([]byte, error) {
		gotTool = name
		return touchLast(ctx, name, args...)
	}
	cmd := commands.NewFFMpegCommand("ffmpeg", config, run)

	doc := newContext(t)
	doc.Add(commands.ParamUploadFile, &model.UploadedFile{Path: "x.pdf", Kind: model.SourceDocument})
	assert.False(t, cmd.IsExecutable(doc))

	ctx := newContext(t)
	ctx.Add(commands.ParamUploadFile, &model.UploadedFile{Path: "lecture.mp4", Extension: "mp4", Kind: model.SourceVideo})
	require.True(t, cmd.IsExecutable(ctx))
	cmd.Execute(ctx)

	require.False(t, ctx.HasErrors())
	assert.Equal(t, config.Downloader.FFMpegPath, gotTool)
	audio := ctx.Get(commands.ParamAudioPath).(string)
	assert.FileExists(t, audio)
	assert.Contains(t, ctx.GetTempFiles(), audio)
}

func TestFFMpegCommandFailure(t *testing.T) {
	run := func(context.Context, string, ...string) ([]byte, error) {
		return []byte("Invalid data found"), errors.New("exit status 1")
	}
	cmd := commands.NewFFMpegCommand("ffmpeg", testConfig(t), run)

	ctx := newContext(t)
	ctx.Add(commands.ParamUploadFile, &model.UploadedFile{Path: "lecture.mov", Extension: "mov", Kind: model.SourceVideo})
	cmd.Execute(ctx)

	assert.ErrorIs(t, ctx.Err(), services.ErrAcquisition)
	assert.Nil(t, ctx.Get(commands.ParamAudioPath))
}
