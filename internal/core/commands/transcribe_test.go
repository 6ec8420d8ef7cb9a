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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/commands"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/services"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/services/mocks"
)

func TestTranscribeRemovesAudio(t *testing.T) {
	tests := []struct {
		name string
		text string
		err  error
	}{
		{"success", "hello class", nil},
		{"failure", "", fmt.Errorf("%w: status error", services.ErrTranscription)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			audio := writeTemp(t, "audio_1.wav", []byte("audio"))
			transcriber := mocks.NewMockTranscriber(ctrl)
			transcriber.EXPECT().Transcribe(gomock.Any(), audio).Return(tt.text, tt.err)

			ctx := newContext(t)
			ctx.Add(commands.ParamAudioPath, audio)
			commands.NewTranscribe("transcribe", transcriber).Execute(ctx)

			assert.NoFileExists(t, audio)
			if tt.err != nil {
				assert.ErrorIs(t, ctx.Err(), services.ErrTranscription)
				assert.Nil(t, ctx.Get(commands.ParamTranscript))
				return
			}
			assert.False(t, ctx.HasErrors())
			assert.Equal(t, tt.text, ctx.Get(commands.ParamTranscript))
		})
	}
}

func TestTranscribeSkippedWithoutAudio(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmd := commands.NewTranscribe("transcribe", mocks.NewMockTranscriber(ctrl))
	assert.False(t, cmd.IsExecutable(newContext(t)))
}
