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

package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
)

// TranscriptAPI is the part of the AssemblyAI transcript service used here.
type TranscriptAPI interface {
	TranscribeFromReader(ctx context.Context, reader io.Reader, opts *aai.TranscriptOptionalParams) (aai.Transcript, error)
}

// AssemblyAITranscriber uploads a local audio file and waits for the
// transcript. It does not retry.
type AssemblyAITranscriber struct {
	API     TranscriptAPI
	Timeout time.Duration
}

// NewAssemblyAITranscriber returns a transcriber for client. A nil client
// yields a transcriber that always fails.
func NewAssemblyAITranscriber(client *aai.Client, timeout time.Duration) *AssemblyAITranscriber {
	t := &AssemblyAITranscriber{Timeout: timeout}
	if client != nil {
		t.API = client.Transcripts
	}
	return t
}

func (t *AssemblyAITranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if t.API == nil {
		return "", fmt.Errorf("%w: transcription service is not configured", ErrTranscription)
	}
	f, err := os.Open(audioPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: audio file not found: %s", ErrTranscription, audioPath)
		}
		return "", fmt.Errorf("%w: %w", ErrTranscription, err)
	}
	defer f.Close()

	if t.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}

	slog.InfoContext(ctx, "starting transcription", "file", audioPath)
	transcript, err := t.API.TranscribeFromReader(ctx, f, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTranscription, err)
	}
	if transcript.Status == aai.TranscriptStatusError {
		return "", fmt.Errorf("%w: %s", ErrTranscription, aai.ToString(transcript.Error))
	}
	text := strings.TrimSpace(aai.ToString(transcript.Text))
	if text == "" {
		return "", fmt.Errorf("%w: transcript is empty", ErrTranscription)
	}
	slog.InfoContext(ctx, "transcription complete", "file", audioPath, "chars", len(text))
	return text, nil
}
