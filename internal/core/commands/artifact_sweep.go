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
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/cloud"
)

// SweepArtifacts removes pipeline artifacts left behind by a previous
// process: audio_<uuid> files in the audio directory and <uuid>.<ext> files
// in the upload directory. Other files are left alone. It must run before
// any pipeline starts.
//
// Inputs:
//   - config: supplies the audio and upload directories
//
// Outputs:
//   - the number of files removed
func SweepArtifacts(ctx context.Context, config *cloud.Config) (int, error) {
	removed := 0
	var errs []error
	sweep := func(dir string, match func(string) bool) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				errs = append(errs, err)
			}
			return
		}
		for _, e := range entries {
			if !e.Type().IsRegular() || !match(e.Name()) {
				continue
			}
			path := filepath.Join(dir, e.Name())
			if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
				errs = append(errs, err)
				continue
			}
			slog.DebugContext(ctx, "removed stale artifact", "file", path)
			removed++
		}
	}
	sweep(config.Application.AudioDir, isAudioArtifact)
	sweep(config.Application.UploadDir, isUploadArtifact)
	if removed > 0 {
		slog.InfoContext(ctx, "removed stale pipeline artifacts", "count", removed)
	}
	return removed, errors.Join(errs...)
}

func isAudioArtifact(name string) bool {
	rest, ok := strings.CutPrefix(name, "audio_")
	if !ok {
		return false
	}
	// yt-dlp partials carry extra suffixes after the id.
	id, _, _ := strings.Cut(rest, ".")
	return uuid.Validate(id) == nil
}

func isUploadArtifact(name string) bool {
	id := strings.TrimSuffix(name, filepath.Ext(name))
	return uuid.Validate(id) == nil
}
