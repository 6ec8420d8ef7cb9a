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
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/cloud"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/cor"
)

func newContext(t *testing.T) cor.Context {
	t.Helper()
	ctx := cor.NewBaseContext()
	ctx.SetContext(context.Background())
	t.Cleanup(ctx.Close)
	return ctx
}

func testConfig(t *testing.T) *cloud.Config {
	t.Helper()
	config := cloud.NewConfig()
	config.Application.UploadDir = t.TempDir()
	config.Application.AudioDir = t.TempDir()
	config.Application.ThreadPoolSize = 2
	return config
}

// touchLast is a Runner that creates the file named by its last argument.
func touchLast(_ context.Context, _ string, args ...string) ([]byte, error) {
	return nil, os.WriteFile(args[len(args)-1], []byte("audio"), 0o600)
}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := t.TempDir() + string(os.PathSeparator) + name
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}
