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

package cloud_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/cloud"
	test "github.com/jaycherian/gcp-go-lecture-notes/internal/testutil"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadConfigLayersRuntimeOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env.toml"), `
[application]
name = "base"
thread_pool_size = 2

[record_store]
database = "lectures"

[prompt_templates]
extraction = "{{ .Transcript }}"
`)
	writeFile(t, filepath.Join(dir, ".env.unit.toml"), `
[application]
name = "override"
`)
	t.Setenv(cloud.EnvConfigFilePrefix, dir)
	t.Setenv(cloud.EnvConfigRuntime, "unit")

	config := cloud.NewConfig()
	require.NoError(t, cloud.LoadConfig(config))

	assert.Equal(t, "override", config.Application.Name)
	assert.Equal(t, 2, config.Application.ThreadPoolSize)
	assert.Equal(t, "lectures", config.RecordStore.Database)
	assert.Equal(t, "Documents", config.RecordStore.Collection)
	assert.Equal(t, "{{ .Transcript }}", config.PromptTemplates.Extraction)
}

func TestLoadConfigMissingFilesKeepsDefaults(t *testing.T) {
	t.Setenv(cloud.EnvConfigFilePrefix, t.TempDir())
	t.Setenv(cloud.EnvConfigRuntime, "")

	config := cloud.NewConfig()
	require.NoError(t, cloud.LoadConfig(config))
	assert.Equal(t, "vidoes", config.RecordStore.Database)
	assert.Equal(t, "youtube.com", config.Search.VideoSite)
	assert.Equal(t, 10*time.Second, config.Search.Timeout())
}

func TestLoadConfigRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env.toml"), "[application\nname=")
	t.Setenv(cloud.EnvConfigFilePrefix, dir)

	assert.Error(t, cloud.LoadConfig(cloud.NewConfig()))
}

func TestApplyEnvironment(t *testing.T) {
	t.Setenv(cloud.EnvAssemblyAIKey, "aai")
	t.Setenv(cloud.EnvGenAIKey, "gen")
	t.Setenv(cloud.EnvModelName, "gemini-test")
	t.Setenv(cloud.EnvGoogleAPIKey, "key")
	t.Setenv(cloud.EnvGoogleSearchID, "cx")
	t.Setenv(cloud.EnvMongoURI, "mongodb://db:27017")
	t.Setenv(cloud.EnvCORSOrigins, " http://a.test , ,http://b.test")
	t.Setenv(cloud.EnvPort, "9090")

	config := cloud.NewConfig()
	cloud.ApplyEnvironment(config)

	assert.Equal(t, "aai", config.Secrets.AssemblyAIKey)
	assert.Equal(t, "gen", config.Secrets.GenAIKey)
	assert.Equal(t, "key", config.Secrets.GoogleAPIKey)
	assert.Equal(t, "cx", config.Secrets.GoogleSearchID)
	assert.Equal(t, "mongodb://db:27017", config.RecordStore.URI)
	assert.Equal(t, "9090", config.Application.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, config.Application.AllowedOrigins)
	assert.Equal(t, "gemini-test", config.ExtractionModel().Model)
	assert.Equal(t, float32(0.2), config.ExtractionModel().Temperature)
}

func TestLoadDotEnvDoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path, "GOOGLE_CSE_ID=from-file\nMODEL_NAME=file-model\n")
	t.Setenv(cloud.EnvGoogleSearchID, "from-env")
	t.Setenv(cloud.EnvModelName, "")
	os.Unsetenv(cloud.EnvModelName)

	require.NoError(t, cloud.LoadDotEnv(path, filepath.Join(t.TempDir(), "missing.env")))
	assert.Equal(t, "from-env", os.Getenv(cloud.EnvGoogleSearchID))
	assert.Equal(t, "file-model", os.Getenv(cloud.EnvModelName))
}

func TestShippedProfilesDoNotRetryGeneration(t *testing.T) {
	dir, err := test.ConfigDir()
	require.NoError(t, err)

	for _, runtime := range []string{"local", "test"} {
		t.Run(runtime, func(t *testing.T) {
			t.Setenv(cloud.EnvConfigFilePrefix, dir)
			t.Setenv(cloud.EnvConfigRuntime, runtime)

			config := cloud.NewConfig()
			require.NoError(t, cloud.LoadConfig(config))
			assert.Zero(t, config.ExtractionModel().MaxRetries)
		})
	}
}

func TestShutdownTimeout(t *testing.T) {
	config := cloud.NewConfig()
	assert.Equal(t, 30*time.Second, config.ShutdownTimeout())

	config.Application.ShutdownTimeoutInSeconds = 1800
	assert.Equal(t, 30*time.Minute, config.ShutdownTimeout())
}
