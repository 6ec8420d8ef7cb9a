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

// Package test provides helpers shared by the test suites: a cached
// configuration loaded from the repository's test profile and a few small
// fixtures.
package test

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/cloud"
)

var (
	once   sync.Once
	config *cloud.Config
)

// HandleErr fails the test when err is not nil.
func HandleErr(err error, t *testing.T) {
	t.Helper()
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// ConfigDir returns the configs directory of the module, found by walking up
// from the working directory to go.mod.
func ConfigDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, "configs"), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found")
		}
		dir = parent
	}
}

// SetupOS points the configuration loader at the test profile.
func SetupOS() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.Setenv(cloud.EnvConfigFilePrefix, dir); err != nil {
		return err
	}
	return os.Setenv(cloud.EnvConfigRuntime, "test")
}

// GetConfig loads the test profile once and returns it. Callers that change
// values should work on a copy from NewTestConfig.
func GetConfig() *cloud.Config {
	once.Do(func() {
		if err := SetupOS(); err != nil {
			log.Fatalf("failed to setup environment for test: %v\n", err)
		}
		config = cloud.NewConfig()
		if err := cloud.LoadConfig(config); err != nil {
			log.Fatalf("failed to load test configuration: %v\n", err)
		}
	})
	return config
}

// NewTestConfig returns a copy of the test profile whose upload and audio
// directories are private to t.
func NewTestConfig(t testing.TB) *cloud.Config {
	t.Helper()
	c := *GetConfig()
	c.Application.AllowedOrigins = append([]string(nil), c.Application.AllowedOrigins...)
	c.Application.UploadDir = t.TempDir()
	c.Application.AudioDir = t.TempDir()
	return &c
}
