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

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/cloud"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/commands"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/services"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/workflow"
)

// StateManager holds the components shared by every request.
type StateManager struct {
	config   *cloud.Config
	cloud    *cloud.ServiceClients
	records  *services.RecordService
	ingestor *workflow.Ingestor
}

// SetupOS defaults the configuration location to ./configs and the runtime
// to "local" unless the environment already chooses them.
func SetupOS() error {
	if _, ok := os.LookupEnv(cloud.EnvConfigFilePrefix); !ok {
		if err := os.Setenv(cloud.EnvConfigFilePrefix, "configs"); err != nil {
			return err
		}
	}
	if _, ok := os.LookupEnv(cloud.EnvConfigRuntime); !ok {
		return os.Setenv(cloud.EnvConfigRuntime, "local")
	}
	return nil
}

// GetConfig layers the TOML files and then the environment (including an
// optional .env file) over the built-in defaults.
func GetConfig() (*cloud.Config, error) {
	if err := cloud.LoadDotEnv(".env"); err != nil {
		return nil, err
	}
	if err := SetupOS(); err != nil {
		return nil, fmt.Errorf("failed to setup environment: %w", err)
	}
	config := cloud.NewConfig()
	if err := cloud.LoadConfig(config); err != nil {
		return nil, err
	}
	cloud.ApplyEnvironment(config)
	return config, nil
}

// InitState connects the external clients and builds the services and
// ingestion pipelines on top of them.
func InitState(ctx context.Context, config *cloud.Config) (*StateManager, error) {
	clients, err := cloud.NewCloudServiceClients(ctx, config)
	if err != nil {
		return nil, err
	}

	collection := clients.MongoClient.Database(config.RecordStore.Database).Collection(config.RecordStore.Collection)
	store := services.NewMongoRecordStore(collection)

	model, ok := clients.AgentModels[cloud.DefaultAgentModel]
	if !ok {
		_ = clients.Close(ctx)
		return nil, fmt.Errorf("agent model %q is not configured", cloud.DefaultAgentModel)
	}

	deps := workflow.Dependencies{
		Transcriber: services.NewAssemblyAITranscriber(clients.AssemblyAI, config.Transcription.Timeout()),
		Generator:   services.NewGenAITextGenerator(model),
		Searcher: services.NewGoogleSearch(clients.SearchService, config.Secrets.GoogleSearchID,
			config.Search.Timeout(), config.Search.RateLimit),
		Store:   store,
		Storage: clients.StorageClient,
		Run:     commands.ExecRunner,
	}
	if clients.IngestedTopic != nil {
		deps.Publisher = cloud.NewPubSubPublisher(clients.IngestedTopic)
	}

	ingestor, err := workflow.NewIngestor(config, deps)
	if err != nil {
		_ = clients.Close(ctx)
		return nil, err
	}

	slog.InfoContext(ctx, "initialized state",
		"database", config.RecordStore.Database,
		"archive", config.Storage.ArchiveBucket != "",
		"notifications", deps.Publisher != nil)

	return &StateManager{
		config:   config,
		cloud:    clients,
		records:  services.NewRecordService(store),
		ingestor: ingestor,
	}, nil
}
