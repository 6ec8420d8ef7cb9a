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

package cloud

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/storage"
	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
	"google.golang.org/genai"
)

// ServiceClients owns every external client the server talks to. Optional
// clients are nil when their configuration is absent.
type ServiceClients struct {
	GenAIClient   *genai.Client
	MongoClient   *mongo.Client
	AssemblyAI    *aai.Client
	SearchService *customsearch.Service
	StorageClient *storage.Client                         // Nil unless an archive bucket is configured.
	PubsubClient  *pubsub.Client                          // Nil unless an ingestion topic is configured.
	IngestedTopic *pubsub.Topic                           // Nil unless an ingestion topic is configured.
	AgentModels   map[string]*QuotaAwareGenerativeAIModel // Keyed by the agent_models section name.
}

// Close releases every client that was created.
func (c *ServiceClients) Close(ctx context.Context) error {
	var err error
	if c.IngestedTopic != nil {
		c.IngestedTopic.Stop()
	}
	if c.PubsubClient != nil {
		err = errors.Join(err, c.PubsubClient.Close())
	}
	if c.StorageClient != nil {
		err = errors.Join(err, c.StorageClient.Close())
	}
	if c.MongoClient != nil {
		err = errors.Join(err, c.MongoClient.Disconnect(ctx))
	}
	return err
}

// NewCloudServiceClients creates every client the server needs from the
// configuration. The MongoDB connection is verified with a ping.
//
// Inputs:
//   - ctx: The root context used while dialing.
//   - config: The loaded application configuration.
//
// Outputs:
//   - *ServiceClients: The initialized clients.
//   - error: The first client that failed to initialize.
func NewCloudServiceClients(ctx context.Context, config *Config) (*ServiceClients, error) {
	gc, err := newGenAIClient(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("error creating genai client: %w", err)
	}

	mc, err := mongo.Connect(ctx, options.Client().
		ApplyURI(config.RecordStore.URI).
		SetTimeout(config.RecordStore.Timeout()))
	if err != nil {
		return nil, fmt.Errorf("error creating mongo client: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, config.RecordStore.Timeout())
	if err := mc.Ping(pingCtx, nil); err != nil {
		slog.WarnContext(ctx, "record store is not reachable yet", "error", err)
	} else {
		slog.InfoContext(ctx, "connected to record store", "database", config.RecordStore.Database)
	}
	cancel()

	out := &ServiceClients{
		GenAIClient: gc,
		MongoClient: mc,
		AgentModels: make(map[string]*QuotaAwareGenerativeAIModel),
	}

	if config.Secrets.AssemblyAIKey != "" {
		out.AssemblyAI = aai.NewClient(config.Secrets.AssemblyAIKey)
	} else {
		slog.WarnContext(ctx, "transcription key is not configured", "env", EnvAssemblyAIKey)
	}

	if config.Secrets.GoogleAPIKey != "" && config.Secrets.GoogleSearchID != "" {
		out.SearchService, err = customsearch.NewService(ctx, option.WithAPIKey(config.Secrets.GoogleAPIKey))
		if err != nil {
			return nil, fmt.Errorf("error creating search client: %w", err)
		}
	} else {
		slog.WarnContext(ctx, "search credentials are not configured, enrichment will return no links")
	}

	if config.Storage.ArchiveBucket != "" {
		out.StorageClient, err = storage.NewClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("error creating storage client: %w", err)
		}
	}

	if config.Notifications.IngestedTopic != "" {
		out.PubsubClient, err = pubsub.NewClient(ctx, config.Application.GoogleProjectId)
		if err != nil {
			return nil, fmt.Errorf("error creating pubsub client: %w", err)
		}
		out.IngestedTopic = out.PubsubClient.Topic(config.Notifications.IngestedTopic)
	}

	for key, values := range config.AgentModels {
		out.AgentModels[key] = NewQuotaAwareModelFromConfig(values, gc.Models)
	}

	return out, nil
}

func newGenAIClient(ctx context.Context, config *Config) (*genai.Client, error) {
	if config.Secrets.GenAIKey != "" {
		return genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  config.Secrets.GenAIKey,
			Backend: genai.BackendGeminiAPI,
		})
	}
	if config.Application.GoogleProjectId != "" {
		return genai.NewClient(ctx, &genai.ClientConfig{
			Project:  config.Application.GoogleProjectId,
			Location: config.Application.GoogleLocation,
			Backend:  genai.BackendVertexAI,
		})
	}
	return nil, fmt.Errorf("set %s or application.google_project_id", EnvGenAIKey)
}
