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
	"log/slog"

	"cloud.google.com/go/pubsub"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// PubSubPublisher sends messages to a single topic and waits for the server
// acknowledgement.
type PubSubPublisher struct {
	topic *pubsub.Topic
}

// NewPubSubPublisher wraps topic.
func NewPubSubPublisher(topic *pubsub.Topic) *PubSubPublisher {
	return &PubSubPublisher{topic: topic}
}

func (p *PubSubPublisher) Publish(ctx context.Context, data []byte, attributes map[string]string) (string, error) {
	ctx, span := otel.Tracer("message-publisher").Start(ctx, "publish-message")
	defer span.End()
	span.SetAttributes(attribute.String("topic", p.topic.ID()))

	id, err := p.topic.Publish(ctx, &pubsub.Message{Data: data, Attributes: attributes}).Get(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	slog.DebugContext(ctx, "published message", "topic", p.topic.ID(), "message_id", id)
	span.SetStatus(codes.Ok, "")
	return id, nil
}
