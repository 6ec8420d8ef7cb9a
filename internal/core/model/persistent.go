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

// Package model holds the data shapes shared by the ingestion pipeline, the
// record store and the HTTP surface.
package model

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UploadDateLayout is the wire format of StudyRecord.UploadDate: ISO-8601 in
// UTC with a literal Z suffix.
const UploadDateLayout = "2006-01-02T15:04:05.000000Z"

// Resource pairs one sub-topic with the links found for it. A nil link means
// nothing was found and serialises as null.
type Resource struct {
	Topic       string  `json:"topic" bson:"topic"`
	GoogleLink  *string `json:"googleLink" bson:"googleLink"`
	YoutubeLink *string `json:"youtubeLink" bson:"youtubeLink"`
}

// StudyRecord is the persisted result of processing one lecture.
type StudyRecord struct {
	ID                  primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UploadDate          time.Time          `json:"uploadDate" bson:"uploadDate"`
	Subject             string             `json:"subject" bson:"subject"`
	Class               string             `json:"class" bson:"class"`
	Topic               string             `json:"topic" bson:"topic"`
	TopicsCovered       []string           `json:"topicsCovered" bson:"topicsCovered"`
	Summary             string             `json:"summary" bson:"summary"`
	Transcript          string             `json:"transcript" bson:"transcript"`
	StructuredResources []Resource         `json:"structuredResources" bson:"structuredResources"`
}

// NewStudyRecord assembles a record stamped with the current UTC time. The
// identifier is left empty for the store to assign.
func NewStudyRecord(meta *LectureMetadata, transcript string, resources []Resource) *StudyRecord {
	topics := make([]string, 0, len(meta.SubTopics))
	topics = append(topics, meta.SubTopics...)
	if resources == nil {
		resources = make([]Resource, 0)
	}
	return &StudyRecord{
		UploadDate:          time.Now().UTC(),
		Subject:             meta.Subject,
		Class:               meta.Class,
		Topic:               meta.Topic,
		TopicsCovered:       topics,
		Summary:             meta.Summary,
		Transcript:          transcript,
		StructuredResources: resources,
	}
}

// MarshalJSON renders the identifier as hex and the upload date in
// UploadDateLayout. Nil slices are written as empty arrays.
func (r StudyRecord) MarshalJSON() ([]byte, error) {
	type alias StudyRecord
	out := struct {
		alias
		ID         string `json:"_id"`
		UploadDate string `json:"uploadDate"`
	}{
		alias:      alias(r),
		ID:         r.ID.Hex(),
		UploadDate: r.UploadDate.UTC().Format(UploadDateLayout),
	}
	if out.TopicsCovered == nil {
		out.TopicsCovered = []string{}
	}
	if out.StructuredResources == nil {
		out.StructuredResources = []Resource{}
	}
	return json.Marshal(out)
}

// Structure is the subject -> class -> topic navigation tree. Leaves are
// empty objects.
type Structure map[string]map[string]map[string]struct{}

// Put records one subject/class/topic path, creating intermediate levels.
func (s Structure) Put(subject, class, topic string) {
	classes, ok := s[subject]
	if !ok {
		classes = make(map[string]map[string]struct{})
		s[subject] = classes
	}
	topics, ok := classes[class]
	if !ok {
		topics = make(map[string]struct{})
		classes[class] = topics
	}
	topics[topic] = struct{}{}
}
