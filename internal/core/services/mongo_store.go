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
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/model"
)

// MongoRecordStore keeps one StudyRecord per document in a collection.
type MongoRecordStore struct {
	Collection *mongo.Collection
}

func NewMongoRecordStore(collection *mongo.Collection) *MongoRecordStore {
	return &MongoRecordStore{Collection: collection}
}

// Insert writes the record in a single operation and returns the generated
// identifier. The record's ID is updated in place.
func (s *MongoRecordStore) Insert(ctx context.Context, record *model.StudyRecord) (primitive.ObjectID, error) {
	res, err := s.Collection.InsertOne(ctx, record)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: insert failed: %w", ErrExternalService, err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("%w: unexpected inserted id type %T", ErrExternalService, res.InsertedID)
	}
	record.ID = id
	return id, nil
}

func (s *MongoRecordStore) FindCategories(ctx context.Context) ([]model.StudyRecord, error) {
	return s.find(ctx, FilterAll(), options.Find().SetProjection(CategoryProjection()))
}

func (s *MongoRecordStore) FindByCategory(ctx context.Context, subject, class, topic string) ([]model.StudyRecord, error) {
	return s.find(ctx, FilterByCategory(subject, class, topic))
}

func (s *MongoRecordStore) FindAll(ctx context.Context) ([]model.StudyRecord, error) {
	return s.find(ctx, FilterAll())
}

func (s *MongoRecordStore) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.Collection.DeleteOne(ctx, FilterByID(id))
	if err != nil {
		return 0, fmt.Errorf("%w: delete failed: %w", ErrExternalService, err)
	}
	return res.DeletedCount, nil
}

func (s *MongoRecordStore) find(ctx context.Context, filter any, opts ...*options.FindOptions) ([]model.StudyRecord, error) {
	cursor, err := s.Collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: find failed: %w", ErrExternalService, err)
	}
	out := make([]model.StudyRecord, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("%w: decode failed: %w", ErrExternalService, err)
	}
	return out, nil
}
