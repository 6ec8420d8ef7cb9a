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
	"log/slog"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/model"
)

// RecordService answers the read and delete queries of the API.
type RecordService struct {
	Store RecordStore
}

func NewRecordService(store RecordStore) *RecordService {
	return &RecordService{Store: store}
}

// Structure builds the subject -> class -> topic tree over every record.
// Records missing any of the three values are skipped.
func (s *RecordService) Structure(ctx context.Context) (model.Structure, error) {
	records, err := s.Store.FindCategories(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to build record structure")
	}
	out := model.Structure{}
	skipped := 0
	for _, r := range records {
		if r.Subject == "" || r.Class == "" || r.Topic == "" {
			skipped++
			continue
		}
		out.Put(r.Subject, r.Class, r.Topic)
	}
	if skipped > 0 {
		slog.WarnContext(ctx, "skipped records with incomplete categories", "skipped", skipped)
	}
	slog.InfoContext(ctx, "built record structure", "processed", len(records)-skipped, "skipped", skipped)
	return out, nil
}

// Content returns every record filed under the exact subject, class and
// topic. An empty match is not an error.
func (s *RecordService) Content(ctx context.Context, subject, class, topic string) ([]model.StudyRecord, error) {
	var errs []error
	for _, f := range [][2]string{{"subject", subject}, {"class", class}, {"topic", topic}} {
		if strings.TrimSpace(f[1]) == "" {
			errs = append(errs, NewValidationError(f[0], "is required"))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	records, err := s.Store.FindByCategory(ctx, subject, class, topic)
	return records, WrapError(err, "failed to read records")
}

func (s *RecordService) All(ctx context.Context) ([]model.StudyRecord, error) {
	records, err := s.Store.FindAll(ctx)
	return records, WrapError(err, "failed to read records")
}

// Delete removes the record with the given hex identifier.
func (s *RecordService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	n, err := s.Store.DeleteByID(ctx, oid)
	if err != nil {
		return WrapError(err, "failed to delete record "+id)
	}
	if n == 0 {
		return ErrNotFound
	}
	slog.InfoContext(ctx, "deleted record", "id", id)
	return nil
}
