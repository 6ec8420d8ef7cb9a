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
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when request validation fails.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidID is returned when a record identifier is not a valid hex ObjectId.
	ErrInvalidID = errors.New("invalid document id format")
	// ErrNotFound is returned when no record matches.
	ErrNotFound = errors.New("document not found")
	// ErrAcquisition is returned when media could not be downloaded or saved.
	ErrAcquisition = errors.New("media acquisition failed")
	// ErrTranscription is returned when speech-to-text fails or yields no text.
	ErrTranscription = errors.New("transcription failed")
	// ErrGenerationBlocked is returned when the model gives no usable text.
	ErrGenerationBlocked = errors.New("metadata generation failed")
	// ErrExternalService is returned when a dependency call fails.
	ErrExternalService = errors.New("external service error")
)

// ValidationError names the offending field. It matches ErrInvalidInput
// with errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// WrapError wraps err with msg, keeping nil as nil.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
