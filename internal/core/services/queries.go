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
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Field names of the Documents collection.
const (
	FieldID         = "_id"
	FieldSubject    = "subject"
	FieldClass      = "class"
	FieldTopic      = "topic"
	FieldUploadDate = "uploadDate"
)

func FilterAll() bson.M {
	return bson.M{}
}

func FilterByID(id primitive.ObjectID) bson.M {
	return bson.M{FieldID: id}
}

// FilterByCategory matches subject, class and topic exactly.
func FilterByCategory(subject, class, topic string) bson.M {
	return bson.M{FieldSubject: subject, FieldClass: class, FieldTopic: topic}
}

// CategoryProjection selects only the fields needed to build the structure
// tree.
func CategoryProjection() bson.M {
	return bson.M{FieldID: 0, FieldSubject: 1, FieldClass: 1, FieldTopic: 1}
}
