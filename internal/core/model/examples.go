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

package model

import "time"

// GetExampleModelResponse returns a well formed extraction response.
func GetExampleModelResponse() string {
	return `1. Subject: Physics
2. Class: 11th Grade
3. Topic: Laws of Motion
4. Sub-Topics: Newton's First Law, Newton's Second Law, Inertia
5. Summary: The lecture introduces Newton's laws and explains inertia with everyday examples.`
}

// GetExampleMetadata is the metadata parsed from GetExampleModelResponse.
func GetExampleMetadata() *LectureMetadata {
	return &LectureMetadata{
		Subject:   "Physics",
		Class:     "11th Grade",
		Topic:     "Laws of Motion",
		SubTopics: []string{"Newton's First Law", "Newton's Second Law", "Inertia"},
		Summary:   "The lecture introduces Newton's laws and explains inertia with everyday examples.",
	}
}

// GetExampleRecord returns a stored-looking record for tests.
func GetExampleRecord() *StudyRecord {
	yt := "https://www.youtube.com/watch?v=abc123"
	web := "https://en.wikipedia.org/wiki/Inertia"
	r := NewStudyRecord(GetExampleMetadata(), "Today we talk about motion.", []Resource{
		{Topic: "Newton's First Law", YoutubeLink: &yt, GoogleLink: &web},
		{Topic: "Newton's Second Law"},
		{Topic: "Inertia", GoogleLink: &web},
	})
	r.UploadDate = time.Date(2024, 10, 11, 3, 4, 8, 0, time.UTC)
	return r
}
