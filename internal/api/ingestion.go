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

package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/services"
)

// LinkRequest is the body of POST /upload_link.
type LinkRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// IngestionRouter registers the endpoints that add lectures.
func IngestionRouter(r gin.IRouter, ingestor LectureIngestor) {
	r.POST("/upload_link", func(c *gin.Context) {
		var req LinkRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, services.NewValidationError("url", "missing or invalid 'url' key in request body"), "reading the request")
			return
		}
		id, err := ingestor.IngestLink(c.Request.Context(), req.URL)
		if err != nil {
			abortWithError(c, err, "processing the URL link")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":     "Lecture processed and saved successfully!",
			"inserted_id": id,
		})
	})

	r.POST("/upload_file", func(c *gin.Context) {
		header, err := c.FormFile("file")
		if err != nil {
			abortWithError(c, services.NewValidationError("file", "no file part in the request"), "reading the request")
			return
		}
		f, err := header.Open()
		if err != nil {
			abortWithError(c, fmt.Errorf("%w: %w", services.ErrInvalidInput, err), "reading the upload")
			return
		}
		defer f.Close()

		id, err := ingestor.IngestFile(c.Request.Context(), header.Filename, f)
		if err != nil {
			abortWithError(c, err, "processing the file")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":     "File processed and saved successfully!",
			"inserted_id": id,
		})
	})
}
