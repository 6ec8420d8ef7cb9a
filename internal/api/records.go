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
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/model"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/services"
)

// RecordRouter registers the read and delete endpoints.
func RecordRouter(r gin.IRouter, records RecordQueries) {
	api := r.Group("/api")
	{
		api.GET("/structure", func(c *gin.Context) {
			out, err := records.Structure(c.Request.Context())
			if err != nil {
				abortWithError(c, err, "building structure")
				return
			}
			c.JSON(http.StatusOK, out)
		})

		api.GET("/content", func(c *gin.Context) {
			subject := strings.TrimSpace(c.Query("subject"))
			class := strings.TrimSpace(c.Query("class"))
			topic := strings.TrimSpace(c.Query("topic"))
			out, err := records.Content(c.Request.Context(), subject, class, topic)
			if err != nil {
				abortWithError(c, err, "fetching content")
				return
			}
			c.JSON(http.StatusOK, nonNil(out))
		})
	}

	r.GET("/transcripts", func(c *gin.Context) {
		out, err := records.All(c.Request.Context())
		if err != nil {
			abortWithError(c, err, "listing transcripts")
			return
		}
		c.JSON(http.StatusOK, nonNil(out))
	})

	r.DELETE("/delete_document/:id", func(c *gin.Context) {
		if err := records.Delete(c.Request.Context(), c.Param("id")); err != nil {
			abortWithError(c, err, "deleting the document")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
	})
}

func nonNil(in []model.StudyRecord) []model.StudyRecord {
	if in == nil {
		return []model.StudyRecord{}
	}
	return in
}

var _ RecordQueries = (*services.RecordService)(nil)
