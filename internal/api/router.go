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
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/cloud"
)

// CORSConfig allows the given origins. An empty list or "*" allows every
// origin.
func CORSConfig(origins []string) cors.Config {
	out := cors.DefaultConfig()
	out.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}
	out.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	out.MaxAge = 12 * time.Hour
	if len(origins) == 0 || slices.Contains(origins, "*") {
		out.AllowAllOrigins = true
		return out
	}
	out.AllowOrigins = origins
	return out
}

// NewRouter wires middleware and every route.
func NewRouter(config *cloud.Config, records RecordQueries, ingestor LectureIngestor) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(config.Application.Name))
	r.Use(cors.New(CORSConfig(config.Application.AllowedOrigins)))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"msg": "Lecture notes server is up and feeling groovy!"})
	})
	IngestionRouter(r, ingestor)
	RecordRouter(r, records)
	return r
}
