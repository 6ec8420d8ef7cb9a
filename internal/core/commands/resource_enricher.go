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

// This file defines the command that attaches study links to each
// sub-topic of a lecture.
//
// Logic Flow:
//  1. Read the parsed LectureMetadata and drop blank sub-topics.
//  2. Fan the sub-topics out over an errgroup limited to the configured
//     number of workers. Each lookup gets its own span.
//  3. For every sub-topic, search the video site for one link, then search
//     the web and keep the first link that is not on the video site.
//  4. Write the results back by index so the output keeps the input order.
//  5. Output the Resource list. Lookup errors are logged and leave the link
//     empty.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/cloud"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/cor"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/model"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/services"
)

// ResourceEnricher looks up one video link and one general web link for
// every sub-topic. Lookups run on a bounded pool of workers and the result
// keeps the sub-topic order. A failed lookup leaves its link empty and never
// fails the command.
type ResourceEnricher struct {
	cor.BaseCommand
	searcher        services.Searcher
	videoSite       string // Host searched for video links, e.g. youtube.com.
	webResults      int64  // Number of web results scanned for an off-site link.
	numberOfWorkers int    // Upper bound on concurrent lookups.
}

// NewResourceEnricher is the constructor for ResourceEnricher.
//
// Inputs:
//   - name: The command name used for logging and telemetry.
//   - searcher: The search adapter.
//   - search: Supplies the video site and the number of web results, 5 when
//     unset.
//   - numberOfWorkers: The lookup concurrency, at least 1.
//
// Outputs:
//   - *ResourceEnricher: Reads ParamMetadata and writes ParamResources.
func NewResourceEnricher(name string, searcher services.Searcher, search cloud.Search, numberOfWorkers int) *ResourceEnricher {
	out := &ResourceEnricher{
		BaseCommand:     *cor.NewBaseCommand(name),
		searcher:        searcher,
		videoSite:       search.VideoSite,
		webResults:      search.MaxResults,
		numberOfWorkers: max(1, numberOfWorkers),
	}
	if out.webResults <= 0 {
		out.webResults = 5
	}
	out.InputParamName = ParamMetadata
	out.OutputParamName = ParamResources
	return out
}

func (c *ResourceEnricher) Execute(context cor.Context) {
	meta, ok := context.Get(c.GetInputParam()).(*model.LectureMetadata)
	if !ok || meta == nil {
		fail(c, context, fmt.Errorf("missing lecture metadata"))
		return
	}
	succeed(c, context, c.Enrich(context.GetContext(), meta.SubTopics))
}

// Enrich returns one Resource per non-blank sub-topic, in input order.
func (c *ResourceEnricher) Enrich(ctx context.Context, subTopics []string) []model.Resource {
	topics := make([]string, 0, len(subTopics))
	for _, t := range subTopics {
		if t = strings.TrimSpace(t); t != "" {
			topics = append(topics, t)
		}
	}
	out := make([]model.Resource, len(topics))

	var g errgroup.Group
	g.SetLimit(c.numberOfWorkers)
	for i, topic := range topics {
		g.Go(func() error {
			out[i] = c.lookup(ctx, i, topic)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (c *ResourceEnricher) lookup(ctx context.Context, seq int, topic string) model.Resource {
	ctx, span := c.Tracer.Start(ctx, fmt.Sprintf("%s_lookup_%d", c.GetName(), seq))
	defer span.End()
	span.SetAttributes(attribute.String("topic", topic))

	res := model.Resource{Topic: topic}
	failed := false

	if links, err := c.searcher.Search(ctx, topic, c.videoSite, 1); err != nil {
		failed = true
		slog.WarnContext(ctx, "video lookup failed", "topic", topic, "error", err)
	} else if len(links) > 0 {
		res.YoutubeLink = &links[0]
	}

	if links, err := c.searcher.Search(ctx, topic, "", c.webResults); err != nil {
		failed = true
		slog.WarnContext(ctx, "web lookup failed", "topic", topic, "error", err)
	} else if link, ok := FirstOffSite(links, c.videoSite); ok {
		res.GoogleLink = &link
	}

	if failed {
		span.SetStatus(codes.Error, "lookup failed")
	} else {
		span.SetStatus(codes.Ok, "")
	}
	return res
}

// FirstOffSite returns the first link whose host is not site or one of its
// subdomains.
func FirstOffSite(links []string, site string) (string, bool) {
	site = strings.ToLower(strings.TrimPrefix(site, "www."))
	for _, l := range links {
		u, err := url.Parse(l)
		if err != nil || u.Host == "" {
			continue
		}
		host := strings.ToLower(u.Hostname())
		if site != "" && (host == site || strings.HasSuffix(host, "."+site)) {
			continue
		}
		return l, true
	}
	return "", false
}
