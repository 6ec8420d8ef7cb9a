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
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/api/customsearch/v1"
)

// GoogleSearch queries a Programmable Search Engine. A nil Service or an
// empty EngineID turns every call into an empty result.
type GoogleSearch struct {
	Service  *customsearch.Service
	EngineID string
	Timeout  time.Duration
	Limiter  *rate.Limiter
}

func NewGoogleSearch(service *customsearch.Service, engineID string, timeout time.Duration, requestsPerSecond float64) *GoogleSearch {
	limit := rate.Inf
	burst := 1
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
		burst = max(1, int(requestsPerSecond))
	}
	return &GoogleSearch{
		Service:  service,
		EngineID: engineID,
		Timeout:  timeout,
		Limiter:  rate.NewLimiter(limit, burst),
	}
}

func (g *GoogleSearch) Configured() bool {
	return g != nil && g.Service != nil && g.EngineID != ""
}

func (g *GoogleSearch) Search(ctx context.Context, query string, site string, num int64) ([]string, error) {
	if !g.Configured() {
		return []string{}, nil
	}
	if err := g.Limiter.Wait(ctx); err != nil {
		return nil, err
	}
	if g.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.Timeout)
		defer cancel()
	}

	call := g.Service.Cse.List().Cx(g.EngineID).Q(query).Num(num).Context(ctx)
	if site != "" {
		call = call.SiteSearch(site).SiteSearchFilter("i")
	}
	res, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("%w: search %q: %w", ErrExternalService, query, err)
	}

	links := make([]string, 0, len(res.Items))
	for _, item := range res.Items {
		if item != nil && item.Link != "" {
			links = append(links, item.Link)
		}
	}
	return links, nil
}
