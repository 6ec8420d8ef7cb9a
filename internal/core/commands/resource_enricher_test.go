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

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/commands"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/model"
	"github.com/jaycherian/gcp-go-lecture-notes/internal/core/services/mocks"
)

func TestFirstOffSite(t *testing.T) {
	tests := []struct {
		name  string
		links []string
		site  string
		want  string
		ok    bool
	}{
		{"skips video site", []string{"https://www.youtube.com/watch?v=1", "https://en.wikipedia.org/wiki/Inertia"}, "youtube.com", "https://en.wikipedia.org/wiki/Inertia", true},
		{"skips subdomains", []string{"https://m.youtube.com/x", "https://youtube.com/y"}, "youtube.com", "", false},
		{"lookalike host kept", []string{"https://notyoutube.com/a"}, "youtube.com", "https://notyoutube.com/a", true},
		{"skips unparsable", []string{"::", "https://khanacademy.org"}, "youtube.com", "https://khanacademy.org", true},
		{"empty", nil, "youtube.com", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := commands.FirstOffSite(tt.links, tt.site)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResourceEnricherKeepsOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	config := testConfig(t)
	searcher := mocks.NewMockSearcher(ctrl)
	searcher.EXPECT().Search(gomock.Any(), gomock.Any(), "youtube.com", int64(1)).
		DoAndReturn(func(_ context.Context, q, _ string, _ int64) ([]string, error) {
			return []string{"https://www.youtube.com/watch?v=" + q}, nil
		}).Times(3)
	searcher.EXPECT().Search(gomock.Any(), gomock.Any(), "", int64(5)).
		DoAndReturn(func(_ context.Context, q, _ string, _ int64) ([]string, error) {
			return []string{"https://youtube.com/" + q, "https://example.org/" + q}, nil
		}).Times(3)

	enricher := commands.NewResourceEnricher("enrich", searcher, config.Search, config.Application.ThreadPoolSize)
	out := enricher.Enrich(context.Background(), []string{"a", "  ", "b", "c"})

	require.Len(t, out, 3)
	for i, topic := range []string{"a", "b", "c"} {
		assert.Equal(t, topic, out[i].Topic)
		require.NotNil(t, out[i].YoutubeLink)
		require.NotNil(t, out[i].GoogleLink)
		assert.Equal(t, "https://www.youtube.com/watch?v="+topic, *out[i].YoutubeLink)
		assert.Equal(t, "https://example.org/"+topic, *out[i].GoogleLink)
	}
}

func TestResourceEnricherDegradesPerTopic(t *testing.T) {
	ctrl := gomock.NewController(t)
	config := testConfig(t)
	searcher := mocks.NewMockSearcher(ctrl)
	searcher.EXPECT().Search(gomock.Any(), "broken", gomock.Any(), gomock.Any()).Return(nil, errors.New("quota")).Times(2)
	searcher.EXPECT().Search(gomock.Any(), "empty", gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	ctx := newContext(t)
	meta := model.NewLectureMetadata()
	meta.SubTopics = []string{"broken", "empty"}
	ctx.Add(commands.ParamMetadata, meta)
	commands.NewResourceEnricher("enrich", searcher, config.Search, 1).Execute(ctx)

	require.False(t, ctx.HasErrors())
	out := ctx.Get(commands.ParamResources).([]model.Resource)
	assert.Equal(t, []model.Resource{{Topic: "broken"}, {Topic: "empty"}}, out)
}

func TestResourceEnricherNoSubTopics(t *testing.T) {
	ctrl := gomock.NewController(t)
	config := testConfig(t)
	ctx := newContext(t)
	ctx.Add(commands.ParamMetadata, model.NewLectureMetadata())
	commands.NewResourceEnricher("enrich", mocks.NewMockSearcher(ctrl), config.Search, 2).Execute(ctx)

	assert.Equal(t, []model.Resource{}, ctx.Get(commands.ParamResources))
}
