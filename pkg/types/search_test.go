// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayCount(t *testing.T) {
	tests := []struct {
		name string
		opts DisplayOptions
		want int
	}{
		{"default shows one", DisplayOptions{}, 1},
		{"max results", DisplayOptions{MaxResults: 3}, 3},
		{"max results at limit", DisplayOptions{MaxResults: MaxResultsLimit}, 10},
		{"show all is unbounded", DisplayOptions{ShowAll: true}, math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.DisplayCount())
		})
	}
}

func TestSearchResponseTop(t *testing.T) {
	resp := SearchResponse{List: []DefinitionRecord{
		{Word: "a"}, {Word: "b"}, {Word: "c"},
	}}

	assert.Len(t, resp.Top(0), 0)
	assert.Len(t, resp.Top(-1), 0)
	assert.Equal(t, []DefinitionRecord{{Word: "a"}, {Word: "b"}}, resp.Top(2))
	assert.Equal(t, resp.List, resp.Top(3))
	assert.Equal(t, resp.List, resp.Top(math.MaxInt))

	assert.False(t, resp.IsEmpty())
	assert.True(t, SearchResponse{}.IsEmpty())
	assert.Empty(t, SearchResponse{}.Top(5))
}
