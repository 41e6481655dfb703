// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/urban-define/pkg/types"
)

func init() {
	SetColor(false)
}

func testResponse(n int) types.SearchResponse {
	list := make([]types.DefinitionRecord, n)
	for i := range list {
		list[i] = types.DefinitionRecord{
			Word:       fmt.Sprintf("w%d", i),
			Definition: fmt.Sprintf("d%d", i),
			Permalink:  fmt.Sprintf("http://x/%d", i),
			Example:    fmt.Sprintf("e%d", i),
		}
	}
	return types.SearchResponse{List: list}
}

func expectedText(resp types.SearchResponse, n int) string {
	var b strings.Builder
	for _, r := range resp.Top(n) {
		fmt.Fprintf(&b, "Word: %s\nDefinition: %s\nLink: %s\nExample: %s\n\n", r.Word, r.Definition, r.Permalink, r.Example)
	}
	return b.String()
}

func TestText_SingleRecord(t *testing.T) {
	resp := types.SearchResponse{List: []types.DefinitionRecord{{
		Word: "hello", Definition: "a greeting", Permalink: "http://x", Example: "say hello",
	}}}
	var buf bytes.Buffer

	n := Text(&buf, resp, 1)
	assert.Equal(t, 1, n)
	assert.Equal(t, "Word: hello\nDefinition: a greeting\nLink: http://x\nExample: say hello\n\n", buf.String())
}

func TestText_EmitsMinOfListAndCount(t *testing.T) {
	for _, l := range []int{1, 3, 10} {
		for _, d := range []int{1, 2, 5, 10, math.MaxInt} {
			t.Run(fmt.Sprintf("L=%d/D=%d", l, d), func(t *testing.T) {
				resp := testResponse(l)
				var buf bytes.Buffer

				n := Text(&buf, resp, d)
				want := min(l, d)
				assert.Equal(t, want, n)
				assert.Equal(t, expectedText(resp, want), buf.String())
				assert.Equal(t, want, strings.Count(buf.String(), "\n\n"))
			})
		}
	}
}

func TestText_PreservesOrder(t *testing.T) {
	resp := testResponse(4)
	var buf bytes.Buffer
	Text(&buf, resp, 4)

	out := buf.String()
	prev := -1
	for i := 0; i < 4; i++ {
		idx := strings.Index(out, fmt.Sprintf("Word: w%d\n", i))
		require.GreaterOrEqual(t, idx, 0)
		assert.Greater(t, idx, prev)
		prev = idx
	}
}

func TestText_EmptyResponse(t *testing.T) {
	var buf bytes.Buffer
	n := Text(&buf, types.SearchResponse{List: []types.DefinitionRecord{}}, 5)
	assert.Equal(t, 0, n)
	assert.Equal(t, NotFoundMessage+"\n", buf.String())
	assert.NotContains(t, buf.String(), "Word:")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, testResponse(5), 2))

	var got []types.DefinitionRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, testResponse(5).List[:2], got)
}

func TestJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, types.SearchResponse{}, 1))
	assert.Equal(t, "[]\n", buf.String())
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, YAML(&buf, testResponse(3), math.MaxInt))

	var got []types.DefinitionRecord
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, testResponse(3).List, got)
	assert.Contains(t, buf.String(), "permalink: http://x/0")
}

func TestWrite_Formats(t *testing.T) {
	resp := testResponse(2)
	tests := []struct {
		format types.OutputFormat
		want   string
	}{
		{"", "Word: w0"},
		{types.OutputText, "Word: w0"},
		{types.OutputJSON, `"word": "w0"`},
		{types.OutputYAML, "word: w0"},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, tt.format, resp, 1))
			assert.Contains(t, buf.String(), tt.want)
			assert.NotContains(t, buf.String(), "w1")
		})
	}

	err := Write(&bytes.Buffer{}, "xml", resp, 1)
	assert.ErrorContains(t, err, `unknown output format "xml"`)
}

func TestStatusLines(t *testing.T) {
	var buf bytes.Buffer
	Warn(&buf, "careful")
	Error(&buf, "broken")
	assert.Equal(t, "careful\nbroken\n", buf.String())
}
