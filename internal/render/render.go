// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render writes lookup results for the terminal (four lines per
// record) or as JSON/YAML for scripting.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gookit/color"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/urban-define/pkg/types"
)

// NotFoundMessage is printed when the response holds no records.
const NotFoundMessage = "Could not find the requested search term."

// SetColor turns ANSI colors on or off for status lines. Colors are also
// dropped automatically when the terminal does not support them.
func SetColor(enabled bool) {
	color.Enable = enabled
}

// Warn writes msg in yellow followed by a newline.
func Warn(w io.Writer, msg string) {
	fmt.Fprintln(w, color.Yellow.Sprint(msg))
}

// Error writes msg in red followed by a newline.
func Error(w io.Writer, msg string) {
	fmt.Fprintln(w, color.Red.Sprint(msg))
}

// Text renders the first count records of resp, each as Word, Definition,
// Link and Example lines followed by a blank line. An empty response
// renders only NotFoundMessage. It returns the number of records written.
func Text(w io.Writer, resp types.SearchResponse, count int) int {
	if resp.IsEmpty() {
		Warn(w, NotFoundMessage)
		return 0
	}

	records := resp.Top(count)
	for _, r := range records {
		fmt.Fprintf(w, "Word: %s\nDefinition: %s\nLink: %s\nExample: %s\n\n",
			r.Word, r.Definition, r.Permalink, r.Example)
	}
	return len(records)
}

// JSON writes the first count records as an indented JSON array. An empty
// response writes [].
func JSON(w io.Writer, resp types.SearchResponse, count int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(nonNil(resp.Top(count)))
}

// YAML writes the first count records as a YAML sequence.
func YAML(w io.Writer, resp types.SearchResponse, count int) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(nonNil(resp.Top(count))); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

// Write dispatches on format. An empty format means text.
func Write(w io.Writer, format types.OutputFormat, resp types.SearchResponse, count int) error {
	switch format {
	case types.OutputText, "":
		Text(w, resp, count)
		return nil
	case types.OutputJSON:
		return JSON(w, resp, count)
	case types.OutputYAML:
		return YAML(w, resp, count)
	default:
		return fmt.Errorf("unknown output format %q (want text, json, or yaml)", format)
	}
}

func nonNil(records []types.DefinitionRecord) []types.DefinitionRecord {
	if records == nil {
		return []types.DefinitionRecord{}
	}
	return records
}
