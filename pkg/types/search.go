// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the urban lookup client:
// the definition records returned by the dictionary service, the display
// options chosen on the command line, and the client configuration.
package types

import "math"

// DefinitionRecord is one definition entry returned by the dictionary
// service. Records carry no identity beyond their position in the response.
type DefinitionRecord struct {
	// Word is the defined term as the service spells it.
	Word string `json:"word" yaml:"word"`

	// Definition is the definition text.
	Definition string `json:"definition" yaml:"definition"`

	// Permalink is the canonical URL of the entry.
	Permalink string `json:"permalink" yaml:"permalink"`

	// Example is a usage example, possibly empty.
	Example string `json:"example" yaml:"example"`
}

// SearchResponse is the decoded body of a define request. List keeps the
// service's order and may be empty.
type SearchResponse struct {
	List []DefinitionRecord `json:"list" yaml:"list"`
}

// IsEmpty reports whether the response holds no records.
func (r SearchResponse) IsEmpty() bool {
	return len(r.List) == 0
}

// Top returns at most n records from the head of the list. A non-positive n
// yields no records.
func (r SearchResponse) Top(n int) []DefinitionRecord {
	if n <= 0 {
		return nil
	}
	if n > len(r.List) {
		n = len(r.List)
	}
	return r.List[:n]
}

// MaxResultsLimit is the largest value accepted for DisplayOptions.MaxResults.
const MaxResultsLimit = 10

// DisplayOptions selects how many records to render. ShowAll and a nonzero
// MaxResults are mutually exclusive.
type DisplayOptions struct {
	// ShowAll requests every record in the response.
	ShowAll bool `json:"show_all" yaml:"show_all"`

	// MaxResults bounds the rendered records (0..10). Zero means the default of 1.
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// DisplayCount returns the number of records to render. ShowAll is
// effectively unbounded.
func (o DisplayOptions) DisplayCount() int {
	switch {
	case o.ShowAll:
		return math.MaxInt
	case o.MaxResults > 0:
		return o.MaxResults
	default:
		return 1
	}
}
