// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package urbandict

import (
	"bytes"
	"encoding/json"

	"github.com/pdiddy/urban-define/internal/lookup"
	"github.com/pdiddy/urban-define/pkg/types"
)

// defineResponse is the top-level JSON object. List stays raw so a missing
// key can be told apart from an empty array.
type defineResponse struct {
	List json.RawMessage `json:"list"`
}

// Decode parses a define response body. The body must be a JSON object with
// a "list" array; anything else is a *lookup.DecodeError. Records missing
// individual fields decode with empty strings.
func Decode(body []byte) (types.SearchResponse, error) {
	var dr defineResponse
	if err := json.Unmarshal(body, &dr); err != nil {
		return types.SearchResponse{}, &lookup.DecodeError{Reason: "invalid JSON object", Err: err}
	}

	raw := bytes.TrimSpace(dr.List)
	if len(raw) == 0 {
		return types.SearchResponse{}, &lookup.DecodeError{Reason: `missing "list" key`}
	}
	if raw[0] != '[' {
		return types.SearchResponse{}, &lookup.DecodeError{Reason: `"list" is not an array`}
	}

	var records []types.DefinitionRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return types.SearchResponse{}, &lookup.DecodeError{Reason: "invalid definition record", Err: err}
	}
	if records == nil {
		records = []types.DefinitionRecord{}
	}
	return types.SearchResponse{List: records}, nil
}

// Encode writes resp in the wire shape Decode accepts.
func Encode(resp types.SearchResponse) ([]byte, error) {
	list := resp.List
	if list == nil {
		list = []types.DefinitionRecord{}
	}
	return json.Marshal(types.SearchResponse{List: list})
}
