// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lookup runs one dictionary lookup: validate the display options,
// fetch and decode the response, and render the requested records. It also
// defines the error kinds a lookup can fail with.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/pdiddy/urban-define/internal/render"
	"github.com/pdiddy/urban-define/pkg/types"
)

// Definer fetches and decodes the definitions for a term.
type Definer interface {
	Lookup(ctx context.Context, term string) (types.SearchResponse, error)
}

// Request holds the inputs of one lookup.
type Request struct {
	Term    string
	Display types.DisplayOptions
	Format  types.OutputFormat
}

// Result summarizes a completed lookup.
type Result struct {
	// Total is the number of records the service returned.
	Total int

	// Shown is the number of records rendered.
	Shown int
}

// Run validates req.Display, performs the lookup through d, and renders the
// records to w. Invalid options fail before d is called. An empty response
// is not an error.
func Run(ctx context.Context, d Definer, req Request, w io.Writer) (Result, error) {
	if err := ValidateOptions(req.Display); err != nil {
		return Result{}, err
	}

	resp, err := d.Lookup(ctx, req.Term)
	if err != nil {
		return Result{}, err
	}

	count := req.Display.DisplayCount()
	if err := render.Write(w, req.Format, resp, count); err != nil {
		return Result{}, fmt.Errorf("writing results: %w", err)
	}

	return Result{
		Total: len(resp.List),
		Shown: len(resp.Top(count)),
	}, nil
}

// Messages shown to the user for each failure kind.
const (
	MsgConnection = "Error connecting to the Urban Dictionary server. Try again later."
	MsgDecode     = "Unexpected response from the Urban Dictionary server."
)

// UserMessage returns the one-line message printed for err. Connection and
// API failures share one message.
func UserMessage(err error) string {
	var cfgErr *ConfigurationError
	switch {
	case errors.As(err, &cfgErr):
		return cfgErr.Message
	case errors.Is(err, ErrConnection), errors.Is(err, ErrAPI):
		return MsgConnection
	case errors.Is(err, ErrDecode):
		return MsgDecode
	default:
		return err.Error()
	}
}
