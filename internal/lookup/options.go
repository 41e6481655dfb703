// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lookup

import (
	"fmt"

	"github.com/pdiddy/urban-define/pkg/types"
)

// ValidateOptions checks the display options before any request is made.
// MaxResults must lie in [0, types.MaxResultsLimit], and ShowAll excludes a
// nonzero MaxResults.
func ValidateOptions(opts types.DisplayOptions) error {
	if opts.MaxResults < 0 || opts.MaxResults > types.MaxResultsLimit {
		return &ConfigurationError{
			Message: fmt.Sprintf("Invalid value for --max_results/-M: %d is not in the range 0<=x<=%d.",
				opts.MaxResults, types.MaxResultsLimit),
		}
	}
	if opts.ShowAll && opts.MaxResults != 0 {
		return &ConfigurationError{
			Message: "Invalid options: --all/-A and --max_results/-M cannot both be set.",
		}
	}
	return nil
}
