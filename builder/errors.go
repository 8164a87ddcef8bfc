// Package builder errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition
//     site; buildErrorf attaches operation context at the call site.
package builder

import (
	"errors"
	"fmt"
)

// ErrNonContiguousIndex indicates a caller tried to assign an explicit
// vertex or edge index other than the next contiguous integer. The
// staging area only ever hands out indices [0, n); it does not support
// sparse or caller-chosen numbering.
var ErrNonContiguousIndex = errors.New("builder: index must be the next contiguous integer")

// ErrEmptyReindexTarget indicates ReIndexAndBuild/ReIndexAndBuildMutable
// was asked to re-index edges on a staged graph whose capabilities are
// undirected, where edge re-indexing has no defined meaning.
var ErrEmptyReindexTarget = errors.New("builder: edge re-indexing requires a directed graph")

// buildErrorf wraps an inner error with the given operation's name,
// preserving the sentinel for errors.Is while adding call-site context.
func buildErrorf(op string, err error) error {
	return fmt.Errorf("builder: %s: %w", op, err)
}
