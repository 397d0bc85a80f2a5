package catalog

import (
	"context"
	"fmt"
	"slices"

	"github.com/myrjola/liftplan/internal/program"
	"golang.org/x/sync/singleflight"
)

const sharedKey = "exercises"

// Shared collapses concurrent catalog fetches into one call to the underlying reader. Nothing is cached:
// a fetch that starts after the previous one finished queries the reader again.
type Shared struct {
	reader program.CatalogReader
	group  singleflight.Group
}

// NewShared wraps reader.
func NewShared(reader program.CatalogReader) *Shared {
	return &Shared{
		reader: reader,
		group:  singleflight.Group{},
	}
}

// ListExercises joins an in-flight fetch or starts a new one. The fetch itself is not cancelled when ctx is,
// because other callers may be waiting for it.
func (s *Shared) ListExercises(ctx context.Context) ([]program.CatalogEntry, error) {
	ch := s.group.DoChan(sharedKey, func() (any, error) {
		return s.reader.ListExercises(context.WithoutCancel(ctx))
	})
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("wait for shared catalog fetch: %w", context.Cause(ctx))
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err //nolint:wrapcheck // the reader's error is returned as is to every caller
		}
		entries, _ := res.Val.([]program.CatalogEntry)
		return slices.Clone(entries), nil
	}
}
