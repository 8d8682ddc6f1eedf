// Package source defines the contract every job-listing provider adapter
// satisfies. Adapters translate provider-specific payloads into canonical
// listing records at their input boundary; nothing downstream ever sees a
// provider shape.
package source

import (
	"context"

	"github.com/careerpilot/jobmatch/internal/listing"
)

// Source is one upstream job-listing provider. Search performs the
// provider's HTTP call and returns canonical records. A failed or
// unparsable response surfaces as an error; the pipeline records it as a
// per-source diagnostic and continues with the remaining sources.
type Source interface {
	Name() string
	Search(ctx context.Context, query, location string) (*listing.Listings, error)
}
