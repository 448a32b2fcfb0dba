package domain

import "context"

// BloomRepository is a probabilistic slug-existence filter. A negative
// answer is definitive (the slug was never stored), a positive answer
// still requires a cache/DB lookup.
type BloomRepository interface {
	// Add records a slug in the filter.
	Add(ctx context.Context, slug Slug) error

	// Exists checks whether the slug may exist.
	Exists(ctx context.Context, slug Slug) (bool, error)

	// BulkAdd records many slugs at once. Used at startup.
	BulkAdd(ctx context.Context, slugs []Slug) error
}
