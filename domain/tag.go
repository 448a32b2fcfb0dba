package domain

import "context"

// TagRepository defines the contract for tag persistence. Tags have no
// lifecycle of their own beyond the articles referencing them.
type TagRepository interface {
	// Fetch returns every distinct tag in use.
	Fetch(ctx context.Context) ([]Tag, error)
}

// TagCache caches the tag list. Implementations return ErrCacheMiss
// when the list is absent.
type TagCache interface {
	// GetTags returns the cached list and whether it is logically expired.
	GetTags(ctx context.Context) (tags []Tag, expired bool, err error)
	SetTags(ctx context.Context, tags []Tag) error
}

type TagUsecase interface {
	Fetch(ctx context.Context) ([]Tag, error)
}
