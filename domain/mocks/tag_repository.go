package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/skinnydoo/conduit/domain"
)

// TagRepository is a mock type for domain.TagRepository.
type TagRepository struct {
	mock.Mock
}

func (m *TagRepository) Fetch(ctx context.Context) ([]domain.Tag, error) {
	args := m.Called(ctx)
	var r0 []domain.Tag
	if v := args.Get(0); v != nil {
		r0 = v.([]domain.Tag)
	}
	return r0, args.Error(1)
}

// TagCache is a mock type for domain.TagCache.
type TagCache struct {
	mock.Mock
}

func (m *TagCache) GetTags(ctx context.Context) ([]domain.Tag, bool, error) {
	args := m.Called(ctx)
	var r0 []domain.Tag
	if v := args.Get(0); v != nil {
		r0 = v.([]domain.Tag)
	}
	return r0, args.Bool(1), args.Error(2)
}

func (m *TagCache) SetTags(ctx context.Context, tags []domain.Tag) error {
	args := m.Called(ctx, tags)
	return args.Error(0)
}
