package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/skinnydoo/conduit/domain"
)

// BloomRepository is a mock type for domain.BloomRepository.
type BloomRepository struct {
	mock.Mock
}

func (m *BloomRepository) Add(ctx context.Context, slug domain.Slug) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}

func (m *BloomRepository) Exists(ctx context.Context, slug domain.Slug) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *BloomRepository) BulkAdd(ctx context.Context, slugs []domain.Slug) error {
	args := m.Called(ctx, slugs)
	return args.Error(0)
}
