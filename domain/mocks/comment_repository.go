package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/skinnydoo/conduit/domain"
)

// CommentRepository is a mock type for domain.CommentRepository.
type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) Store(ctx context.Context, c *domain.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CommentRepository) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *CommentRepository) FetchByArticle(ctx context.Context, slug domain.Slug) ([]domain.Comment, error) {
	args := m.Called(ctx, slug)
	var r0 []domain.Comment
	if v := args.Get(0); v != nil {
		r0 = v.([]domain.Comment)
	}
	return r0, args.Error(1)
}

func (m *CommentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
