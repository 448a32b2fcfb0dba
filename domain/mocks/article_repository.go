package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/skinnydoo/conduit/domain"
)

// ArticleRepository is a mock type for domain.ArticleRepository.
type ArticleRepository struct {
	mock.Mock
}

func (m *ArticleRepository) GetBySlug(ctx context.Context, slug domain.Slug) (domain.Article, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(domain.Article), args.Error(1)
}

func (m *ArticleRepository) Fetch(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, int64, error) {
	args := m.Called(ctx, filter)
	var r0 []domain.Article
	if v := args.Get(0); v != nil {
		r0 = v.([]domain.Article)
	}
	return r0, args.Get(1).(int64), args.Error(2)
}

func (m *ArticleRepository) FetchFeed(ctx context.Context, userID uuid.UUID, limit domain.Limit, offset domain.Offset) ([]domain.Article, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	var r0 []domain.Article
	if v := args.Get(0); v != nil {
		r0 = v.([]domain.Article)
	}
	return r0, args.Get(1).(int64), args.Error(2)
}

func (m *ArticleRepository) Store(ctx context.Context, a *domain.Article) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *ArticleRepository) Update(ctx context.Context, a *domain.Article) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *ArticleRepository) Delete(ctx context.Context, slug domain.Slug) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}

func (m *ArticleRepository) Favorite(ctx context.Context, slug domain.Slug, userID uuid.UUID) error {
	args := m.Called(ctx, slug, userID)
	return args.Error(0)
}

func (m *ArticleRepository) Unfavorite(ctx context.Context, slug domain.Slug, userID uuid.UUID) error {
	args := m.Called(ctx, slug, userID)
	return args.Error(0)
}

func (m *ArticleRepository) IsFavorited(ctx context.Context, slug domain.Slug, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, slug, userID)
	return args.Bool(0), args.Error(1)
}

func (m *ArticleRepository) IsFavoritedBulk(ctx context.Context, userID uuid.UUID, slugs []domain.Slug) (map[domain.Slug]bool, error) {
	args := m.Called(ctx, userID, slugs)
	var r0 map[domain.Slug]bool
	if v := args.Get(0); v != nil {
		r0 = v.(map[domain.Slug]bool)
	}
	return r0, args.Error(1)
}

func (m *ArticleRepository) FetchSlugs(ctx context.Context) ([]domain.Slug, error) {
	args := m.Called(ctx)
	var r0 []domain.Slug
	if v := args.Get(0); v != nil {
		r0 = v.([]domain.Slug)
	}
	return r0, args.Error(1)
}

// ArticleCache is a mock type for domain.ArticleCache.
type ArticleCache struct {
	mock.Mock
}

func (m *ArticleCache) GetArticle(ctx context.Context, slug domain.Slug) (domain.Article, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(domain.Article), args.Error(1)
}

func (m *ArticleCache) SetArticle(ctx context.Context, a *domain.Article) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *ArticleCache) DeleteArticle(ctx context.Context, slug domain.Slug) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}
