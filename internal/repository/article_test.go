package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skinnydoo/conduit/domain"
	"github.com/skinnydoo/conduit/domain/mocks"
	"github.com/skinnydoo/conduit/internal/repository"
)

func TestGetBySlugCacheHit(t *testing.T) {
	article := domain.Article{Slug: domain.NewSlug(), Title: "cached", AuthorID: uuid.New()}

	db := new(mocks.ArticleRepository)
	cache := new(mocks.ArticleCache)
	cache.On("GetArticle", mock.Anything, article.Slug).Return(article, nil)

	repo := repository.NewArticleRepository(db, cache)
	got, err := repo.GetBySlug(context.Background(), article.Slug)
	require.NoError(t, err)
	assert.Equal(t, article, got)
	db.AssertNotCalled(t, "GetBySlug", mock.Anything, mock.Anything)
}

func TestGetBySlugCacheMiss(t *testing.T) {
	article := domain.Article{Slug: domain.NewSlug(), Title: "stored", AuthorID: uuid.New()}

	db := new(mocks.ArticleRepository)
	db.On("GetBySlug", mock.Anything, article.Slug).Return(article, nil).Once()
	cache := new(mocks.ArticleCache)
	cache.On("GetArticle", mock.Anything, article.Slug).Return(domain.Article{}, domain.ErrCacheMiss)
	cache.On("SetArticle", mock.Anything, &article).Return(nil).Once()

	repo := repository.NewArticleRepository(db, cache)
	got, err := repo.GetBySlug(context.Background(), article.Slug)
	require.NoError(t, err)
	assert.Equal(t, article, got)

	// the refill lands before GetBySlug returns
	db.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestGetBySlugMissAndDBError(t *testing.T) {
	slug := domain.NewSlug()

	db := new(mocks.ArticleRepository)
	db.On("GetBySlug", mock.Anything, slug).Return(domain.Article{}, domain.ErrArticleNotFound)
	cache := new(mocks.ArticleCache)
	cache.On("GetArticle", mock.Anything, slug).Return(domain.Article{}, domain.ErrCacheMiss)

	repo := repository.NewArticleRepository(db, cache)
	_, err := repo.GetBySlug(context.Background(), slug)
	assert.ErrorIs(t, err, domain.ErrArticleNotFound)
	cache.AssertNotCalled(t, "SetArticle", mock.Anything, mock.Anything)
}

func TestFavoriteInvalidatesBeforeReturning(t *testing.T) {
	slug := domain.NewSlug()
	userID := uuid.New()

	db := new(mocks.ArticleRepository)
	db.On("Favorite", mock.Anything, slug, userID).Return(nil).Once()
	cache := new(mocks.ArticleCache)
	cache.On("DeleteArticle", mock.Anything, slug).Return(nil).Once()

	repo := repository.NewArticleRepository(db, cache)
	require.NoError(t, repo.Favorite(context.Background(), slug, userID))

	// no goroutine to wait on, the DEL has already happened
	db.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestFavoriteThenReadServesFreshCount(t *testing.T) {
	before := domain.Article{Slug: domain.NewSlug(), Title: "stored", AuthorID: uuid.New()}
	after := before
	after.FavoritesCount = 1
	userID := uuid.New()

	db := new(mocks.ArticleRepository)
	db.On("Favorite", mock.Anything, before.Slug, userID).Return(nil).Once()
	db.On("GetBySlug", mock.Anything, before.Slug).Return(after, nil).Once()
	cache := new(mocks.ArticleCache)
	cache.On("DeleteArticle", mock.Anything, before.Slug).Return(nil).Once()
	cache.On("GetArticle", mock.Anything, before.Slug).Return(domain.Article{}, domain.ErrCacheMiss).Once()
	// the refill carries the post-mutation projection, never the old one
	cache.On("SetArticle", mock.Anything, &after).Return(nil).Once()

	repo := repository.NewArticleRepository(db, cache)
	require.NoError(t, repo.Favorite(context.Background(), before.Slug, userID))

	got, err := repo.GetBySlug(context.Background(), before.Slug)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.FavoritesCount)
	db.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestDeleteDBErrorSkipsInvalidation(t *testing.T) {
	slug := domain.NewSlug()

	db := new(mocks.ArticleRepository)
	db.On("Delete", mock.Anything, slug).Return(domain.ErrArticleNotFound)
	cache := new(mocks.ArticleCache)

	repo := repository.NewArticleRepository(db, cache)
	err := repo.Delete(context.Background(), slug)
	assert.ErrorIs(t, err, domain.ErrArticleNotFound)
	cache.AssertNotCalled(t, "DeleteArticle", mock.Anything, mock.Anything)
}
