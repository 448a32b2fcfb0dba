package article_test

import (
	"context"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skinnydoo/conduit/domain"
	"github.com/skinnydoo/conduit/domain/mocks"
	ucase "github.com/skinnydoo/conduit/internal/usecase/article"
)

func newService(t *testing.T) (*ucase.Service, *mocks.ArticleRepository, *mocks.UserRepository, *mocks.BloomRepository) {
	t.Helper()
	articleRepo := new(mocks.ArticleRepository)
	userRepo := new(mocks.UserRepository)
	bloomRepo := new(mocks.BloomRepository)
	return ucase.NewService(articleRepo, userRepo, bloomRepo), articleRepo, userRepo, bloomRepo
}

func fakeArticle(authorID uuid.UUID) domain.Article {
	return domain.Article{
		Slug:        domain.NewSlug(),
		Title:       faker.Sentence(),
		Description: faker.Sentence(),
		Body:        faker.Paragraph(),
		AuthorID:    authorID,
		Author:      domain.Profile{Username: domain.Username(faker.Username())},
	}
}

func TestCreate(t *testing.T) {
	svc, articleRepo, userRepo, bloomRepo := newService(t)

	authorID := uuid.New()
	author := domain.User{ID: authorID, Username: "jake", Bio: "bio"}

	userRepo.On("GetByID", mock.Anything, authorID).Return(author, nil)
	articleRepo.On("Store", mock.Anything, mock.AnythingOfType("*domain.Article")).Return(nil).Once()
	bloomRepo.On("Add", mock.Anything, mock.AnythingOfType("domain.Slug")).Return(nil).Once()

	got, err := svc.Create(context.Background(), authorID, "Title", "Desc", "Body", []domain.Tag{"dragons"})
	require.NoError(t, err)

	assert.False(t, got.Slug.IsZero())
	assert.Equal(t, "Title", got.Title)
	assert.Equal(t, authorID, got.AuthorID)
	assert.Equal(t, domain.Username("jake"), got.Author.Username)
	assert.False(t, got.Author.Following)
	articleRepo.AssertExpectations(t)
	bloomRepo.AssertExpectations(t)
}

func TestCreateSlugsAreUnique(t *testing.T) {
	svc, articleRepo, userRepo, bloomRepo := newService(t)

	authorID := uuid.New()
	userRepo.On("GetByID", mock.Anything, authorID).Return(domain.User{ID: authorID}, nil)
	articleRepo.On("Store", mock.Anything, mock.AnythingOfType("*domain.Article")).Return(nil)
	bloomRepo.On("Add", mock.Anything, mock.AnythingOfType("domain.Slug")).Return(nil)

	first, err := svc.Create(context.Background(), authorID, "a", "b", "c", nil)
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), authorID, "a", "b", "c", nil)
	require.NoError(t, err)

	assert.NotEqual(t, first.Slug, second.Slug)
}

func TestGetBySlugBloomShortCircuit(t *testing.T) {
	svc, articleRepo, _, bloomRepo := newService(t)

	slug := domain.NewSlug()
	bloomRepo.On("Exists", mock.Anything, slug).Return(false, nil)

	_, err := svc.GetBySlug(context.Background(), uuid.Nil, slug)
	assert.ErrorIs(t, err, domain.ErrArticleNotFound)
	// a definitive bloom miss never reaches storage
	articleRepo.AssertNotCalled(t, "GetBySlug", mock.Anything, mock.Anything)
}

func TestGetBySlugDecoratesViewer(t *testing.T) {
	svc, articleRepo, userRepo, bloomRepo := newService(t)

	viewerID := uuid.New()
	article := fakeArticle(uuid.New())

	bloomRepo.On("Exists", mock.Anything, article.Slug).Return(true, nil)
	articleRepo.On("GetBySlug", mock.Anything, article.Slug).Return(article, nil)
	articleRepo.On("IsFavoritedBulk", mock.Anything, viewerID, []domain.Slug{article.Slug}).
		Return(map[domain.Slug]bool{article.Slug: true}, nil)
	userRepo.On("IsFollowingBulk", mock.Anything, viewerID, []uuid.UUID{article.AuthorID}).
		Return(map[uuid.UUID]bool{article.AuthorID: true}, nil)

	got, err := svc.GetBySlug(context.Background(), viewerID, article.Slug)
	require.NoError(t, err)
	assert.True(t, got.Favorited)
	assert.True(t, got.Author.Following)
}

func TestGetBySlugAnonymous(t *testing.T) {
	svc, articleRepo, userRepo, bloomRepo := newService(t)

	article := fakeArticle(uuid.New())
	bloomRepo.On("Exists", mock.Anything, article.Slug).Return(true, nil)
	articleRepo.On("GetBySlug", mock.Anything, article.Slug).Return(article, nil)

	got, err := svc.GetBySlug(context.Background(), uuid.Nil, article.Slug)
	require.NoError(t, err)
	assert.False(t, got.Favorited)
	assert.False(t, got.Author.Following)
	articleRepo.AssertNotCalled(t, "IsFavoritedBulk", mock.Anything, mock.Anything, mock.Anything)
	userRepo.AssertNotCalled(t, "IsFollowingBulk", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateNotOwner(t *testing.T) {
	svc, articleRepo, _, bloomRepo := newService(t)

	article := fakeArticle(uuid.New())
	bloomRepo.On("Exists", mock.Anything, article.Slug).Return(true, nil)
	articleRepo.On("GetBySlug", mock.Anything, article.Slug).Return(article, nil)

	title := "Hijacked"
	_, err := svc.Update(context.Background(), uuid.New(), article.Slug, domain.ArticleUpdate{Title: &title})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	articleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdate(t *testing.T) {
	svc, articleRepo, _, bloomRepo := newService(t)

	ownerID := uuid.New()
	article := fakeArticle(ownerID)

	bloomRepo.On("Exists", mock.Anything, article.Slug).Return(true, nil)
	articleRepo.On("GetBySlug", mock.Anything, article.Slug).Return(article, nil)
	articleRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Article")).Return(nil).Once()
	articleRepo.On("IsFavorited", mock.Anything, article.Slug, ownerID).Return(false, nil)

	title := "New Title"
	got, err := svc.Update(context.Background(), ownerID, article.Slug, domain.ArticleUpdate{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "New Title", got.Title)
	assert.Equal(t, article.Body, got.Body)
	articleRepo.AssertExpectations(t)
}

func TestDeleteNotOwner(t *testing.T) {
	svc, articleRepo, _, bloomRepo := newService(t)

	article := fakeArticle(uuid.New())
	bloomRepo.On("Exists", mock.Anything, article.Slug).Return(true, nil)
	articleRepo.On("GetBySlug", mock.Anything, article.Slug).Return(article, nil)

	err := svc.Delete(context.Background(), uuid.New(), article.Slug)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	articleRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete(t *testing.T) {
	svc, articleRepo, _, bloomRepo := newService(t)

	ownerID := uuid.New()
	article := fakeArticle(ownerID)
	bloomRepo.On("Exists", mock.Anything, article.Slug).Return(true, nil)
	articleRepo.On("GetBySlug", mock.Anything, article.Slug).Return(article, nil)
	articleRepo.On("Delete", mock.Anything, article.Slug).Return(nil).Once()

	err := svc.Delete(context.Background(), ownerID, article.Slug)
	require.NoError(t, err)
	articleRepo.AssertExpectations(t)
}

func TestFavorite(t *testing.T) {
	svc, articleRepo, userRepo, bloomRepo := newService(t)

	selfID := uuid.New()
	article := fakeArticle(uuid.New())
	favorited := article
	favorited.FavoritesCount = 1

	bloomRepo.On("Exists", mock.Anything, article.Slug).Return(true, nil)
	articleRepo.On("GetBySlug", mock.Anything, article.Slug).Return(article, nil).Once()
	articleRepo.On("Favorite", mock.Anything, article.Slug, selfID).Return(nil).Once()
	articleRepo.On("GetBySlug", mock.Anything, article.Slug).Return(favorited, nil).Once()
	articleRepo.On("IsFavoritedBulk", mock.Anything, selfID, []domain.Slug{article.Slug}).
		Return(map[domain.Slug]bool{article.Slug: true}, nil)
	userRepo.On("IsFollowingBulk", mock.Anything, selfID, []uuid.UUID{article.AuthorID}).
		Return(map[uuid.UUID]bool{}, nil)

	got, err := svc.Favorite(context.Background(), selfID, article.Slug)
	require.NoError(t, err)
	assert.True(t, got.Favorited)
	assert.Equal(t, int64(1), got.FavoritesCount)
	articleRepo.AssertExpectations(t)
}

func TestFeed(t *testing.T) {
	svc, articleRepo, _, _ := newService(t)

	selfID := uuid.New()
	articles := []domain.Article{fakeArticle(uuid.New()), fakeArticle(uuid.New())}

	articleRepo.On("FetchFeed", mock.Anything, selfID, domain.DefaultLimit, domain.DefaultOffset).
		Return(articles, int64(2), nil)
	articleRepo.On("IsFavoritedBulk", mock.Anything, selfID, mock.AnythingOfType("[]domain.Slug")).
		Return(map[domain.Slug]bool{articles[0].Slug: true}, nil)

	got, total, err := svc.Feed(context.Background(), selfID, domain.DefaultLimit, domain.DefaultOffset)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, got, 2)
	for _, a := range got {
		assert.True(t, a.Author.Following)
	}
	assert.True(t, got[0].Favorited)
	assert.False(t, got[1].Favorited)
}

func TestInitBloomFilter(t *testing.T) {
	svc, articleRepo, _, bloomRepo := newService(t)

	slugs := []domain.Slug{domain.NewSlug(), domain.NewSlug()}
	articleRepo.On("FetchSlugs", mock.Anything).Return(slugs, nil)
	bloomRepo.On("BulkAdd", mock.Anything, slugs).Return(nil).Once()

	err := svc.InitBloomFilter(context.Background())
	require.NoError(t, err)
	bloomRepo.AssertExpectations(t)
}
