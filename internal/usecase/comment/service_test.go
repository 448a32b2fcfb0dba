package comment_test

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
	ucase "github.com/skinnydoo/conduit/internal/usecase/comment"
)

func newService(t *testing.T) (domain.CommentUsecase, *mocks.CommentRepository, *mocks.ArticleRepository, *mocks.UserRepository, *mocks.BloomRepository) {
	t.Helper()
	commentRepo := new(mocks.CommentRepository)
	articleRepo := new(mocks.ArticleRepository)
	userRepo := new(mocks.UserRepository)
	bloomRepo := new(mocks.BloomRepository)
	return ucase.NewService(commentRepo, articleRepo, userRepo, bloomRepo), commentRepo, articleRepo, userRepo, bloomRepo
}

func TestCreate(t *testing.T) {
	svc, commentRepo, articleRepo, userRepo, bloomRepo := newService(t)

	selfID := uuid.New()
	slug := domain.NewSlug()
	author := domain.User{ID: selfID, Username: "jake"}

	bloomRepo.On("Exists", mock.Anything, slug).Return(true, nil)
	articleRepo.On("GetBySlug", mock.Anything, slug).Return(domain.Article{Slug: slug}, nil)
	userRepo.On("GetByID", mock.Anything, selfID).Return(author, nil)
	commentRepo.On("Store", mock.Anything, mock.AnythingOfType("*domain.Comment")).Return(nil).Once()

	body := faker.Sentence()
	got, err := svc.Create(context.Background(), selfID, slug, body)
	require.NoError(t, err)

	assert.Equal(t, slug, got.ArticleSlug)
	assert.Equal(t, selfID, got.AuthorID)
	assert.Equal(t, body, got.Body)
	assert.Equal(t, domain.Username("jake"), got.Author.Username)
	commentRepo.AssertExpectations(t)
}

func TestCreateArticleGone(t *testing.T) {
	svc, commentRepo, articleRepo, _, bloomRepo := newService(t)

	slug := domain.NewSlug()
	bloomRepo.On("Exists", mock.Anything, slug).Return(true, nil)
	articleRepo.On("GetBySlug", mock.Anything, slug).Return(domain.Article{}, domain.ErrArticleNotFound)

	_, err := svc.Create(context.Background(), uuid.New(), slug, "hi")
	assert.ErrorIs(t, err, domain.ErrArticleNotFound)
	commentRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestFetchByArticle(t *testing.T) {
	svc, commentRepo, articleRepo, userRepo, bloomRepo := newService(t)

	viewerID := uuid.New()
	slug := domain.NewSlug()
	authorID := uuid.New()
	comments := []domain.Comment{
		{ID: 2, ArticleSlug: slug, AuthorID: authorID, Body: faker.Sentence()},
		{ID: 1, ArticleSlug: slug, AuthorID: authorID, Body: faker.Sentence()},
	}

	bloomRepo.On("Exists", mock.Anything, slug).Return(true, nil)
	articleRepo.On("GetBySlug", mock.Anything, slug).Return(domain.Article{Slug: slug}, nil)
	commentRepo.On("FetchByArticle", mock.Anything, slug).Return(comments, nil)
	userRepo.On("IsFollowingBulk", mock.Anything, viewerID, []uuid.UUID{authorID}).
		Return(map[uuid.UUID]bool{authorID: true}, nil)

	got, err := svc.FetchByArticle(context.Background(), viewerID, slug)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, c := range got {
		assert.True(t, c.Author.Following)
	}
}

func TestDeleteNotAuthor(t *testing.T) {
	svc, commentRepo, articleRepo, _, bloomRepo := newService(t)

	slug := domain.NewSlug()
	comment := domain.Comment{ID: 7, ArticleSlug: slug, AuthorID: uuid.New()}

	bloomRepo.On("Exists", mock.Anything, slug).Return(true, nil)
	articleRepo.On("GetBySlug", mock.Anything, slug).Return(domain.Article{Slug: slug}, nil)
	commentRepo.On("GetByID", mock.Anything, int64(7)).Return(comment, nil)

	err := svc.Delete(context.Background(), uuid.New(), slug, 7)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	commentRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteWrongArticle(t *testing.T) {
	svc, commentRepo, articleRepo, _, bloomRepo := newService(t)

	slug := domain.NewSlug()
	selfID := uuid.New()
	// the comment belongs to another article
	comment := domain.Comment{ID: 7, ArticleSlug: domain.NewSlug(), AuthorID: selfID}

	bloomRepo.On("Exists", mock.Anything, slug).Return(true, nil)
	articleRepo.On("GetBySlug", mock.Anything, slug).Return(domain.Article{Slug: slug}, nil)
	commentRepo.On("GetByID", mock.Anything, int64(7)).Return(comment, nil)

	err := svc.Delete(context.Background(), selfID, slug, 7)
	assert.ErrorIs(t, err, domain.ErrCommentNotFound)
}

func TestDelete(t *testing.T) {
	svc, commentRepo, articleRepo, _, bloomRepo := newService(t)

	slug := domain.NewSlug()
	selfID := uuid.New()
	comment := domain.Comment{ID: 7, ArticleSlug: slug, AuthorID: selfID}

	bloomRepo.On("Exists", mock.Anything, slug).Return(true, nil)
	articleRepo.On("GetBySlug", mock.Anything, slug).Return(domain.Article{Slug: slug}, nil)
	commentRepo.On("GetByID", mock.Anything, int64(7)).Return(comment, nil)
	commentRepo.On("Delete", mock.Anything, int64(7)).Return(nil).Once()

	err := svc.Delete(context.Background(), selfID, slug, 7)
	require.NoError(t, err)
	commentRepo.AssertExpectations(t)
}
