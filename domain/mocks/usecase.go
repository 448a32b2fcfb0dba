package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/skinnydoo/conduit/domain"
)

// UserUsecase is a mock type for domain.UserUsecase.
type UserUsecase struct {
	mock.Mock
}

func (m *UserUsecase) Register(ctx context.Context, username domain.Username, email domain.Email, password domain.Password) (domain.User, error) {
	args := m.Called(ctx, username, email, password)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *UserUsecase) Login(ctx context.Context, email domain.Email, password domain.Password) (domain.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *UserUsecase) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *UserUsecase) Update(ctx context.Context, id uuid.UUID, upd domain.UserUpdate) (domain.User, error) {
	args := m.Called(ctx, id, upd)
	return args.Get(0).(domain.User), args.Error(1)
}

// ArticleUsecase is a mock type for domain.ArticleUsecase.
type ArticleUsecase struct {
	mock.Mock
}

func (m *ArticleUsecase) Fetch(ctx context.Context, viewerID uuid.UUID, filter domain.ArticleFilter) ([]domain.Article, int64, error) {
	args := m.Called(ctx, viewerID, filter)
	var r0 []domain.Article
	if v := args.Get(0); v != nil {
		r0 = v.([]domain.Article)
	}
	return r0, args.Get(1).(int64), args.Error(2)
}

func (m *ArticleUsecase) Feed(ctx context.Context, selfID uuid.UUID, limit domain.Limit, offset domain.Offset) ([]domain.Article, int64, error) {
	args := m.Called(ctx, selfID, limit, offset)
	var r0 []domain.Article
	if v := args.Get(0); v != nil {
		r0 = v.([]domain.Article)
	}
	return r0, args.Get(1).(int64), args.Error(2)
}

func (m *ArticleUsecase) GetBySlug(ctx context.Context, viewerID uuid.UUID, slug domain.Slug) (domain.Article, error) {
	args := m.Called(ctx, viewerID, slug)
	return args.Get(0).(domain.Article), args.Error(1)
}

func (m *ArticleUsecase) Create(ctx context.Context, selfID uuid.UUID, title, description, body string, tags []domain.Tag) (domain.Article, error) {
	args := m.Called(ctx, selfID, title, description, body, tags)
	return args.Get(0).(domain.Article), args.Error(1)
}

func (m *ArticleUsecase) Update(ctx context.Context, selfID uuid.UUID, slug domain.Slug, upd domain.ArticleUpdate) (domain.Article, error) {
	args := m.Called(ctx, selfID, slug, upd)
	return args.Get(0).(domain.Article), args.Error(1)
}

func (m *ArticleUsecase) Delete(ctx context.Context, selfID uuid.UUID, slug domain.Slug) error {
	args := m.Called(ctx, selfID, slug)
	return args.Error(0)
}

func (m *ArticleUsecase) Favorite(ctx context.Context, selfID uuid.UUID, slug domain.Slug) (domain.Article, error) {
	args := m.Called(ctx, selfID, slug)
	return args.Get(0).(domain.Article), args.Error(1)
}

func (m *ArticleUsecase) Unfavorite(ctx context.Context, selfID uuid.UUID, slug domain.Slug) (domain.Article, error) {
	args := m.Called(ctx, selfID, slug)
	return args.Get(0).(domain.Article), args.Error(1)
}

func (m *ArticleUsecase) InitBloomFilter(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// ProfileUsecase is a mock type for domain.ProfileUsecase.
type ProfileUsecase struct {
	mock.Mock
}

func (m *ProfileUsecase) Get(ctx context.Context, viewerID uuid.UUID, username domain.Username) (domain.Profile, error) {
	args := m.Called(ctx, viewerID, username)
	return args.Get(0).(domain.Profile), args.Error(1)
}

func (m *ProfileUsecase) Follow(ctx context.Context, selfID uuid.UUID, username domain.Username) (domain.Profile, error) {
	args := m.Called(ctx, selfID, username)
	return args.Get(0).(domain.Profile), args.Error(1)
}

func (m *ProfileUsecase) Unfollow(ctx context.Context, selfID uuid.UUID, username domain.Username) (domain.Profile, error) {
	args := m.Called(ctx, selfID, username)
	return args.Get(0).(domain.Profile), args.Error(1)
}
