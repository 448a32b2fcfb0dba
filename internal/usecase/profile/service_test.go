package profile_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skinnydoo/conduit/domain"
	"github.com/skinnydoo/conduit/domain/mocks"
	ucase "github.com/skinnydoo/conduit/internal/usecase/profile"
)

func TestGetAnonymous(t *testing.T) {
	target := domain.User{ID: uuid.New(), Username: "celeb", Bio: "bio", Image: "img"}

	repo := new(mocks.UserRepository)
	repo.On("GetByUsername", mock.Anything, domain.Username("celeb")).Return(target, nil)

	svc := ucase.NewService(repo)
	got, err := svc.Get(context.Background(), uuid.Nil, "celeb")
	require.NoError(t, err)

	assert.Equal(t, domain.Username("celeb"), got.Username)
	assert.False(t, got.Following)
	// anonymous viewers never trigger a follow lookup
	repo.AssertNotCalled(t, "IsFollowing", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetAsViewer(t *testing.T) {
	viewerID := uuid.New()
	target := domain.User{ID: uuid.New(), Username: "celeb"}

	repo := new(mocks.UserRepository)
	repo.On("GetByUsername", mock.Anything, domain.Username("celeb")).Return(target, nil)
	repo.On("IsFollowing", mock.Anything, viewerID, target.ID).Return(true, nil)

	svc := ucase.NewService(repo)
	got, err := svc.Get(context.Background(), viewerID, "celeb")
	require.NoError(t, err)
	assert.True(t, got.Following)
}

func TestGetUnknownUser(t *testing.T) {
	repo := new(mocks.UserRepository)
	repo.On("GetByUsername", mock.Anything, domain.Username("ghost")).
		Return(domain.User{}, domain.ErrUserNotFound)

	svc := ucase.NewService(repo)
	_, err := svc.Get(context.Background(), uuid.Nil, "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestFollow(t *testing.T) {
	selfID := uuid.New()
	target := domain.User{ID: uuid.New(), Username: "celeb"}

	repo := new(mocks.UserRepository)
	repo.On("GetByUsername", mock.Anything, domain.Username("celeb")).Return(target, nil)
	repo.On("Follow", mock.Anything, selfID, target.ID).Return(nil).Once()

	svc := ucase.NewService(repo)
	got, err := svc.Follow(context.Background(), selfID, "celeb")
	require.NoError(t, err)
	assert.True(t, got.Following)
	repo.AssertExpectations(t)
}

func TestFollowSelf(t *testing.T) {
	self := domain.User{ID: uuid.New(), Username: "jake"}

	repo := new(mocks.UserRepository)
	repo.On("GetByUsername", mock.Anything, domain.Username("jake")).Return(self, nil)

	svc := ucase.NewService(repo)
	_, err := svc.Follow(context.Background(), self.ID, "jake")
	assert.ErrorIs(t, err, domain.ErrSelfFollow)
	repo.AssertNotCalled(t, "Follow", mock.Anything, mock.Anything, mock.Anything)
}

func TestUnfollowNotFollowed(t *testing.T) {
	selfID := uuid.New()
	target := domain.User{ID: uuid.New(), Username: "celeb"}

	repo := new(mocks.UserRepository)
	repo.On("GetByUsername", mock.Anything, domain.Username("celeb")).Return(target, nil)
	repo.On("Unfollow", mock.Anything, selfID, target.ID).Return(nil).Once()

	svc := ucase.NewService(repo)
	got, err := svc.Unfollow(context.Background(), selfID, "celeb")
	require.NoError(t, err)
	assert.False(t, got.Following)
	repo.AssertExpectations(t)
}
