package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/skinnydoo/conduit/domain"
)

// UserRepository is a mock type for domain.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email domain.Email) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *UserRepository) GetByUsername(ctx context.Context, username domain.Username) (domain.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *UserRepository) Insert(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserRepository) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserRepository) Follow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	args := m.Called(ctx, followerID, followeeID)
	return args.Error(0)
}

func (m *UserRepository) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	args := m.Called(ctx, followerID, followeeID)
	return args.Error(0)
}

func (m *UserRepository) IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, followerID, followeeID)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) IsFollowingBulk(ctx context.Context, followerID uuid.UUID, followeeIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	args := m.Called(ctx, followerID, followeeIDs)
	var r0 map[uuid.UUID]bool
	if v := args.Get(0); v != nil {
		r0 = v.(map[uuid.UUID]bool)
	}
	return r0, args.Error(1)
}
