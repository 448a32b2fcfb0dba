package user_test

import (
	"context"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/skinnydoo/conduit/domain"
	"github.com/skinnydoo/conduit/domain/mocks"
	ucase "github.com/skinnydoo/conduit/internal/usecase/user"
)

func TestRegister(t *testing.T) {
	repo := new(mocks.UserRepository)
	repo.On("Insert", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Once()

	svc := ucase.NewService(repo)
	got, err := svc.Register(context.Background(), "jake", "jake@jake.jake", "password123")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, domain.Username("jake"), got.Username)
	assert.Equal(t, domain.Email("jake@jake.jake"), got.Email)
	// the stored credential is a hash, never the raw password
	assert.NotEqual(t, "password123", got.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.Password), []byte("password123")))
	repo.AssertExpectations(t)
}

func TestRegisterDuplicate(t *testing.T) {
	repo := new(mocks.UserRepository)
	repo.On("Insert", mock.Anything, mock.AnythingOfType("*domain.User")).
		Return(domain.ErrUserAlreadyExist).Once()

	svc := ucase.NewService(repo)
	_, err := svc.Register(context.Background(), "jake", "jake@jake.jake", "password123")
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExist)
	repo.AssertExpectations(t)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := domain.User{
		ID:       uuid.New(),
		Email:    "jake@jake.jake",
		Username: "jake",
		Bio:      faker.Sentence(),
		Password: string(hash),
	}

	repo := new(mocks.UserRepository)
	repo.On("GetByEmail", mock.Anything, domain.Email("jake@jake.jake")).Return(stored, nil)

	svc := ucase.NewService(repo)

	got, err := svc.Login(context.Background(), "jake@jake.jake", "password123")
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	_, err = svc.Login(context.Background(), "jake@jake.jake", "wrong-password")
	assert.ErrorIs(t, err, domain.ErrPasswordInvalid)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := new(mocks.UserRepository)
	repo.On("GetByEmail", mock.Anything, domain.Email("ghost@jake.jake")).
		Return(domain.User{}, domain.ErrUserNotFound)

	svc := ucase.NewService(repo)
	_, err := svc.Login(context.Background(), "ghost@jake.jake", "password123")
	assert.ErrorIs(t, err, domain.ErrEmailUnknown)
}

func TestUpdate(t *testing.T) {
	id := uuid.New()
	stored := domain.User{ID: id, Email: "jake@jake.jake", Username: "jake", Password: "hash"}

	repo := new(mocks.UserRepository)
	repo.On("GetByID", mock.Anything, id).Return(stored, nil).Once()
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Once()

	bio := faker.Sentence()
	newEmail := domain.Email("new@jake.jake")

	svc := ucase.NewService(repo)
	got, err := svc.Update(context.Background(), id, domain.UserUpdate{Email: &newEmail, Bio: &bio})
	require.NoError(t, err)

	assert.Equal(t, newEmail, got.Email)
	assert.Equal(t, bio, got.Bio)
	// untouched fields keep their stored values
	assert.Equal(t, domain.Username("jake"), got.Username)
	assert.Equal(t, "hash", got.Password)
	repo.AssertExpectations(t)
}

func TestUpdatePasswordRehashed(t *testing.T) {
	id := uuid.New()
	stored := domain.User{ID: id, Email: "jake@jake.jake", Username: "jake", Password: "old-hash"}

	repo := new(mocks.UserRepository)
	repo.On("GetByID", mock.Anything, id).Return(stored, nil).Once()
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Once()

	newPassword := domain.Password("new-password-123")

	svc := ucase.NewService(repo)
	got, err := svc.Update(context.Background(), id, domain.UserUpdate{Password: &newPassword})
	require.NoError(t, err)

	assert.NotEqual(t, "old-hash", got.Password)
	assert.NotEqual(t, string(newPassword), got.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.Password), []byte(newPassword)))
	repo.AssertExpectations(t)
}
