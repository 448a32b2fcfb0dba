package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/skinnydoo/conduit/domain"
)

type Service struct {
	userRepo domain.UserRepository
}

var _ domain.UserUsecase = (*Service)(nil)

// NewService will create a new user service object
func NewService(userRepo domain.UserRepository) *Service {
	return &Service{
		userRepo: userRepo,
	}
}

func (s *Service) Register(ctx context.Context, username domain.Username, email domain.Email, password domain.Password) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.Errorf("failed to hash password: %v", err)
		return domain.User{}, domain.ErrInternalServerError
	}

	user := domain.User{
		ID:       uuid.New(),
		Email:    email,
		Username: username,
		Password: string(hash),
	}

	// uniqueness of email and username is enforced by the database;
	// the repository surfaces violations as ErrUserAlreadyExist
	if err := s.userRepo.Insert(ctx, &user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (s *Service) Login(ctx context.Context, email domain.Email, password domain.Password) (domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, domain.ErrEmailUnknown
		}
		return domain.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.User{}, domain.ErrPasswordInvalid
	}
	return user, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, upd domain.UserUpdate) (domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	if upd.Email != nil {
		user.Email = *upd.Email
	}
	if upd.Username != nil {
		user.Username = *upd.Username
	}
	if upd.Bio != nil {
		user.Bio = *upd.Bio
	}
	if upd.Image != nil {
		user.Image = *upd.Image
	}
	if upd.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			logrus.Errorf("failed to hash password: %v", err)
			return domain.User{}, domain.ErrInternalServerError
		}
		user.Password = string(hash)
	}

	if err := s.userRepo.Update(ctx, &user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}
