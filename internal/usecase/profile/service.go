package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/skinnydoo/conduit/domain"
)

type Service struct {
	userRepo domain.UserRepository
}

var _ domain.ProfileUsecase = (*Service)(nil)

// NewService will create a new profile service object
func NewService(userRepo domain.UserRepository) *Service {
	return &Service{
		userRepo: userRepo,
	}
}

func (s *Service) Get(ctx context.Context, viewerID uuid.UUID, username domain.Username) (domain.Profile, error) {
	target, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return domain.Profile{}, err
	}

	following := false
	if viewerID != uuid.Nil {
		following, err = s.userRepo.IsFollowing(ctx, viewerID, target.ID)
		if err != nil {
			return domain.Profile{}, err
		}
	}
	return target.Profile(following), nil
}

func (s *Service) Follow(ctx context.Context, selfID uuid.UUID, username domain.Username) (domain.Profile, error) {
	target, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return domain.Profile{}, err
	}

	if target.ID == selfID {
		return domain.Profile{}, domain.ErrSelfFollow
	}

	if err := s.userRepo.Follow(ctx, selfID, target.ID); err != nil {
		return domain.Profile{}, err
	}
	return target.Profile(true), nil
}

func (s *Service) Unfollow(ctx context.Context, selfID uuid.UUID, username domain.Username) (domain.Profile, error) {
	target, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return domain.Profile{}, err
	}

	// unfollowing a user that is not followed is a no-op
	if err := s.userRepo.Unfollow(ctx, selfID, target.ID); err != nil {
		return domain.Profile{}, err
	}
	return target.Profile(false), nil
}
