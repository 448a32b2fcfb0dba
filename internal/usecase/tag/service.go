package tag

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/skinnydoo/conduit/domain"
)

type service struct {
	tagRepo domain.TagRepository
	cache   domain.TagCache
}

var _ domain.TagUsecase = (*service)(nil)

func NewService(tagRepo domain.TagRepository, cache domain.TagCache) *service {
	return &service{
		tagRepo: tagRepo,
		cache:   cache,
	}
}

// Fetch serves the tag list from the cache when possible. A logically
// expired list is still served, with a fire-and-forget rebuild behind it.
func (s *service) Fetch(ctx context.Context) ([]domain.Tag, error) {
	tags, expired, err := s.cache.GetTags(ctx)
	if err == nil {
		if expired {
			go s.rebuild(context.Background())
		}
		return tags, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("tag cache get error: %v", err)
	}

	tags, err = s.tagRepo.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	go func(data []domain.Tag) {
		if err := s.cache.SetTags(context.Background(), data); err != nil {
			logrus.Warnf("failed to set tag cache: %v", err)
		}
	}(tags)

	return tags, nil
}

func (s *service) rebuild(ctx context.Context) {
	tags, err := s.tagRepo.Fetch(ctx)
	if err != nil {
		logrus.Errorf("failed to rebuild tag cache from db: %v", err)
		return
	}
	if err := s.cache.SetTags(ctx, tags); err != nil {
		logrus.Warnf("failed to set tag cache: %v", err)
	}
}
