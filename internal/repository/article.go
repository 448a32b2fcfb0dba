package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/skinnydoo/conduit/domain"
)

// articleRepository coordinates the cache and the database. Single
// article reads go through the cache; every mutation writes the database
// first and invalidates the cached entry before returning, so a re-read
// in the same request never sees the pre-mutation projection.
type articleRepository struct {
	db           domain.ArticleRepository
	cache        domain.ArticleCache
	rebuildGroup singleflight.Group
}

var _ domain.ArticleRepository = (*articleRepository)(nil)

func NewArticleRepository(db domain.ArticleRepository, cache domain.ArticleCache) *articleRepository {
	return &articleRepository{
		db:    db,
		cache: cache,
	}
}

func (r *articleRepository) GetBySlug(ctx context.Context, slug domain.Slug) (domain.Article, error) {
	article, err := r.cache.GetArticle(ctx, slug)
	if err == nil {
		return article, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("cache get error for %s: %v", slug, err)
	}

	// singleflight keeps concurrent misses from hammering the database.
	// The refill happens inline; a detached refill could land after a
	// later invalidation and pin a stale projection for the full TTL.
	result, err, _ := r.rebuildGroup.Do(slug.String(), func() (any, error) {
		art, err := r.db.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}

		if err := r.cache.SetArticle(ctx, &art); err != nil {
			logrus.Warnf("failed to set article cache: %v", err)
		}

		return art, nil
	})
	if err != nil {
		return domain.Article{}, err
	}

	return result.(domain.Article), nil
}

func (r *articleRepository) Fetch(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, int64, error) {
	return r.db.Fetch(ctx, filter)
}

func (r *articleRepository) FetchFeed(ctx context.Context, userID uuid.UUID, limit domain.Limit, offset domain.Offset) ([]domain.Article, int64, error) {
	return r.db.FetchFeed(ctx, userID, limit, offset)
}

func (r *articleRepository) Store(ctx context.Context, a *domain.Article) error {
	return r.db.Store(ctx, a)
}

func (r *articleRepository) Update(ctx context.Context, a *domain.Article) error {
	if err := r.db.Update(ctx, a); err != nil {
		return err
	}
	r.invalidate(ctx, a.Slug)
	return nil
}

func (r *articleRepository) Delete(ctx context.Context, slug domain.Slug) error {
	if err := r.db.Delete(ctx, slug); err != nil {
		return err
	}
	r.invalidate(ctx, slug)
	return nil
}

func (r *articleRepository) Favorite(ctx context.Context, slug domain.Slug, userID uuid.UUID) error {
	if err := r.db.Favorite(ctx, slug, userID); err != nil {
		return err
	}
	// the cached projection carries the favorites count
	r.invalidate(ctx, slug)
	return nil
}

func (r *articleRepository) Unfavorite(ctx context.Context, slug domain.Slug, userID uuid.UUID) error {
	if err := r.db.Unfavorite(ctx, slug, userID); err != nil {
		return err
	}
	r.invalidate(ctx, slug)
	return nil
}

func (r *articleRepository) IsFavorited(ctx context.Context, slug domain.Slug, userID uuid.UUID) (bool, error) {
	return r.db.IsFavorited(ctx, slug, userID)
}

func (r *articleRepository) IsFavoritedBulk(ctx context.Context, userID uuid.UUID, slugs []domain.Slug) (map[domain.Slug]bool, error) {
	return r.db.IsFavoritedBulk(ctx, userID, slugs)
}

func (r *articleRepository) FetchSlugs(ctx context.Context) ([]domain.Slug, error) {
	return r.db.FetchSlugs(ctx)
}

// invalidate runs inline, not on a goroutine. The database write has
// already committed; the DEL must land before the caller re-reads.
func (r *articleRepository) invalidate(ctx context.Context, slug domain.Slug) {
	if err := r.cache.DeleteArticle(ctx, slug); err != nil {
		logrus.Warnf("failed to invalidate article cache for %s: %v", slug, err)
	}
}
