package article

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/skinnydoo/conduit/domain"
)

type Service struct {
	articleRepo domain.ArticleRepository
	userRepo    domain.UserRepository
	bloomRepo   domain.BloomRepository
}

var _ domain.ArticleUsecase = (*Service)(nil)

// NewService will create a new article service object
func NewService(articleRepo domain.ArticleRepository, userRepo domain.UserRepository, bloomRepo domain.BloomRepository) *Service {
	return &Service{
		articleRepo: articleRepo,
		userRepo:    userRepo,
		bloomRepo:   bloomRepo,
	}
}

// mustExist consults the bloom filter before any cache or database
// lookup. A negative answer is definitive.
func (s *Service) mustExist(ctx context.Context, slug domain.Slug) error {
	exists, err := s.bloomRepo.Exists(ctx, slug)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says article %s does not exist", slug)
		return domain.ErrArticleNotFound
	}
	return nil
}

func (s *Service) Fetch(ctx context.Context, viewerID uuid.UUID, filter domain.ArticleFilter) ([]domain.Article, int64, error) {
	articles, total, err := s.articleRepo.Fetch(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	articles, err = s.decorate(ctx, viewerID, articles)
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (s *Service) Feed(ctx context.Context, selfID uuid.UUID, limit domain.Limit, offset domain.Offset) ([]domain.Article, int64, error) {
	articles, total, err := s.articleRepo.FetchFeed(ctx, selfID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	// every feed author is followed by definition
	for i := range articles {
		articles[i].Author.Following = true
	}

	if err := s.fillFavorited(ctx, selfID, articles); err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (s *Service) GetBySlug(ctx context.Context, viewerID uuid.UUID, slug domain.Slug) (domain.Article, error) {
	if err := s.mustExist(ctx, slug); err != nil {
		return domain.Article{}, err
	}

	article, err := s.articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		return domain.Article{}, err
	}

	decorated, err := s.decorate(ctx, viewerID, []domain.Article{article})
	if err != nil {
		return domain.Article{}, err
	}
	return decorated[0], nil
}

func (s *Service) Create(ctx context.Context, selfID uuid.UUID, title, description, body string, tags []domain.Tag) (domain.Article, error) {
	author, err := s.userRepo.GetByID(ctx, selfID)
	if err != nil {
		return domain.Article{}, err
	}

	now := time.Now()
	article := domain.Article{
		Slug:        domain.NewSlug(),
		Title:       title,
		Description: description,
		Body:        body,
		TagList:     tags,
		AuthorID:    selfID,
		Author:      author.Profile(false),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.articleRepo.Store(ctx, &article); err != nil {
		return domain.Article{}, err
	}

	if err := s.bloomRepo.Add(ctx, article.Slug); err != nil {
		logrus.Warnf("failed to add slug %s to bloom filter: %v", article.Slug, err)
	}
	return article, nil
}

func (s *Service) Update(ctx context.Context, selfID uuid.UUID, slug domain.Slug, upd domain.ArticleUpdate) (domain.Article, error) {
	if err := s.mustExist(ctx, slug); err != nil {
		return domain.Article{}, err
	}

	article, err := s.articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		return domain.Article{}, err
	}
	if article.AuthorID != selfID {
		return domain.Article{}, domain.ErrForbidden
	}

	if upd.Title != nil {
		article.Title = *upd.Title
	}
	if upd.Description != nil {
		article.Description = *upd.Description
	}
	if upd.Body != nil {
		article.Body = *upd.Body
	}
	article.UpdatedAt = time.Now()

	if err := s.articleRepo.Update(ctx, &article); err != nil {
		return domain.Article{}, err
	}

	article.Favorited, err = s.articleRepo.IsFavorited(ctx, slug, selfID)
	if err != nil {
		return domain.Article{}, err
	}
	return article, nil
}

func (s *Service) Delete(ctx context.Context, selfID uuid.UUID, slug domain.Slug) error {
	if err := s.mustExist(ctx, slug); err != nil {
		return err
	}

	article, err := s.articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if article.AuthorID != selfID {
		return domain.ErrForbidden
	}

	// the slug stays in the bloom filter; a later lookup just falls
	// through to the database and gets ErrArticleNotFound there
	return s.articleRepo.Delete(ctx, slug)
}

func (s *Service) Favorite(ctx context.Context, selfID uuid.UUID, slug domain.Slug) (domain.Article, error) {
	return s.setFavorite(ctx, selfID, slug, s.articleRepo.Favorite)
}

func (s *Service) Unfavorite(ctx context.Context, selfID uuid.UUID, slug domain.Slug) (domain.Article, error) {
	return s.setFavorite(ctx, selfID, slug, s.articleRepo.Unfavorite)
}

func (s *Service) setFavorite(ctx context.Context, selfID uuid.UUID, slug domain.Slug, op func(context.Context, domain.Slug, uuid.UUID) error) (domain.Article, error) {
	if err := s.mustExist(ctx, slug); err != nil {
		return domain.Article{}, err
	}

	// the article must exist before the relation is touched
	if _, err := s.articleRepo.GetBySlug(ctx, slug); err != nil {
		return domain.Article{}, err
	}

	if err := op(ctx, slug, selfID); err != nil {
		return domain.Article{}, err
	}

	// re-read for the current favorites count
	article, err := s.articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		return domain.Article{}, err
	}

	decorated, err := s.decorate(ctx, selfID, []domain.Article{article})
	if err != nil {
		return domain.Article{}, err
	}
	return decorated[0], nil
}

func (s *Service) InitBloomFilter(ctx context.Context) error {
	slugs, err := s.articleRepo.FetchSlugs(ctx)
	if err != nil {
		return err
	}
	return s.bloomRepo.BulkAdd(ctx, slugs)
}

// decorate fills the viewer-dependent Favorited and Author.Following
// flags. Anonymous viewers get both flags false.
func (s *Service) decorate(ctx context.Context, viewerID uuid.UUID, articles []domain.Article) ([]domain.Article, error) {
	if viewerID == uuid.Nil || len(articles) == 0 {
		return articles, nil
	}

	slugs := make([]domain.Slug, len(articles))
	authorIDs := make([]uuid.UUID, 0, len(articles))
	seen := make(map[uuid.UUID]bool)
	for i, a := range articles {
		slugs[i] = a.Slug
		if !seen[a.AuthorID] {
			authorIDs = append(authorIDs, a.AuthorID)
			seen[a.AuthorID] = true
		}
	}

	var (
		favorited map[domain.Slug]bool
		following map[uuid.UUID]bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		favorited, err = s.articleRepo.IsFavoritedBulk(gctx, viewerID, slugs)
		return err
	})
	g.Go(func() (err error) {
		following, err = s.userRepo.IsFollowingBulk(gctx, viewerID, authorIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range articles {
		articles[i].Favorited = favorited[articles[i].Slug]
		articles[i].Author.Following = following[articles[i].AuthorID]
	}
	return articles, nil
}

// fillFavorited is the feed variant of decorate, where the following
// flag is already known.
func (s *Service) fillFavorited(ctx context.Context, viewerID uuid.UUID, articles []domain.Article) error {
	if len(articles) == 0 {
		return nil
	}

	slugs := make([]domain.Slug, len(articles))
	for i := range articles {
		slugs[i] = articles[i].Slug
	}

	favorited, err := s.articleRepo.IsFavoritedBulk(ctx, viewerID, slugs)
	if err != nil {
		return err
	}
	for i := range articles {
		articles[i].Favorited = favorited[articles[i].Slug]
	}
	return nil
}
