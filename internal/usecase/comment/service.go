package comment

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/skinnydoo/conduit/domain"
)

type service struct {
	commentRepo domain.CommentRepository
	articleRepo domain.ArticleRepository
	userRepo    domain.UserRepository
	bloomRepo   domain.BloomRepository
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, articleRepo domain.ArticleRepository, userRepo domain.UserRepository, bloomRepo domain.BloomRepository) *service {
	return &service{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		userRepo:    userRepo,
		bloomRepo:   bloomRepo,
	}
}

func (s *service) mustExist(ctx context.Context, slug domain.Slug) error {
	exists, err := s.bloomRepo.Exists(ctx, slug)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says article %s does not exist", slug)
		return domain.ErrArticleNotFound
	}
	return nil
}

func (s *service) Create(ctx context.Context, selfID uuid.UUID, slug domain.Slug, body string) (domain.Comment, error) {
	if err := s.mustExist(ctx, slug); err != nil {
		return domain.Comment{}, err
	}

	// the comment must reference a live article at creation time
	if _, err := s.articleRepo.GetBySlug(ctx, slug); err != nil {
		return domain.Comment{}, err
	}

	author, err := s.userRepo.GetByID(ctx, selfID)
	if err != nil {
		return domain.Comment{}, err
	}

	comment := domain.Comment{
		ArticleSlug: slug,
		AuthorID:    selfID,
		Author:      author.Profile(false),
		Body:        body,
	}
	if err := s.commentRepo.Store(ctx, &comment); err != nil {
		return domain.Comment{}, err
	}
	return comment, nil
}

func (s *service) FetchByArticle(ctx context.Context, viewerID uuid.UUID, slug domain.Slug) ([]domain.Comment, error) {
	if err := s.mustExist(ctx, slug); err != nil {
		return nil, err
	}

	if _, err := s.articleRepo.GetBySlug(ctx, slug); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.FetchByArticle(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.fillFollowing(ctx, viewerID, comments)
}

func (s *service) Delete(ctx context.Context, selfID uuid.UUID, slug domain.Slug, commentID int64) error {
	if err := s.mustExist(ctx, slug); err != nil {
		return err
	}

	if _, err := s.articleRepo.GetBySlug(ctx, slug); err != nil {
		return err
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.ArticleSlug != slug {
		return domain.ErrCommentNotFound
	}
	if comment.AuthorID != selfID {
		return domain.ErrForbidden
	}

	return s.commentRepo.Delete(ctx, commentID)
}

// fillFollowing sets Author.Following for each comment relative to the
// viewer. Anonymous viewers get false everywhere.
func (s *service) fillFollowing(ctx context.Context, viewerID uuid.UUID, comments []domain.Comment) ([]domain.Comment, error) {
	if viewerID == uuid.Nil || len(comments) == 0 {
		return comments, nil
	}

	authorIDs := make([]uuid.UUID, 0, len(comments))
	seen := make(map[uuid.UUID]bool)
	for _, c := range comments {
		if !seen[c.AuthorID] {
			authorIDs = append(authorIDs, c.AuthorID)
			seen[c.AuthorID] = true
		}
	}

	following, err := s.userRepo.IsFollowingBulk(ctx, viewerID, authorIDs)
	if err != nil {
		return nil, err
	}

	for i := range comments {
		comments[i].Author.Following = following[comments[i].AuthorID]
	}
	return comments, nil
}
