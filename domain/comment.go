package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Comment domain model
type Comment struct {
	ID          int64
	ArticleSlug Slug
	AuthorID    uuid.UUID
	Author      Profile // relative to the viewer
	Body        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CommentUsecase defines the business logic contract for comments.
// viewerID is uuid.Nil for anonymous access.
type CommentUsecase interface {
	// Create adds a comment to the article identified by slug.
	// Returns ErrArticleNotFound if the article doesn't exist.
	Create(ctx context.Context, selfID uuid.UUID, slug Slug, body string) (Comment, error)

	// FetchByArticle lists comments on an article, most recent first.
	FetchByArticle(ctx context.Context, viewerID uuid.UUID, slug Slug) ([]Comment, error)

	// Delete removes a comment. Only the comment's author may delete it;
	// anyone else gets ErrForbidden.
	Delete(ctx context.Context, selfID uuid.UUID, slug Slug, commentID int64) error
}

// CommentRepository defines the contract for comment persistence.
// Returned comments carry the author profile without the Following flag.
type CommentRepository interface {
	// Store creates a comment. Backfills ID and timestamps.
	Store(ctx context.Context, c *Comment) error

	// GetByID retrieves a single comment.
	// Returns ErrCommentNotFound if it doesn't exist.
	GetByID(ctx context.Context, id int64) (Comment, error)

	// FetchByArticle lists comments on an article, most recent first.
	FetchByArticle(ctx context.Context, slug Slug) ([]Comment, error)

	// Delete removes a comment by id.
	Delete(ctx context.Context, id int64) error
}
