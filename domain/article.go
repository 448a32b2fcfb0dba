package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Article is representing the Article data struct
type Article struct {
	Slug           Slug      // Unique identifier, exposed in URLs
	Title          string    // Article title
	Description    string    // Short summary
	Body           string    // Article body content
	TagList        []Tag     // Labels, sorted
	AuthorID       uuid.UUID // Owning user id
	Author         Profile   // Author public view, relative to the viewer
	FavoritesCount int64     // Cardinality of the favoriting-user set
	Favorited      bool      // Whether the viewer favorited this article
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ArticleFilter narrows list queries. Nil fields are not applied.
type ArticleFilter struct {
	Tag         *Tag
	Author      *Username
	FavoritedBy *Username
	Limit       Limit
	Offset      Offset
}

// ArticleUpdate carries the mutable fields of an article. Nil fields are
// left untouched.
type ArticleUpdate struct {
	Title       *string
	Description *string
	Body        *string
}

// ArticleRepository defines the contract for article data persistence.
// Returned articles carry author, tag list and favorites count, but
// never the viewer-dependent Favorited/Author.Following flags; those are
// decorated by the use case.
type ArticleRepository interface {
	// GetBySlug retrieves a single article.
	// Returns ErrArticleNotFound if the article doesn't exist.
	GetBySlug(ctx context.Context, slug Slug) (Article, error)

	// Fetch retrieves a filtered, paginated list of articles ordered by
	// most recent first, along with the total count before pagination.
	Fetch(ctx context.Context, filter ArticleFilter) ([]Article, int64, error)

	// FetchFeed retrieves articles authored by users followed by userID,
	// most recent first, along with the total count.
	FetchFeed(ctx context.Context, userID uuid.UUID, limit Limit, offset Offset) ([]Article, int64, error)

	// Store creates a new article together with its tag set.
	Store(ctx context.Context, a *Article) error

	// Update modifies title, description and body of an existing article.
	// Returns ErrArticleNotFound if the article doesn't exist.
	Update(ctx context.Context, a *Article) error

	// Delete removes an article, its tags, favorites and comments.
	// Returns ErrArticleNotFound if not exists.
	Delete(ctx context.Context, slug Slug) error

	// Favorite records that userID favorites the article. Favoriting an
	// already-favorited article is a no-op.
	Favorite(ctx context.Context, slug Slug, userID uuid.UUID) error

	// Unfavorite removes the favorite record, a no-op if absent.
	Unfavorite(ctx context.Context, slug Slug, userID uuid.UUID) error

	// IsFavorited reports whether userID favorited the article.
	IsFavorited(ctx context.Context, slug Slug, userID uuid.UUID) (bool, error)

	// IsFavoritedBulk reports, for each slug, whether userID favorited it.
	// Missing entries mean "not favorited".
	IsFavoritedBulk(ctx context.Context, userID uuid.UUID, slugs []Slug) (map[Slug]bool, error)

	// FetchSlugs returns every stored slug. Used to seed the bloom filter.
	FetchSlugs(ctx context.Context) ([]Slug, error)
}

// ArticleCache is the viewer-neutral article cache. Implementations
// return ErrCacheMiss when a key is absent.
type ArticleCache interface {
	GetArticle(ctx context.Context, slug Slug) (Article, error)
	SetArticle(ctx context.Context, a *Article) error
	DeleteArticle(ctx context.Context, slug Slug) error
}

// ArticleUsecase defines the business logic contract for articles.
// viewerID is uuid.Nil for anonymous access.
type ArticleUsecase interface {
	Fetch(ctx context.Context, viewerID uuid.UUID, filter ArticleFilter) ([]Article, int64, error)
	Feed(ctx context.Context, selfID uuid.UUID, limit Limit, offset Offset) ([]Article, int64, error)
	GetBySlug(ctx context.Context, viewerID uuid.UUID, slug Slug) (Article, error)
	Create(ctx context.Context, selfID uuid.UUID, title, description, body string, tags []Tag) (Article, error)
	Update(ctx context.Context, selfID uuid.UUID, slug Slug, upd ArticleUpdate) (Article, error)
	Delete(ctx context.Context, selfID uuid.UUID, slug Slug) error
	Favorite(ctx context.Context, selfID uuid.UUID, slug Slug) (Article, error)
	Unfavorite(ctx context.Context, selfID uuid.UUID, slug Slug) (Article, error)

	// InitBloomFilter seeds the slug bloom filter from persistence.
	// Called once at startup.
	InitBloomFilter(ctx context.Context) error
}
