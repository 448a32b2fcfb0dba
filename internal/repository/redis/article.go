package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/skinnydoo/conduit/domain"
)

const (
	KeyArticle = "article:%s"

	articleTTL = 10 * time.Minute
)

// cachedArticle is the viewer-neutral projection stored in redis. The
// Favorited and Author.Following flags are never cached.
type cachedArticle struct {
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Body           string    `json:"body"`
	TagList        []string  `json:"tag_list"`
	AuthorID       string    `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	AuthorBio      string    `json:"author_bio"`
	AuthorImage    string    `json:"author_image"`
	FavoritesCount int64     `json:"favorites_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type articleCache struct {
	client *redis.Client
}

var _ domain.ArticleCache = (*articleCache)(nil)

func NewArticleCache(client *redis.Client) *articleCache {
	return &articleCache{
		client,
	}
}

func (c *articleCache) GetArticle(ctx context.Context, slug domain.Slug) (domain.Article, error) {
	key := fmt.Sprintf(KeyArticle, slug.String())
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Article{}, domain.ErrCacheMiss
	} else if err != nil {
		return domain.Article{}, err
	}

	var ca cachedArticle
	if err = json.Unmarshal(data, &ca); err != nil {
		return domain.Article{}, err
	}
	return ca.toDomain()
}

func (c *articleCache) SetArticle(ctx context.Context, a *domain.Article) error {
	key := fmt.Sprintf(KeyArticle, a.Slug.String())
	data, err := json.Marshal(newCachedArticle(a))
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, articleTTL).Err()
}

func (c *articleCache) DeleteArticle(ctx context.Context, slug domain.Slug) error {
	return c.client.Del(ctx, fmt.Sprintf(KeyArticle, slug.String())).Err()
}

func newCachedArticle(a *domain.Article) cachedArticle {
	tags := make([]string, len(a.TagList))
	for i := range a.TagList {
		tags[i] = a.TagList[i].String()
	}
	return cachedArticle{
		Slug:           a.Slug.String(),
		Title:          a.Title,
		Description:    a.Description,
		Body:           a.Body,
		TagList:        tags,
		AuthorID:       a.AuthorID.String(),
		AuthorUsername: a.Author.Username.String(),
		AuthorBio:      a.Author.Bio,
		AuthorImage:    a.Author.Image,
		FavoritesCount: a.FavoritesCount,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func (ca cachedArticle) toDomain() (domain.Article, error) {
	slug, err := domain.ParseSlug(ca.Slug)
	if err != nil {
		return domain.Article{}, err
	}
	authorID, err := uuid.Parse(ca.AuthorID)
	if err != nil {
		return domain.Article{}, err
	}

	tags := make([]domain.Tag, len(ca.TagList))
	for i := range ca.TagList {
		tags[i] = domain.Tag(ca.TagList[i])
	}
	return domain.Article{
		Slug:        slug,
		Title:       ca.Title,
		Description: ca.Description,
		Body:        ca.Body,
		TagList:     tags,
		AuthorID:    authorID,
		Author: domain.Profile{
			Username: domain.Username(ca.AuthorUsername),
			Bio:      ca.AuthorBio,
			Image:    ca.AuthorImage,
		},
		FavoritesCount: ca.FavoritesCount,
		CreatedAt:      ca.CreatedAt,
		UpdatedAt:      ca.UpdatedAt,
	}, nil
}
