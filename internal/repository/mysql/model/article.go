package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/skinnydoo/conduit/domain"
)

type Article struct {
	Slug        string    `gorm:"type:char(36);primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:varchar(512);not null"`
	Body        string    `gorm:"type:longtext;not null"`
	AuthorID    string    `gorm:"column:author_id;type:char(36);not null;index"`
	CreatedAt   time.Time `gorm:"type:datetime;index"`
	UpdatedAt   time.Time `gorm:"type:datetime"`
}

func (Article) TableName() string {
	return "articles"
}

// ToDomain maps the row to the domain entity. Tags, author profile and
// favorites count come from separate queries and are filled by the
// repository.
func (m *Article) ToDomain() domain.Article {
	slug, _ := domain.ParseSlug(m.Slug)
	authorID, _ := uuid.Parse(m.AuthorID)
	return domain.Article{
		Slug:        slug,
		Title:       m.Title,
		Description: m.Description,
		Body:        m.Body,
		AuthorID:    authorID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func NewArticleFromDomain(a *domain.Article) *Article {
	return &Article{
		Slug:        a.Slug.String(),
		Title:       a.Title,
		Description: a.Description,
		Body:        a.Body,
		AuthorID:    a.AuthorID.String(),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

type ArticleTag struct {
	ArticleSlug string `gorm:"type:char(36);not null;uniqueIndex:idx_article_tag"`
	Tag         string `gorm:"type:varchar(100);not null;uniqueIndex:idx_article_tag;index"`
}

func (ArticleTag) TableName() string {
	return "article_tags"
}

type Favorite struct {
	ArticleSlug string    `gorm:"type:char(36);not null;uniqueIndex:idx_favorite_pair"`
	UserID      string    `gorm:"type:char(36);not null;uniqueIndex:idx_favorite_pair"`
	CreatedAt   time.Time `gorm:"type:datetime"`
}

func (Favorite) TableName() string {
	return "favorites"
}
