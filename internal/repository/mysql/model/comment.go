package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/skinnydoo/conduit/domain"
)

type Comment struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	ArticleSlug string    `gorm:"type:char(36);not null;index"`
	UserID      string    `gorm:"column:user_id;type:char(36);not null"`
	Body        string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"type:datetime"`
	UpdatedAt   time.Time `gorm:"type:datetime"`
}

func (Comment) TableName() string {
	return "comments"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:          c.ID,
		ArticleSlug: c.ArticleSlug.String(),
		UserID:      c.AuthorID.String(),
		Body:        c.Body,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	slug, _ := domain.ParseSlug(m.ArticleSlug)
	authorID, _ := uuid.Parse(m.UserID)
	return domain.Comment{
		ID:          m.ID,
		ArticleSlug: slug,
		AuthorID:    authorID,
		Body:        m.Body,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
