package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/skinnydoo/conduit/domain"
)

type User struct {
	ID        string    `gorm:"type:char(36);primaryKey"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Username  string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Bio       string    `gorm:"type:text"`
	Image     string    `gorm:"type:varchar(512)"`
	Password  string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `gorm:"type:datetime"`
	UpdatedAt time.Time `gorm:"type:datetime"`
}

func (User) TableName() string {
	return "users"
}

func (m *User) ToDomain() domain.User {
	id, _ := uuid.Parse(m.ID)
	return domain.User{
		ID:        id,
		Email:     domain.Email(m.Email),
		Username:  domain.Username(m.Username),
		Bio:       m.Bio,
		Image:     m.Image,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func NewUserFromDomain(u *domain.User) *User {
	return &User{
		ID:        u.ID.String(),
		Email:     u.Email.String(),
		Username:  u.Username.String(),
		Bio:       u.Bio,
		Image:     u.Image,
		Password:  u.Password,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type Follow struct {
	FollowerID string    `gorm:"type:char(36);not null;uniqueIndex:idx_follow_pair"`
	FolloweeID string    `gorm:"type:char(36);not null;uniqueIndex:idx_follow_pair"`
	CreatedAt  time.Time `gorm:"type:datetime"`
}

func (Follow) TableName() string {
	return "follows"
}
