package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/skinnydoo/conduit/domain"
	"github.com/skinnydoo/conduit/internal/repository/mysql/model"
)

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	commentModel := model.NewCommentFromDomain(comment)
	if err := c.DB.WithContext(ctx).Create(&commentModel).Error; err != nil {
		return err
	}

	comment.ID = commentModel.ID
	comment.CreatedAt = commentModel.CreatedAt
	comment.UpdatedAt = commentModel.UpdatedAt
	return nil
}

func (c *commentRepository) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	var comment model.Comment
	err := c.DB.WithContext(ctx).First(&comment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Comment{}, domain.ErrCommentNotFound
		}
		return domain.Comment{}, err
	}
	return comment.ToDomain(), nil
}

func (c *commentRepository) FetchByArticle(ctx context.Context, slug domain.Slug) ([]domain.Comment, error) {
	var comments []model.Comment
	err := c.DB.WithContext(ctx).
		Where("article_slug = ?", slug.String()).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Comment, len(comments))
	for i := range comments {
		res[i] = comments[i].ToDomain()
	}
	return c.fillAuthors(ctx, res)
}

func (c *commentRepository) Delete(ctx context.Context, id int64) error {
	result := c.DB.WithContext(ctx).Delete(&model.Comment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (c *commentRepository) fillAuthors(ctx context.Context, comments []domain.Comment) ([]domain.Comment, error) {
	if len(comments) == 0 {
		return comments, nil
	}

	ids := make([]string, 0, len(comments))
	seen := make(map[string]bool)
	for _, cm := range comments {
		if id := cm.AuthorID.String(); !seen[id] {
			ids = append(ids, id)
			seen[id] = true
		}
	}

	var users []model.User
	if err := c.DB.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}

	profiles := make(map[string]domain.Profile, len(users))
	for i := range users {
		profiles[users[i].ID] = users[i].ToDomain().Profile(false)
	}

	for i := range comments {
		comments[i].Author = profiles[comments[i].AuthorID.String()]
	}
	return comments, nil
}
