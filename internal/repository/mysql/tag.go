package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/skinnydoo/conduit/domain"
	"github.com/skinnydoo/conduit/internal/repository/mysql/model"
)

type tagRepository struct {
	DB *gorm.DB
}

var _ domain.TagRepository = (*tagRepository)(nil)

func NewTagRepository(db *gorm.DB) *tagRepository {
	return &tagRepository{
		DB: db,
	}
}

func (t *tagRepository) Fetch(ctx context.Context) ([]domain.Tag, error) {
	var raw []string
	err := t.DB.WithContext(ctx).Model(&model.ArticleTag{}).
		Distinct("tag").
		Order("tag").
		Pluck("tag", &raw).Error
	if err != nil {
		return nil, err
	}

	tags := make([]domain.Tag, len(raw))
	for i := range raw {
		tags[i] = domain.Tag(raw[i])
	}
	return tags, nil
}
