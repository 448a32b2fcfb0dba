package request

import "github.com/skinnydoo/conduit/domain"

// CreateArticle is the body of POST /articles.
type CreateArticle struct {
	Article struct {
		Title       string   `json:"title" binding:"required,notblank"`
		Description string   `json:"description" binding:"required"`
		Body        string   `json:"body" binding:"required,notblank"`
		TagList     []string `json:"tagList"`
	} `json:"article" binding:"required"`
}

// Tags validates the raw tag list into value objects.
func (r *CreateArticle) Tags() ([]domain.Tag, error) {
	tags := make([]domain.Tag, 0, len(r.Article.TagList))
	for _, raw := range r.Article.TagList {
		tag, err := domain.NewTag(raw)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// UpdateArticle is the body of PUT /articles/:slug. Absent fields are
// left untouched.
type UpdateArticle struct {
	Article struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Body        *string `json:"body"`
	} `json:"article" binding:"required"`
}

func (r *UpdateArticle) ToDomain() domain.ArticleUpdate {
	return domain.ArticleUpdate{
		Title:       r.Article.Title,
		Description: r.Article.Description,
		Body:        r.Article.Body,
	}
}
