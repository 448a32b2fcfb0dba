package mysql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/skinnydoo/conduit/domain"
	"github.com/skinnydoo/conduit/internal/repository/mysql/model"
)

type articleRepository struct {
	DB *gorm.DB
}

var _ domain.ArticleRepository = (*articleRepository)(nil)

// NewArticleRepository will create an implementation of domain.ArticleRepository
func NewArticleRepository(db *gorm.DB) *articleRepository {
	return &articleRepository{db}
}

func (m *articleRepository) GetBySlug(ctx context.Context, slug domain.Slug) (domain.Article, error) {
	var article model.Article
	err := m.DB.WithContext(ctx).First(&article, "slug = ?", slug.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Article{}, domain.ErrArticleNotFound
		}
		return domain.Article{}, err
	}

	res, err := m.hydrate(ctx, []domain.Article{article.ToDomain()})
	if err != nil {
		return domain.Article{}, err
	}
	return res[0], nil
}

func (m *articleRepository) Fetch(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, int64, error) {
	q := m.DB.WithContext(ctx).Model(&model.Article{})

	if filter.Tag != nil {
		q = q.Where("slug IN (?)", m.DB.Model(&model.ArticleTag{}).
			Select("article_slug").Where("tag = ?", filter.Tag.String()))
	}
	if filter.Author != nil {
		q = q.Where("author_id IN (?)", m.DB.Model(&model.User{}).
			Select("id").Where("username = ?", filter.Author.String()))
	}
	if filter.FavoritedBy != nil {
		q = q.Where("slug IN (?)", m.DB.Model(&model.Favorite{}).
			Select("article_slug").Where("user_id IN (?)", m.DB.Model(&model.User{}).
			Select("id").Where("username = ?", filter.FavoritedBy.String())))
	}

	return m.page(ctx, q, filter.Limit, filter.Offset)
}

func (m *articleRepository) FetchFeed(ctx context.Context, userID uuid.UUID, limit domain.Limit, offset domain.Offset) ([]domain.Article, int64, error) {
	q := m.DB.WithContext(ctx).Model(&model.Article{}).
		Where("author_id IN (?)", m.DB.Model(&model.Follow{}).
			Select("followee_id").Where("follower_id = ?", userID.String()))

	return m.page(ctx, q, limit, offset)
}

// page counts the filtered set, then applies ordering and pagination.
func (m *articleRepository) page(ctx context.Context, q *gorm.DB, limit domain.Limit, offset domain.Offset) ([]domain.Article, int64, error) {
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []model.Article
	err := q.Order("created_at DESC").
		Limit(int(limit)).
		Offset(int(offset)).
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}

	res := make([]domain.Article, len(articles))
	for i := range articles {
		res[i] = articles[i].ToDomain()
	}

	res, err = m.hydrate(ctx, res)
	if err != nil {
		return nil, 0, err
	}
	return res, total, nil
}

func (m *articleRepository) Store(ctx context.Context, a *domain.Article) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		articleModel := model.NewArticleFromDomain(a)
		if err := tx.Create(&articleModel).Error; err != nil {
			return err
		}

		if len(a.TagList) > 0 {
			tags := make([]model.ArticleTag, len(a.TagList))
			for i, t := range a.TagList {
				tags[i] = model.ArticleTag{ArticleSlug: a.Slug.String(), Tag: t.String()}
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&tags).Error; err != nil {
				return err
			}
		}

		a.CreatedAt = articleModel.CreatedAt
		a.UpdatedAt = articleModel.UpdatedAt
		return nil
	})
}

func (m *articleRepository) Update(ctx context.Context, a *domain.Article) error {
	result := m.DB.WithContext(ctx).Model(&model.Article{}).
		Where("slug = ?", a.Slug.String()).
		Updates(map[string]any{
			"title":       a.Title,
			"description": a.Description,
			"body":        a.Body,
			"updated_at":  a.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

func (m *articleRepository) Delete(ctx context.Context, slug domain.Slug) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.Article{}, "slug = ?", slug.String())
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrArticleNotFound
		}

		if err := tx.Delete(&model.ArticleTag{}, "article_slug = ?", slug.String()).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Favorite{}, "article_slug = ?", slug.String()).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Comment{}, "article_slug = ?", slug.String()).Error
	})
}

func (m *articleRepository) Favorite(ctx context.Context, slug domain.Slug, userID uuid.UUID) error {
	fav := model.Favorite{
		ArticleSlug: slug.String(),
		UserID:      userID.String(),
	}
	// favoriting twice is a no-op, the unique pair index absorbs the conflict
	return m.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&fav).Error
}

func (m *articleRepository) Unfavorite(ctx context.Context, slug domain.Slug, userID uuid.UUID) error {
	return m.DB.WithContext(ctx).
		Where("article_slug = ? AND user_id = ?", slug.String(), userID.String()).
		Delete(&model.Favorite{}).Error
}

func (m *articleRepository) IsFavorited(ctx context.Context, slug domain.Slug, userID uuid.UUID) (bool, error) {
	var count int64
	err := m.DB.WithContext(ctx).Model(&model.Favorite{}).
		Where("article_slug = ? AND user_id = ?", slug.String(), userID.String()).
		Count(&count).Error
	return count > 0, err
}

func (m *articleRepository) IsFavoritedBulk(ctx context.Context, userID uuid.UUID, slugs []domain.Slug) (map[domain.Slug]bool, error) {
	res := make(map[domain.Slug]bool, len(slugs))
	if len(slugs) == 0 {
		return res, nil
	}

	raw := make([]string, len(slugs))
	for i := range slugs {
		raw[i] = slugs[i].String()
	}

	var favorited []string
	err := m.DB.WithContext(ctx).Model(&model.Favorite{}).
		Where("user_id = ? AND article_slug IN ?", userID.String(), raw).
		Pluck("article_slug", &favorited).Error
	if err != nil {
		return nil, err
	}

	for _, s := range favorited {
		if slug, err := domain.ParseSlug(s); err == nil {
			res[slug] = true
		}
	}
	return res, nil
}

func (m *articleRepository) FetchSlugs(ctx context.Context) ([]domain.Slug, error) {
	var raw []string
	err := m.DB.WithContext(ctx).Model(&model.Article{}).Pluck("slug", &raw).Error
	if err != nil {
		return nil, err
	}

	slugs := make([]domain.Slug, 0, len(raw))
	for _, s := range raw {
		if slug, err := domain.ParseSlug(s); err == nil {
			slugs = append(slugs, slug)
		}
	}
	return slugs, nil
}

// hydrate batch-fills author profiles, tag lists and favorite counts.
func (m *articleRepository) hydrate(ctx context.Context, articles []domain.Article) ([]domain.Article, error) {
	if len(articles) == 0 {
		return articles, nil
	}

	authorIDs := make([]string, 0, len(articles))
	slugs := make([]string, 0, len(articles))
	seen := make(map[string]bool)
	for _, a := range articles {
		slugs = append(slugs, a.Slug.String())
		if id := a.AuthorID.String(); !seen[id] {
			authorIDs = append(authorIDs, id)
			seen[id] = true
		}
	}

	var authors []model.User
	if err := m.DB.WithContext(ctx).Where("id IN ?", authorIDs).Find(&authors).Error; err != nil {
		return nil, err
	}
	authorMap := make(map[string]domain.Profile, len(authors))
	for i := range authors {
		authorMap[authors[i].ID] = authors[i].ToDomain().Profile(false)
	}

	var tags []model.ArticleTag
	if err := m.DB.WithContext(ctx).Where("article_slug IN ?", slugs).Order("tag").Find(&tags).Error; err != nil {
		return nil, err
	}
	tagMap := make(map[string][]domain.Tag)
	for _, t := range tags {
		tagMap[t.ArticleSlug] = append(tagMap[t.ArticleSlug], domain.Tag(t.Tag))
	}

	type favCount struct {
		ArticleSlug string
		Cnt         int64
	}
	var counts []favCount
	err := m.DB.WithContext(ctx).Model(&model.Favorite{}).
		Select("article_slug, COUNT(*) AS cnt").
		Where("article_slug IN ?", slugs).
		Group("article_slug").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	countMap := make(map[string]int64, len(counts))
	for _, c := range counts {
		countMap[c.ArticleSlug] = c.Cnt
	}

	for i := range articles {
		s := articles[i].Slug.String()
		articles[i].Author = authorMap[articles[i].AuthorID.String()]
		articles[i].TagList = tagMap[s]
		articles[i].FavoritesCount = countMap[s]
	}
	return articles, nil
}
