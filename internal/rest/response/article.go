package response

import "github.com/skinnydoo/conduit/domain"

type Article struct {
	Slug           string   `json:"slug"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Body           string   `json:"body"`
	TagList        []string `json:"tagList"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
	Favorited      bool     `json:"favorited"`
	FavoritesCount int64    `json:"favoritesCount"`
	Author         Profile  `json:"author"`
}

type ArticleEnvelope struct {
	Article Article `json:"article"`
}

type ArticleList struct {
	Articles      []Article `json:"articles"`
	ArticlesCount int64     `json:"articlesCount"`
}

// NewArticleFromDomain: Domain -> Response
func NewArticleFromDomain(a *domain.Article) Article {
	tags := make([]string, len(a.TagList))
	for i := range a.TagList {
		tags[i] = a.TagList[i].String()
	}
	return Article{
		Slug:           a.Slug.String(),
		Title:          a.Title,
		Description:    a.Description,
		Body:           a.Body,
		TagList:        tags,
		CreatedAt:      a.CreatedAt.Format(DateTimeFormat),
		UpdatedAt:      a.UpdatedAt.Format(DateTimeFormat),
		Favorited:      a.Favorited,
		FavoritesCount: a.FavoritesCount,
		Author:         NewProfileFromDomain(a.Author),
	}
}

func NewArticleList(articles []domain.Article, total int64) ArticleList {
	res := make([]Article, len(articles))
	for i := range articles {
		res[i] = NewArticleFromDomain(&articles[i])
	}
	return ArticleList{
		Articles:      res,
		ArticlesCount: total,
	}
}
