package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skinnydoo/conduit/domain"
	"github.com/skinnydoo/conduit/internal/rest/middleware"
	"github.com/skinnydoo/conduit/internal/rest/request"
	"github.com/skinnydoo/conduit/internal/rest/response"
)

// ArticleHandler represents the http handler for articles
type ArticleHandler struct {
	Service domain.ArticleUsecase
}

func NewArticleHandler(svc domain.ArticleUsecase) *ArticleHandler {
	return &ArticleHandler{
		Service: svc,
	}
}

// Fetch will fetch articles based on given query params. Auth is
// optional and only affects the favorited/following flags.
func (h *ArticleHandler) Fetch(c *gin.Context) {
	filter := domain.ArticleFilter{
		Limit:  limitFromQuery(c),
		Offset: offsetFromQuery(c),
	}

	if raw := c.Query("tag"); raw != "" {
		tag, err := domain.NewTag(raw)
		if err != nil {
			respondError(c, err)
			return
		}
		filter.Tag = &tag
	}
	if raw := c.Query("author"); raw != "" {
		author, err := domain.NewUsername(raw)
		if err != nil {
			respondError(c, err)
			return
		}
		filter.Author = &author
	}
	if raw := c.Query("favorited"); raw != "" {
		favoritedBy, err := domain.NewUsername(raw)
		if err != nil {
			respondError(c, err)
			return
		}
		filter.FavoritedBy = &favoritedBy
	}

	articles, total, err := h.Service.Fetch(c.Request.Context(), viewerID(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewArticleList(articles, total))
}

// Feed returns articles authored by followed users. Auth is required.
func (h *ArticleHandler) Feed(c *gin.Context) {
	user, exists := middleware.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorEnvelope{Body: []string{"Unauthorized"}})
		return
	}

	articles, total, err := h.Service.Feed(c.Request.Context(), user.ID, limitFromQuery(c), offsetFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewArticleList(articles, total))
}

// GetBySlug will get an article by given slug
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	slug, err := domain.ParseSlug(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	article, err := h.Service.GetBySlug(c.Request.Context(), viewerID(c), slug)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.ArticleEnvelope{Article: response.NewArticleFromDomain(&article)})
}

// Create will author a new article by given request body
func (h *ArticleHandler) Create(c *gin.Context) {
	user, exists := middleware.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorEnvelope{Body: []string{"Unauthorized"}})
		return
	}

	var req request.CreateArticle
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorEnvelope{Body: []string{err.Error()}})
		return
	}

	tags, err := req.Tags()
	if err != nil {
		respondError(c, err)
		return
	}

	article, err := h.Service.Create(c.Request.Context(), user.ID,
		req.Article.Title, req.Article.Description, req.Article.Body, tags)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.ArticleEnvelope{Article: response.NewArticleFromDomain(&article)})
}

// Update mutates an owned article by given request body
func (h *ArticleHandler) Update(c *gin.Context) {
	user, exists := middleware.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorEnvelope{Body: []string{"Unauthorized"}})
		return
	}

	slug, err := domain.ParseSlug(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	var req request.UpdateArticle
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorEnvelope{Body: []string{err.Error()}})
		return
	}

	article, err := h.Service.Update(c.Request.Context(), user.ID, slug, req.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.ArticleEnvelope{Article: response.NewArticleFromDomain(&article)})
}

// Delete removes an owned article by given slug
func (h *ArticleHandler) Delete(c *gin.Context) {
	user, exists := middleware.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorEnvelope{Body: []string{"Unauthorized"}})
		return
	}

	slug, err := domain.ParseSlug(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Service.Delete(c.Request.Context(), user.ID, slug); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Favorite adds the article to the caller's favorites, a no-op if
// already present
func (h *ArticleHandler) Favorite(c *gin.Context) {
	h.setFavorite(c, h.Service.Favorite)
}

// Unfavorite removes the article from the caller's favorites, a no-op
// if absent
func (h *ArticleHandler) Unfavorite(c *gin.Context) {
	h.setFavorite(c, h.Service.Unfavorite)
}

func (h *ArticleHandler) setFavorite(c *gin.Context, op func(ctx context.Context, selfID uuid.UUID, slug domain.Slug) (domain.Article, error)) {
	user, exists := middleware.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorEnvelope{Body: []string{"Unauthorized"}})
		return
	}

	slug, err := domain.ParseSlug(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	article, err := op(c.Request.Context(), user.ID, slug)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.ArticleEnvelope{Article: response.NewArticleFromDomain(&article)})
}

// viewerID resolves the optional identity to a user id, uuid.Nil for
// anonymous requests.
func viewerID(c *gin.Context) uuid.UUID {
	if user, exists := middleware.CurrentUser(c); exists {
		return user.ID
	}
	return uuid.Nil
}

func limitFromQuery(c *gin.Context) domain.Limit {
	n, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		return domain.DefaultLimit
	}
	limit, _ := domain.NewLimit(n)
	return limit
}

func offsetFromQuery(c *gin.Context) domain.Offset {
	n, err := strconv.Atoi(c.Query("offset"))
	if err != nil {
		return domain.DefaultOffset
	}
	offset, _ := domain.NewOffset(n)
	return offset
}
