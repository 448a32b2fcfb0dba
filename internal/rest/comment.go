package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skinnydoo/conduit/domain"
	"github.com/skinnydoo/conduit/internal/rest/middleware"
	"github.com/skinnydoo/conduit/internal/rest/request"
	"github.com/skinnydoo/conduit/internal/rest/response"
)

type commentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *commentHandler {
	return &commentHandler{
		Service: svc,
	}
}

// Create adds a comment to the article behind the given slug
func (h *commentHandler) Create(c *gin.Context) {
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

	var req request.CreateComment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorEnvelope{Body: []string{err.Error()}})
		return
	}

	comment, err := h.Service.Create(c.Request.Context(), user.ID, slug, req.Comment.Body)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.CommentEnvelope{Comment: response.NewCommentFromDomain(&comment)})
}

// FetchByArticle lists comments on an article. Auth is optional and
// only affects the author following flags.
func (h *commentHandler) FetchByArticle(c *gin.Context) {
	slug, err := domain.ParseSlug(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	comments, err := h.Service.FetchByArticle(c.Request.Context(), viewerID(c), slug)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewCommentList(comments))
}

// Delete removes an authored comment
func (h *commentHandler) Delete(c *gin.Context) {
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

	commentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, domain.ErrCommentNotFound)
		return
	}

	if err := h.Service.Delete(c.Request.Context(), user.ID, slug, commentID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
