package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skinnydoo/conduit/domain"
)

type tagHandler struct {
	Service domain.TagUsecase
}

func NewTagHandler(svc domain.TagUsecase) *tagHandler {
	return &tagHandler{
		Service: svc,
	}
}

// Fetch returns every tag in use
func (h *tagHandler) Fetch(c *gin.Context) {
	tags, err := h.Service.Fetch(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	res := make([]string, len(tags))
	for i := range tags {
		res[i] = tags[i].String()
	}
	c.JSON(http.StatusOK, gin.H{"tags": res})
}
