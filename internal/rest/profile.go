package rest

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skinnydoo/conduit/domain"
	"github.com/skinnydoo/conduit/internal/rest/middleware"
	"github.com/skinnydoo/conduit/internal/rest/response"
)

// ProfileHandler represents the http handler for public profiles
type ProfileHandler struct {
	Service domain.ProfileUsecase
}

func NewProfileHandler(svc domain.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{
		Service: svc,
	}
}

// Get returns the profile for the given username. Auth is optional; a
// resolved identity only affects the following flag.
func (h *ProfileHandler) Get(c *gin.Context) {
	username, err := domain.NewUsername(c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	viewerID := uuid.Nil
	if user, exists := middleware.CurrentUser(c); exists {
		viewerID = user.ID
	}

	profile, err := h.Service.Get(c.Request.Context(), viewerID, username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.ProfileEnvelope{Profile: response.NewProfileFromDomain(profile)})
}

// Follow makes the caller follow the given username
func (h *ProfileHandler) Follow(c *gin.Context) {
	h.setFollow(c, h.Service.Follow)
}

// Unfollow removes the follow edge if present
func (h *ProfileHandler) Unfollow(c *gin.Context) {
	h.setFollow(c, h.Service.Unfollow)
}

func (h *ProfileHandler) setFollow(c *gin.Context, op func(ctx context.Context, selfID uuid.UUID, username domain.Username) (domain.Profile, error)) {
	username, err := domain.NewUsername(c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	user, exists := middleware.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorEnvelope{Body: []string{"Unauthorized"}})
		return
	}

	profile, err := op(c.Request.Context(), user.ID, username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.ProfileEnvelope{Profile: response.NewProfileFromDomain(profile)})
}
