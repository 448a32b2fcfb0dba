package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/skinnydoo/conduit/domain"
	"github.com/skinnydoo/conduit/internal/auth"
	"github.com/skinnydoo/conduit/internal/rest/middleware"
	"github.com/skinnydoo/conduit/internal/rest/request"
	"github.com/skinnydoo/conduit/internal/rest/response"
)

// UserHandler represents the http handler for accounts. Token issuance
// lives here, outside the use case.
type UserHandler struct {
	Service domain.UserUsecase
	Tokens  *auth.TokenService
}

func NewUserHandler(svc domain.UserUsecase, tokens *auth.TokenService) *UserHandler {
	return &UserHandler{
		Service: svc,
		Tokens:  tokens,
	}
}

// Register will create a new account by given request body
func (h *UserHandler) Register(c *gin.Context) {
	var req request.Register
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorEnvelope{Body: []string{err.Error()}})
		return
	}

	username, err := domain.NewUsername(req.User.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	email, err := domain.NewEmail(req.User.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	password, err := domain.NewPassword(req.User.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.Service.Register(c.Request.Context(), username, email, password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.Tokens.Issue(user.ID)
	if err != nil {
		logrus.Errorf("failed to issue token: %v", err)
		respondError(c, domain.ErrInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, response.NewUserFromDomain(&user, token))
}

// Login verifies credentials and issues a fresh token
func (h *UserHandler) Login(c *gin.Context) {
	var req request.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorEnvelope{Body: []string{err.Error()}})
		return
	}

	email, err := domain.NewEmail(req.User.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.Service.Login(c.Request.Context(), email, domain.Password(req.User.Password))
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.Tokens.Issue(user.ID)
	if err != nil {
		logrus.Errorf("failed to issue token: %v", err)
		respondError(c, domain.ErrInternalServerError)
		return
	}

	c.JSON(http.StatusOK, response.NewUserFromDomain(&user, token))
}

// GetCurrent returns the account behind the resolved identity
func (h *UserHandler) GetCurrent(c *gin.Context) {
	user, exists := middleware.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorEnvelope{Body: []string{"Unauthorized"}})
		return
	}

	c.JSON(http.StatusOK, response.NewUserFromDomain(&user, ""))
}

// Update mutates the caller's own record by given request body
func (h *UserHandler) Update(c *gin.Context) {
	user, exists := middleware.CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorEnvelope{Body: []string{"Unauthorized"}})
		return
	}

	var req request.UpdateUser
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorEnvelope{Body: []string{err.Error()}})
		return
	}

	var upd domain.UserUpdate
	if req.User.Email != nil {
		email, err := domain.NewEmail(*req.User.Email)
		if err != nil {
			respondError(c, err)
			return
		}
		upd.Email = &email
	}
	if req.User.Username != nil {
		username, err := domain.NewUsername(*req.User.Username)
		if err != nil {
			respondError(c, err)
			return
		}
		upd.Username = &username
	}
	if req.User.Password != nil {
		password, err := domain.NewPassword(*req.User.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		upd.Password = &password
	}
	upd.Bio = req.User.Bio
	upd.Image = req.User.Image

	updated, err := h.Service.Update(c.Request.Context(), user.ID, upd)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewUserFromDomain(&updated, ""))
}
