package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/skinnydoo/conduit/domain"
)

// ErrorEnvelope is the uniform failure body.
type ErrorEnvelope struct {
	Body []string `json:"body"`
}

// statusCode maps every domain failure to its HTTP status. The switch is
// exhaustive over the taxonomy; anything outside it is an unexpected
// failure and becomes a 500.
func statusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrEmailUnknown),
		errors.Is(err, domain.ErrPasswordInvalid):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		// ownership violations deliberately reuse 401 instead of 403
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrArticleNotFound),
		errors.Is(err, domain.ErrCommentNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUserAlreadyExist),
		errors.Is(err, domain.ErrSelfFollow),
		errors.Is(err, domain.ErrSlugInvalid),
		errors.Is(err, domain.ErrEmailInvalid),
		errors.Is(err, domain.ErrUsernameInvalid),
		errors.Is(err, domain.ErrTagInvalid),
		errors.Is(err, domain.ErrPasswordTooShort):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInternalServerError):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the mapped status and the error envelope.
func respondError(c *gin.Context, err error) {
	status := statusCode(err)
	if status == http.StatusInternalServerError {
		logrus.Error(err)
	}
	c.JSON(status, ErrorEnvelope{Body: []string{err.Error()}})
}
