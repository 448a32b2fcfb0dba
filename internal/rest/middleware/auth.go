package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skinnydoo/conduit/domain"
)

const currentUserKey = "currentUser"

// Mode selects how the gate treats a missing or unresolvable identity.
type Mode int

const (
	// Required short-circuits with 401 before the handler runs.
	Required Mode = iota
	// Optional tolerates resolution failure; the handler sees no identity.
	Optional
)

// IdentityResolver turns a bearer token into a live user record.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (domain.User, error)
}

// Auth is the authentication gate. It is the only place identity is
// established; handlers and use cases never re-verify tokens.
func Auth(resolver IdentityResolver, mode Mode) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromHeader(c.GetHeader("Authorization"))
		if token != "" {
			user, err := resolver.Resolve(c.Request.Context(), token)
			if err == nil {
				c.Set(currentUserKey, user)
				c.Next()
				return
			}
		}

		if mode == Required {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"body": []string{"Unauthorized"}})
			return
		}
		c.Next()
	}
}

// tokenFromHeader extracts the credential from "Authorization: Token
// <jwt>". The Bearer scheme is admitted as well.
func tokenFromHeader(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	switch strings.ToLower(parts[0]) {
	case "token", "bearer":
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// CurrentUser returns the identity established by the gate, if any.
func CurrentUser(c *gin.Context) (domain.User, bool) {
	v, exists := c.Get(currentUserKey)
	if !exists {
		return domain.User{}, false
	}
	user, ok := v.(domain.User)
	return user, ok
}
