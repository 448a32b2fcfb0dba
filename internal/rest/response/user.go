package response

import (
	"time"

	"github.com/skinnydoo/conduit/domain"
)

const DateTimeFormat = time.RFC3339

// User is the logged-in view of an account, wrapped as {"user": ...}.
type User struct {
	Email    string `json:"email"`
	Token    string `json:"token"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
}

type UserEnvelope struct {
	User User `json:"user"`
}

// NewUserFromDomain: Domain -> Response
func NewUserFromDomain(u *domain.User, token string) UserEnvelope {
	return UserEnvelope{
		User: User{
			Email:    u.Email.String(),
			Token:    token,
			Username: u.Username.String(),
			Bio:      u.Bio,
			Image:    u.Image,
		},
	}
}
