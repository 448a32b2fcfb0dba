package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/skinnydoo/conduit/domain"
)

// Resolver turns a bearer token into a live user record. Any failure
// along the way (bad token, unparsable subject, unknown user) collapses
// into ErrTokenInvalid so the underlying cause never leaks to clients.
type Resolver struct {
	tokens *TokenService
	users  domain.UserUsecase
}

func NewResolver(tokens *TokenService, users domain.UserUsecase) *Resolver {
	return &Resolver{
		tokens: tokens,
		users:  users,
	}
}

// Resolve verifies tokenString and looks up the subject user.
func (r *Resolver) Resolve(ctx context.Context, tokenString string) (domain.User, error) {
	sub, err := r.tokens.Verify(tokenString)
	if err != nil {
		return domain.User{}, ErrTokenInvalid
	}

	id, err := uuid.Parse(sub)
	if err != nil {
		return domain.User{}, ErrTokenInvalid
	}

	user, err := r.users.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, ErrTokenInvalid
	}
	return user, nil
}
