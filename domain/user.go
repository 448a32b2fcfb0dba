package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. The Password field always holds
// the bcrypt hash, never the raw password.
type User struct {
	ID        uuid.UUID // Unique identifier
	Email     Email     // Login email (unique)
	Username  Username  // Public name (unique)
	Bio       string
	Image     string // Avatar URL
	Password  string // Bcrypt hashed password
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Profile is the public view of a user, relative to a viewer.
type Profile struct {
	Username  Username
	Bio       string
	Image     string
	Following bool
}

func (u User) Profile(following bool) Profile {
	return Profile{
		Username:  u.Username,
		Bio:       u.Bio,
		Image:     u.Image,
		Following: following,
	}
}

// UserUpdate carries the mutable fields of a profile update. Nil fields
// are left untouched.
type UserUpdate struct {
	Email    *Email
	Username *Username
	Bio      *string
	Image    *string
	Password *Password // raw, hashed by the use case
}

// UserRepository defines the contract for user data persistence.
// Insert and Update surface unique-constraint violations on email or
// username as ErrUserAlreadyExist.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrUserNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id uuid.UUID) (User, error)

	// GetByEmail retrieves a user by their email.
	// Used during login to verify credentials.
	GetByEmail(ctx context.Context, email Email) (User, error)

	// GetByUsername retrieves a user by their username.
	GetByUsername(ctx context.Context, username Username) (User, error)

	// Insert creates a new user account.
	// Backfills the timestamps in the provided User upon success.
	Insert(ctx context.Context, u *User) error

	// Update modifies an existing user's information.
	Update(ctx context.Context, u *User) error

	// Follow adds a follow edge. Adding an existing edge is a no-op.
	Follow(ctx context.Context, followerID, followeeID uuid.UUID) error

	// Unfollow removes a follow edge. Removing a missing edge is a no-op.
	Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error

	// IsFollowing reports whether followerID follows followeeID.
	IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)

	// IsFollowingBulk reports, for each of followeeIDs, whether followerID
	// follows them. Missing entries mean "not following".
	IsFollowingBulk(ctx context.Context, followerID uuid.UUID, followeeIDs []uuid.UUID) (map[uuid.UUID]bool, error)
}

// UserUsecase defines the business logic contract for account operations.
// Token issuance happens in the REST layer, not here.
type UserUsecase interface {
	// Register creates a new user account.
	// Returns ErrUserAlreadyExist if the email or username collides.
	Register(ctx context.Context, username Username, email Email, password Password) (User, error)

	// Login verifies credentials.
	// Returns ErrEmailUnknown if no user matches the email and
	// ErrPasswordInvalid if the stored hash does not match.
	Login(ctx context.Context, email Email, password Password) (User, error)

	// GetByID retrieves a user by id. Used by the identity resolver.
	GetByID(ctx context.Context, id uuid.UUID) (User, error)

	// Update mutates the caller's own record.
	Update(ctx context.Context, id uuid.UUID, upd UserUpdate) (User, error)
}

// ProfileUsecase defines the business logic contract for public profiles
// and follow relations.
type ProfileUsecase interface {
	// Get returns the profile of username as seen by viewerID.
	// viewerID is uuid.Nil for anonymous access.
	Get(ctx context.Context, viewerID uuid.UUID, username Username) (Profile, error)

	// Follow makes the caller follow username. Following oneself is
	// rejected with ErrSelfFollow.
	Follow(ctx context.Context, selfID uuid.UUID, username Username) (Profile, error)

	// Unfollow removes the follow edge. Unfollowing a user that is not
	// followed is not an error.
	Unfollow(ctx context.Context, selfID uuid.UUID, username Username) (Profile, error)
}
