package domain

import "errors"

// Domain failures form a closed set. Every use case returns one of these
// sentinels (or nil); the REST layer owns the mapping to HTTP status codes.
var (
	// ErrInternalServerError covers unexpected persistence failures
	ErrInternalServerError = errors.New("internal server error")

	// ErrEmailUnknown is returned on login when no user matches the email
	ErrEmailUnknown = errors.New("unknown email")

	// ErrPasswordInvalid is returned on login when the stored hash does not match
	ErrPasswordInvalid = errors.New("invalid password")

	// ErrUserAlreadyExist is surfaced by the repository when a unique
	// constraint on email or username is violated
	ErrUserAlreadyExist = errors.New("user already exists")

	// ErrUserNotFound is returned when the requested profile does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrArticleNotFound is returned when no article matches the given slug
	ErrArticleNotFound = errors.New("article not found")

	// ErrCommentNotFound is returned when no comment matches the given id
	ErrCommentNotFound = errors.New("comment not found")

	// ErrForbidden is returned when the caller does not own the target
	// article or comment
	ErrForbidden = errors.New("forbidden")

	// ErrSelfFollow is returned when a user tries to follow themselves
	ErrSelfFollow = errors.New("cannot follow yourself")
)

// Invalid property failures, produced by the value object factories.
var (
	ErrSlugInvalid      = errors.New("invalid slug")
	ErrEmailInvalid     = errors.New("invalid email")
	ErrUsernameInvalid  = errors.New("invalid username")
	ErrTagInvalid       = errors.New("invalid tag")
	ErrPasswordTooShort = errors.New("password is too short")
)

// ErrCacheMiss is internal to the repository layer. It never crosses the
// use case boundary.
var ErrCacheMiss = errors.New("cache miss")
