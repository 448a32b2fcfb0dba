package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Value objects are constructed only through their validating factory.
// Invalid raw input never produces an instance.

// Slug uniquely and permanently identifies one article. The scheme is a
// UUID rendered as a string, exposed in URLs.
type Slug struct {
	id uuid.UUID
}

// NewSlug generates a fresh slug for a new article.
func NewSlug() Slug {
	return Slug{id: uuid.New()}
}

// ParseSlug validates a raw slug taken from a URL path.
// Malformed input returns ErrSlugInvalid.
func ParseSlug(raw string) (Slug, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return Slug{}, ErrSlugInvalid
	}
	return Slug{id: id}, nil
}

func (s Slug) String() string {
	return s.id.String()
}

func (s Slug) IsZero() bool {
	return s.id == uuid.Nil
}

// Email is a normalized (trimmed, lowercased) email address.
type Email string

func NewEmail(raw string) (Email, error) {
	e := strings.ToLower(strings.TrimSpace(raw))
	at := strings.IndexByte(e, '@')
	if at <= 0 || at == len(e)-1 {
		return "", ErrEmailInvalid
	}
	return Email(e), nil
}

func (e Email) String() string { return string(e) }

// Username identifies a user publicly. Uniqueness is a persistence
// concern, surfaced later as ErrUserAlreadyExist.
type Username string

func NewUsername(raw string) (Username, error) {
	u := strings.TrimSpace(raw)
	if u == "" {
		return "", ErrUsernameInvalid
	}
	return Username(u), nil
}

func (u Username) String() string { return string(u) }

// Tag is a free-form article label.
type Tag string

func NewTag(raw string) (Tag, error) {
	t := strings.TrimSpace(raw)
	if t == "" {
		return "", ErrTagInvalid
	}
	return Tag(t), nil
}

func (t Tag) String() string { return string(t) }

// Password is a raw (not yet hashed) password.
type Password string

const minPasswordLen = 8

func NewPassword(raw string) (Password, error) {
	if len(raw) < minPasswordLen {
		return "", ErrPasswordTooShort
	}
	return Password(raw), nil
}

const (
	DefaultLimit  = Limit(20)
	MaxLimit      = 100
	DefaultOffset = Offset(0)
)

// Limit bounds the page size of list queries. Out-of-range input fails
// construction and callers fall back to DefaultLimit instead of
// rejecting the request.
type Limit int

func NewLimit(n int) (Limit, bool) {
	if n < 1 || n > MaxLimit {
		return DefaultLimit, false
	}
	return Limit(n), true
}

// Offset is the number of rows to skip in list queries. Negative input
// fails construction and callers fall back to DefaultOffset.
type Offset int

func NewOffset(n int) (Offset, bool) {
	if n < 0 {
		return DefaultOffset, false
	}
	return Offset(n), true
}
