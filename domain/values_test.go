package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skinnydoo/conduit/domain"
)

func TestSlugRoundTrip(t *testing.T) {
	s := domain.NewSlug()
	assert.False(t, s.IsZero())

	parsed, err := domain.ParseSlug(s.String())
	require.NoError(t, err)
	assert.Equal(t, s, parsed)
}

func TestParseSlugInvalid(t *testing.T) {
	for _, raw := range []string{"", "how-to-train-your-dragon", "123", "not-a-uuid-at-all"} {
		_, err := domain.ParseSlug(raw)
		assert.ErrorIs(t, err, domain.ErrSlugInvalid, "raw=%q", raw)
	}
}

func TestNewEmail(t *testing.T) {
	e, err := domain.NewEmail("  Jake@Jake.JAKE ")
	require.NoError(t, err)
	assert.Equal(t, "jake@jake.jake", e.String())

	for _, raw := range []string{"", "no-at-sign", "@jake.jake", "jake@"} {
		_, err := domain.NewEmail(raw)
		assert.ErrorIs(t, err, domain.ErrEmailInvalid, "raw=%q", raw)
	}
}

func TestNewUsername(t *testing.T) {
	u, err := domain.NewUsername(" jake ")
	require.NoError(t, err)
	assert.Equal(t, "jake", u.String())

	_, err = domain.NewUsername("   ")
	assert.ErrorIs(t, err, domain.ErrUsernameInvalid)
}

func TestNewTag(t *testing.T) {
	tag, err := domain.NewTag(" dragons ")
	require.NoError(t, err)
	assert.Equal(t, "dragons", tag.String())

	_, err = domain.NewTag("")
	assert.ErrorIs(t, err, domain.ErrTagInvalid)
}

func TestNewPassword(t *testing.T) {
	_, err := domain.NewPassword("short")
	assert.ErrorIs(t, err, domain.ErrPasswordTooShort)

	_, err = domain.NewPassword("longenough")
	assert.NoError(t, err)
}

func TestNewLimit(t *testing.T) {
	tests := []struct {
		in   int
		want domain.Limit
		ok   bool
	}{
		{1, 1, true},
		{50, 50, true},
		{100, 100, true},
		{0, domain.DefaultLimit, false},
		{-3, domain.DefaultLimit, false},
		{101, domain.DefaultLimit, false},
	}
	for _, tt := range tests {
		got, ok := domain.NewLimit(tt.in)
		assert.Equal(t, tt.want, got, "in=%d", tt.in)
		assert.Equal(t, tt.ok, ok, "in=%d", tt.in)
	}
}

func TestNewOffset(t *testing.T) {
	got, ok := domain.NewOffset(40)
	assert.True(t, ok)
	assert.Equal(t, domain.Offset(40), got)

	got, ok = domain.NewOffset(-1)
	assert.False(t, ok)
	assert.Equal(t, domain.DefaultOffset, got)
}
