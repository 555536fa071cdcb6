package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUsername(t *testing.T) {
	valid := []string{"reader", "Some.User", "a@b", "user+tag", "under_score", "with-dash", "42"}
	for _, s := range valid {
		assert.NoError(t, Username(s), s)
	}

	assert.ErrorIs(t, Username("me"), ErrReservedUsername)
	assert.ErrorIs(t, Username("has space"), ErrInvalidUsername)
	assert.ErrorIs(t, Username("semi;colon"), ErrInvalidUsername)
	assert.ErrorIs(t, Username(""), ErrInvalidUsername)
	assert.ErrorIs(t, Username(42), ErrValueNotAString)
}

func TestUsernameIsCaseSensitiveAboutReserved(t *testing.T) {
	// Only the exact lowercase literal is reserved.
	assert.NoError(t, Username("Me"))
	assert.NoError(t, Username("ME"))
}

func TestSlug(t *testing.T) {
	assert.NoError(t, Slug("science-fiction"))
	assert.NoError(t, Slug("tv_shows"))
	assert.NoError(t, Slug(""))

	assert.ErrorIs(t, Slug("no spaces"), ErrInvalidSlug)
	assert.ErrorIs(t, Slug("ünïcode"), ErrInvalidSlug)
	assert.ErrorIs(t, Slug(nil), ErrValueNotAString)
}

func TestYear(t *testing.T) {
	now := time.Now().Year()

	assert.NoError(t, Year(now))
	assert.NoError(t, Year(now-100))
	assert.NoError(t, Year(-500))

	assert.ErrorIs(t, Year(now+1), ErrYearInFuture)
	assert.ErrorIs(t, Year("1999"), ErrYearNotAnInteger)
}

func TestYearAcceptsNilPointer(t *testing.T) {
	var p *int
	assert.NoError(t, Year(p))

	future := time.Now().Year() + 10
	assert.ErrorIs(t, Year(&future), ErrYearInFuture)
}
