package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignUniqueSlug(t *testing.T) {
	taken := map[string]bool{}
	exists := func(candidate string) (bool, error) {
		return taken[candidate], nil
	}

	// First occupant of a name gets the plain slug.
	s, err := assignUniqueSlug("Gaming Laptop", exists)
	assert.NoError(t, err)
	assert.Equal(t, "gaming-laptop", s)
	taken[s] = true

	// Colliding names probe by appending "1" until free.
	s, err = assignUniqueSlug("Gaming Laptop", exists)
	assert.NoError(t, err)
	assert.Equal(t, "gaming-laptop1", s)
	taken[s] = true

	s, err = assignUniqueSlug("Gaming Laptop", exists)
	assert.NoError(t, err)
	assert.Equal(t, "gaming-laptop11", s)
	taken[s] = true

	// Every slug in a colliding sequence stays unique.
	seen := map[string]bool{}
	for range [10]struct{}{} {
		s, err := assignUniqueSlug("Phone", exists)
		assert.NoError(t, err)
		assert.False(t, seen[s], "slug %q assigned twice", s)
		seen[s] = true
		taken[s] = true
	}
}

func TestAssignUniqueSlugNormalizes(t *testing.T) {
	exists := func(string) (bool, error) { return false, nil }

	s, err := assignUniqueSlug("  Çay & Kofe!  ", exists)
	assert.NoError(t, err)
	assert.Equal(t, "cay-and-kofe", s)
}
