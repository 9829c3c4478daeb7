package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/bakery-e2e/bakery"
)

func TestNewCredentials_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		c := NewCredentials()
		require.False(t, seen[c.Username], "duplicate username %q", c.Username)
		seen[c.Username] = true
	}
}

func TestNewCredentials_PassValidation(t *testing.T) {
	c := NewCredentials()

	assert.GreaterOrEqual(t, len(c.Username), bakery.MinUsernameLength)
	assert.True(t, bakery.IsValidEmail(c.Email), c.Email)
	assert.Empty(t, c.Form().ExpectedErrors())
}

func TestKnown_PassesValidation(t *testing.T) {
	assert.Empty(t, Known.Form().ExpectedErrors())
}
