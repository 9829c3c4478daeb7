//go:build acceptance
// +build acceptance

package acceptance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/networkteam/bakery-e2e/bakery"
)

func TestDashboard_RequiresLogin(t *testing.T) {
	sc := setupScenario(t)

	sc.Open(bakery.PageDashboard)

	sc.RequirePage(bakery.PageLogin)
}

func TestDashboard_AfterLogin(t *testing.T) {
	sc, dashboard, creds := loggedIn(t)

	for _, id := range []string{bakery.DashboardHeader, bakery.MenuSection, bakery.CartSection} {
		assert.True(t, sc.S.IsVisible(id), "%s should be visible", id)
	}
	assert.Equal(t, bakery.CopyGreeting+creds.Username, dashboard.DisplayName())
	dashboard.RequireVisibleRefs(bakery.AllRefs())
}

func TestDashboard_ProfileMenu(t *testing.T) {
	sc, _, _ := loggedIn(t)

	assert.False(t, sc.S.IsVisible(bakery.ProfileMenu))

	sc.Click(bakery.ProfileButton)
	sc.RequireVisible(bakery.ProfileMenu)

	// A click anywhere else closes it.
	sc.Click(bakery.CartCount)
	sc.RequireHidden(bakery.ProfileMenu)
}
