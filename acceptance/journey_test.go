//go:build acceptance
// +build acceptance

package acceptance

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/bakery-e2e/actions"
	"github.com/networkteam/bakery-e2e/bakery"
)

// TestUserJourney walks one customer from registration to logout through
// search, both ways of filling the cart, a promo, checkout and the history.
func TestUserJourney(t *testing.T) {
	sc := setupScenario(t)

	_, err := actions.EstablishSession(sc.S)
	require.NoError(t, err)
	dashboard := NewDashboardPage(t, sc.S)

	dashboard.Search("cake")
	dashboard.RequireVisibleRefs(bakery.SearchRefs("cake"))
	dashboard.ClearSearch()
	dashboard.RequireVisibleRefs(bakery.AllRefs())

	cart := &bakery.CartExpectation{}
	for _, ref := range []int{1, 5} {
		dashboard.QuickAdd(ref)
		cart.Add(bakery.MustItem(ref), 1)
	}
	dashboard.WaitForCartCount(cart.CountLabel())

	require.NoError(t, sc.Find(bakery.ComboItemSelect).SelectByValue(strconv.Itoa(7)))
	dashboard.IncrementQuantity()
	require.Equal(t, "2", dashboard.Quantity())
	sc.Click(bakery.AddToCartButton)
	cart.Add(bakery.MustItem(7), 2)
	dashboard.WaitForCartCount(cart.CountLabel())

	promo, outcome := cart.ApplyPromo("SWEET10")
	require.Equal(t, bakery.PromoApplied, outcome)
	assert.Equal(t, outcome.Message(promo), dashboard.ApplyPromo(promo.Code))
	dashboard.RequireTotals(cart)

	orderNumber := bakery.OrderNumberPattern.FindString(dashboard.Checkout())
	require.NotEmpty(t, orderNumber)
	sc.RequireText(bakery.CheckoutMessage, cart.Total().String())
	dashboard.CloseCheckout()
	dashboard.WaitForCartCount(bakery.CountLabel(0))

	dashboard.OpenOrderHistory()
	require.NoError(t, sc.S.WaitForCount(bakery.HistoryOrderPrefix, 1))
	sc.RequireText(bakery.HistoryOrderID(1), orderNumber)
	dashboard.CloseOrderHistory()

	require.NoError(t, actions.Logout(sc.S))
	sc.Open(bakery.PageDashboard)
	sc.RequirePage(bakery.PageLogin)
}
