//go:build acceptance
// +build acceptance

package acceptance

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/networkteam/bakery-e2e/bakery"
	"github.com/networkteam/bakery-e2e/session"
)

// DashboardPage provides helper methods for interacting with the bakery
// dashboard. It implements the Page Object pattern for cleaner test code.
type DashboardPage struct {
	s *session.Session
	t *testing.T
}

// NewDashboardPage expects the session to be on the dashboard already.
func NewDashboardPage(t *testing.T, s *session.Session) *DashboardPage {
	t.Helper()

	_, err := s.WaitForVisible(bakery.DashboardHeader)
	require.NoError(t, err, "dashboard did not load")

	return &DashboardPage{s: s, t: t}
}

func (dp *DashboardPage) click(id string) {
	dp.t.Helper()

	el, err := dp.s.FindClickable(id)
	require.NoError(dp.t, err)
	require.NoError(dp.t, el.Click(), "failed to click %s", id)
}

func (dp *DashboardPage) fill(id, value string) {
	dp.t.Helper()

	el, err := dp.s.FindClickable(id)
	require.NoError(dp.t, err)
	require.NoError(dp.t, el.Fill(value), "failed to fill %s", id)
}

func (dp *DashboardPage) text(id string) string {
	dp.t.Helper()

	el, err := dp.s.FindPresent(id)
	require.NoError(dp.t, err)
	text, err := el.Text()
	require.NoError(dp.t, err)
	return text
}

// QuickAdd adds one unit of the menu item via its row button.
func (dp *DashboardPage) QuickAdd(ref int) {
	dp.t.Helper()
	dp.click(bakery.QuickAddID(ref))
}

// AddWithQuantity selects the item in the combo, types qty and adds it.
func (dp *DashboardPage) AddWithQuantity(ref, qty int) {
	dp.t.Helper()

	sel, err := dp.s.FindClickable(bakery.ComboItemSelect)
	require.NoError(dp.t, err)
	require.NoError(dp.t, sel.SelectByValue(strconv.Itoa(ref)))

	dp.fill(bakery.QuantityInput, strconv.Itoa(qty))
	dp.click(bakery.AddToCartButton)
}

// Quantity returns the value of the quantity input.
func (dp *DashboardPage) Quantity() string {
	dp.t.Helper()

	el, err := dp.s.FindPresent(bakery.QuantityInput)
	require.NoError(dp.t, err)
	value, err := el.Value()
	require.NoError(dp.t, err)
	return value
}

func (dp *DashboardPage) SetQuantity(qty int) {
	dp.t.Helper()
	dp.fill(bakery.QuantityInput, strconv.Itoa(qty))
}

func (dp *DashboardPage) IncrementQuantity() {
	dp.t.Helper()
	dp.click(bakery.QuantityIncrement)
}

func (dp *DashboardPage) DecrementQuantity() {
	dp.t.Helper()
	dp.click(bakery.QuantityDecrement)
}

// WaitForCartCount waits for the cart header to show exactly label.
func (dp *DashboardPage) WaitForCartCount(label string) {
	dp.t.Helper()

	_, err := dp.s.WaitForTextEquals(bakery.CartCount, label)
	require.NoError(dp.t, err)
}

// RemoveLine removes the n-th cart row.
func (dp *DashboardPage) RemoveLine(n int) {
	dp.t.Helper()
	dp.click(bakery.RemoveItemID(n))
}

func (dp *DashboardPage) ClearCart() {
	dp.t.Helper()
	dp.click(bakery.ClearCartButton)
}

// CartLines returns the number of rows in the cart table.
func (dp *DashboardPage) CartLines() int {
	dp.t.Helper()

	n, err := dp.s.Count(bakery.CartItemPrefix)
	require.NoError(dp.t, err)
	return n
}

// RequireTotals waits for the summary to show the expected amounts.
func (dp *DashboardPage) RequireTotals(cart *bakery.CartExpectation) {
	dp.t.Helper()

	for id, want := range map[string]bakery.Money{
		bakery.Subtotal:   cart.Subtotal(),
		bakery.TaxAmount:  cart.Tax(),
		bakery.TotalPrice: cart.Total(),
	} {
		_, err := dp.s.WaitForTextEquals(id, want.String())
		require.NoError(dp.t, err, "unexpected %s", id)
	}
}

// ApplyPromo types code into the promo field, applies it and returns the
// promo message.
func (dp *DashboardPage) ApplyPromo(code string) string {
	dp.t.Helper()

	dp.fill(bakery.PromoCodeInput, code)
	dp.click(bakery.ApplyPromoButton)

	_, err := dp.s.WaitForVisible(bakery.PromoMessage)
	require.NoError(dp.t, err, "promo message not shown")
	return dp.text(bakery.PromoMessage)
}

// Search types query into the search field.
func (dp *DashboardPage) Search(query string) {
	dp.t.Helper()
	dp.fill(bakery.SearchInput, query)
}

func (dp *DashboardPage) ClearSearch() {
	dp.t.Helper()
	dp.click(bakery.SearchClearButton)
}

func (dp *DashboardPage) Filter(c bakery.Category) {
	dp.t.Helper()
	dp.click(bakery.FilterID(c))
}

// RequireVisibleRefs waits until exactly the given menu rows are shown and
// all others carry the hidden marker.
func (dp *DashboardPage) RequireVisibleRefs(refs []int) {
	dp.t.Helper()

	visible := make(map[int]bool, len(refs))
	for _, ref := range refs {
		visible[ref] = true
	}
	for _, ref := range bakery.AllRefs() {
		err := dp.s.WaitForClass(bakery.MenuItemID(ref), "hidden", !visible[ref])
		require.NoError(dp.t, err, "menu row %d visible=%t", ref, visible[ref])
	}
}

// Checkout submits the cart and returns the order number text of the
// confirmation modal.
func (dp *DashboardPage) Checkout() string {
	dp.t.Helper()

	dp.click(bakery.CheckoutButton)
	_, err := dp.s.WaitForVisible(bakery.CheckoutModal)
	require.NoError(dp.t, err, "checkout modal not shown")

	text, err := dp.s.WaitForText(bakery.OrderNumber, bakery.CopyOrderPrefix)
	require.NoError(dp.t, err)
	return text
}

func (dp *DashboardPage) CloseCheckout() {
	dp.t.Helper()

	dp.click(bakery.CloseCheckoutButton)
	require.NoError(dp.t, dp.s.WaitForHidden(bakery.CheckoutModal))
}

func (dp *DashboardPage) openFromProfileMenu(buttonID, modalID string) {
	dp.t.Helper()

	if !dp.s.IsVisible(bakery.ProfileMenu) {
		dp.click(bakery.ProfileButton)
	}
	dp.click(buttonID)

	_, err := dp.s.WaitForVisible(modalID)
	require.NoError(dp.t, err, "%s not shown", modalID)
}

func (dp *DashboardPage) OpenOrderHistory() {
	dp.t.Helper()
	dp.openFromProfileMenu(bakery.OrderHistoryBtn, bakery.OrderHistoryModal)
}

func (dp *DashboardPage) CloseOrderHistory() {
	dp.t.Helper()

	dp.click(bakery.CloseHistoryButton)
	require.NoError(dp.t, dp.s.WaitForHidden(bakery.OrderHistoryModal))
}

// HistoryEntries returns the number of orders the history modal lists.
func (dp *DashboardPage) HistoryEntries() int {
	dp.t.Helper()

	n, err := dp.s.Count(bakery.HistoryOrderPrefix)
	require.NoError(dp.t, err)
	return n
}

func (dp *DashboardPage) OpenSettings() {
	dp.t.Helper()
	dp.openFromProfileMenu(bakery.SettingsButton, bakery.SettingsModal)
}

// SaveDisplayName enters name in the settings modal and saves.
func (dp *DashboardPage) SaveDisplayName(name string) {
	dp.t.Helper()

	dp.fill(bakery.DisplayNameInput, name)
	dp.click(bakery.SaveSettingsButton)
}

func (dp *DashboardPage) CloseSettings() {
	dp.t.Helper()

	dp.click(bakery.CloseSettingsButton)
	require.NoError(dp.t, dp.s.WaitForHidden(bakery.SettingsModal))
}

// DisplayName returns the greeting in the header.
func (dp *DashboardPage) DisplayName() string {
	dp.t.Helper()
	return dp.text(bakery.DisplayName)
}

// Notification waits for the toast to contain substr and returns its text.
func (dp *DashboardPage) Notification(substr string) string {
	dp.t.Helper()

	text, err := dp.s.WaitForText(bakery.NotificationText, substr)
	require.NoError(dp.t, err)
	return text
}
