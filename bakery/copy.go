package bakery

import "fmt"

// Substrings of user-facing copy the suite asserts on. A wording change in the
// application is a single update here.
const (
	CopyRequired       = "required"
	CopyMinLength3     = "at least 3"
	CopyMinLength6     = "at least 6"
	CopyValidEmail     = "valid email"
	CopyNoMatch        = "do not match"
	CopyTerms          = "Terms"
	CopySuccessful     = "successful"
	CopyInvalid        = "Invalid"
	CopyResetLink      = "reset link"
	CopyAlreadyApplied = "already been applied"
	CopyOrderPrefix    = "ORD-"
	CopyEnterPromo     = "enter a promo code"
	CopyNoResults      = "No items"
	CopyNoOrders       = "No previous orders"
	CopyDisplayNameMin = "at least 2"
	CopyGreeting       = "Hi, "
)

// PromoPercentCopy is the percentage fragment of a successful promo message,
// e.g. "10%".
func PromoPercentCopy(percent int) string {
	return fmt.Sprintf("%d%%", percent)
}

// CountLabel renders an item count the way the cart header shows it.
func CountLabel(n int) string {
	if n == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", n)
}
