package bakery

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// PromoCode entitles a cart to a percentage discount on its subtotal.
type PromoCode struct {
	Code    string
	Percent int
}

// Promos is the closed set of codes the application accepts.
var Promos = []PromoCode{
	{Code: "SWEET10", Percent: 10},
	{Code: "BAKER20", Percent: 20},
	{Code: "TREAT15", Percent: 15},
}

// InvalidPromo is a code the application must reject.
const InvalidPromo = "STALEBREAD"

// LookupPromo finds a code the way the application does: trimmed and
// case-insensitive.
func LookupPromo(code string) (PromoCode, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	return lo.Find(Promos, func(p PromoCode) bool { return p.Code == code })
}

// PromoOutcome is the expected result of one apply attempt.
type PromoOutcome int

const (
	PromoApplied PromoOutcome = iota
	PromoEmpty
	PromoAlreadyApplied
	PromoUnknown
)

// Message returns the application copy for the outcome.
func (o PromoOutcome) Message(p PromoCode) string {
	switch o {
	case PromoApplied:
		return fmt.Sprintf("Promo code applied! %s discount", PromoPercentCopy(p.Percent))
	case PromoEmpty:
		return "Please " + CopyEnterPromo
	case PromoAlreadyApplied:
		return "A promo code has " + CopyAlreadyApplied
	default:
		return CopyInvalid + " promo code"
	}
}
