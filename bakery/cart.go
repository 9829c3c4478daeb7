package bakery

import (
	"strings"

	"github.com/samber/lo"
)

// TaxPercent is the sales tax on the subtotal.
const TaxPercent = 10

// MaxQuantity bounds the quantity selector.
const MaxQuantity = 99

// CartLine is one row of the expected cart.
type CartLine struct {
	Item MenuItem
	Qty  int
}

// Cost is the line total.
func (l CartLine) Cost() Money {
	return l.Item.Price * Money(l.Qty)
}

// CartExpectation predicts what the cart section displays. Adding an item
// already in the cart grows its row, like the application does.
type CartExpectation struct {
	lines []CartLine
	promo *PromoCode
}

// Add adds qty of item.
func (c *CartExpectation) Add(item MenuItem, qty int) {
	for i := range c.lines {
		if c.lines[i].Item.Ref == item.Ref {
			c.lines[i].Qty += qty
			return
		}
	}
	c.lines = append(c.lines, CartLine{Item: item, Qty: qty})
}

// RemoveLine drops the n-th row, counting from 1. Out of range is a no-op.
// An applied promo stays applied, only Clear and checkout reset it.
func (c *CartExpectation) RemoveLine(n int) {
	if n < 1 || n > len(c.lines) {
		return
	}
	c.lines = append(c.lines[:n-1], c.lines[n:]...)
}

// Clear empties the cart and forgets the promo.
func (c *CartExpectation) Clear() {
	c.lines = nil
	c.promo = nil
}

// ApplyPromo predicts one apply attempt. Only the first valid code sticks.
func (c *CartExpectation) ApplyPromo(code string) (PromoCode, PromoOutcome) {
	if strings.TrimSpace(code) == "" {
		return PromoCode{}, PromoEmpty
	}
	if c.promo != nil {
		return *c.promo, PromoAlreadyApplied
	}
	p, ok := LookupPromo(code)
	if !ok {
		return PromoCode{}, PromoUnknown
	}
	c.promo = &p
	return p, PromoApplied
}

// Lines returns the rows in display order.
func (c *CartExpectation) Lines() []CartLine {
	return append([]CartLine(nil), c.lines...)
}

// Count is the number of units across all rows.
func (c *CartExpectation) Count() int {
	return lo.SumBy(c.lines, func(l CartLine) int { return l.Qty })
}

// CountLabel is the cart header text.
func (c *CartExpectation) CountLabel() string {
	return CountLabel(c.Count())
}

// Empty reports whether the cart has no rows.
func (c *CartExpectation) Empty() bool {
	return len(c.lines) == 0
}

// Subtotal is the sum of line costs before discount and tax.
func (c *CartExpectation) Subtotal() Money {
	return lo.SumBy(c.lines, func(l CartLine) Money { return l.Cost() })
}

// Tax is the tax on the undiscounted subtotal, as the tax cell shows it.
func (c *CartExpectation) Tax() Money {
	return Money(divRound(int64(c.Subtotal())*TaxPercent, 100))
}

// Discount is the promo reduction of the subtotal.
func (c *CartExpectation) Discount() Money {
	if c.promo == nil {
		return 0
	}
	return Money(divRound(int64(c.Subtotal())*int64(c.promo.Percent), 100))
}

// Total is round2(subtotal x (1 - promo) x 1.10). Rounding happens once, on
// the exact product.
func (c *CartExpectation) Total() Money {
	percent := int64(0)
	if c.promo != nil {
		percent = int64(c.promo.Percent)
	}
	n := int64(c.Subtotal()) * (100 - percent) * (100 + TaxPercent)
	return Money(divRound(n, 100*100))
}
