package bakery

import (
	"fmt"
	"strconv"
	"strings"
)

// Money is a fixed-point amount in cents.
type Money int64

// Cents builds a Money value from whole dollars and cents.
func Cents(dollars, cents int64) Money {
	return Money(dollars*100 + cents)
}

// String renders the amount with two decimals and no currency sign, matching
// the application's price cells.
func (m Money) String() string {
	sign := ""
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("%s%d.%02d", sign, int64(m)/100, int64(m)%100)
}

// ParseMoney parses "7.15", "$7.15", "-0.50" or "7" into cents.
func ParseMoney(s string) (Money, error) {
	in := s
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" {
		return 0, fmt.Errorf("parsing money %q: missing whole part", in)
	}
	if !isDigits(whole) || hasFrac && !isDigits(frac) {
		return 0, fmt.Errorf("parsing money %q: unexpected character", in)
	}
	d, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing money %q: %w", in, err)
	}
	var c int64
	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return 0, fmt.Errorf("parsing money %q: expected 1 or 2 decimals", in)
		}
		if len(frac) == 1 {
			frac += "0"
		}
		c, _ = strconv.ParseInt(frac, 10, 64)
	}
	m := Money(d*100 + c)
	if neg {
		m = -m
	}
	return m, nil
}

func isDigits(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) < 0
}

// divRound divides n by d rounding half away from zero. d must be positive.
func divRound(n, d int64) int64 {
	if n < 0 {
		return -divRound(-n, d)
	}
	return (2*n + d) / (2 * d)
}
