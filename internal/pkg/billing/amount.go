package billing

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePriceToPaise converts a decimal rupee price (as stored on the plan,
// e.g. "999" or "499.50") into paise.
func ParsePriceToPaise(price string) (int64, error) {
	p := strings.TrimSpace(price)
	if p == "" {
		return 0, nil
	}

	rupees := p
	fraction := ""
	if i := strings.IndexByte(p, '.'); i >= 0 {
		rupees = p[:i]
		fraction = p[i+1:]
	}
	if rupees == "" {
		rupees = "0"
	}
	if len(fraction) > 2 {
		return 0, fmt.Errorf("invalid price %q: more than two fractional digits", price)
	}
	for len(fraction) < 2 {
		fraction += "0"
	}

	r, err := strconv.ParseInt(rupees, 10, 64)
	if err != nil || r < 0 {
		return 0, fmt.Errorf("invalid price %q", price)
	}
	f, err := strconv.ParseInt(fraction, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", price)
	}
	return r*100 + f, nil
}

// ApplyDiscount reduces an amount in paise by a percentage, rounding half-up
// to the paisa. Discounts apply multiplicatively and never stack.
func ApplyDiscount(amountPaise int64, discountPercent int) int64 {
	if discountPercent <= 0 {
		return amountPaise
	}
	if discountPercent >= 100 {
		return 0
	}
	return (amountPaise*int64(100-discountPercent) + 50) / 100
}
