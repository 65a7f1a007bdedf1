package domain

import (
	"strconv"
	"strings"
)

// Money is an exact amount in integer minor units plus a currency code.
// Display prices in the catalog remain strings for compatibility with the
// seed documents; Money is the normalized form used for comparison and
// arithmetic.
type Money struct {
	Amount   int64  `json:"amount"` // minor units (paise, cents)
	Currency string `json:"currency"`
}

// DefaultCurrency applies when a display price carries no recognizable
// currency symbol.
const DefaultCurrency = "INR"

var currencySymbols = map[string]string{
	"₹": "INR",
	"$": "USD",
	"€": "EUR",
	"£": "GBP",
}

// ParseDisplayPrice normalizes a display string such as "₹1,299" or "1299"
// into Money. Every non-digit rune is stripped; the digits are read as major
// units. ok is false when no digits remain, e.g. for "N/A" or "".
func ParseDisplayPrice(s string) (Money, bool) {
	currency := DefaultCurrency
	for sym, code := range currencySymbols {
		if strings.Contains(s, sym) {
			currency = code
			break
		}
	}

	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return Money{}, false
	}
	major, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		// more digits than int64 holds
		return Money{}, false
	}
	return Money{Amount: major * 100, Currency: currency}, true
}

// LessThan compares amounts only; the catalog is single-currency in
// practice.
func (m Money) LessThan(o Money) bool {
	return m.Amount < o.Amount
}

// Format renders the amount as a display string with a currency symbol and
// comma thousands separators, e.g. "₹1,299".
func (m Money) Format() string {
	sym := "₹"
	for s, code := range currencySymbols {
		if code == m.Currency {
			sym = s
			break
		}
	}

	major := m.Amount / 100
	neg := major < 0
	if neg {
		major = -major
	}

	s := strconv.FormatInt(major, 10)
	if len(s) > 3 {
		var b strings.Builder
		b.Grow(len(s) + len(s)/3)
		rem := len(s) % 3
		if rem == 0 {
			rem = 3
		}
		b.WriteString(s[:rem])
		for i := rem; i < len(s); i += 3 {
			b.WriteByte(',')
			b.WriteString(s[i : i+3])
		}
		s = b.String()
	}

	if neg {
		return "-" + sym + s
	}
	return sym + s
}
