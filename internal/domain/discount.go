package domain

import (
	"fmt"
	"math"
)

// AutoDiscount fills in the discount badge from the two prices when the
// admin left it blank. "₹1,299" against "₹2,990" yields "57% OFF".
func AutoDiscount(price, originalPrice string) string {
	p, okP := ParseDisplayPrice(price)
	o, okO := ParseDisplayPrice(originalPrice)
	if !okP || !okO || o.Amount <= p.Amount || o.Amount == 0 {
		return ""
	}
	pct := math.Round(float64(o.Amount-p.Amount) / float64(o.Amount) * 100)
	return fmt.Sprintf("%d%% OFF", int(pct))
}
