package domain

import "github.com/pkg/errors"

// Product is a catalog entry. JSON field names match the static seed
// document, so persisted catalogs and seed files share one shape.
type Product struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Price         string `json:"price"` // display string, e.g. "₹1,299"
	OriginalPrice string `json:"originalPrice,omitempty"`
	Discount      string `json:"discount,omitempty"`
	Image         string `json:"image"` // relative path, URL, or data URI
	AffiliateLink string `json:"affiliateLink"`
	Category      string `json:"category"`
	Featured      bool   `json:"featured,omitempty"`
}

// ErrInvalidProduct marks a validation failure; no partial save happens.
var ErrInvalidProduct = errors.New("product: name, price and category are required")

// Validate enforces the persistence invariant: name, price and category are
// mandatory.
func (p Product) Validate() error {
	if p.Name == "" || p.Price == "" || p.Category == "" {
		return ErrInvalidProduct
	}
	return nil
}

// PriceValue parses the display price. ok is false when the string carries
// no digits at all.
func (p Product) PriceValue() (Money, bool) {
	return ParseDisplayPrice(p.Price)
}

// ReplaceByID returns a new slice with the product whose ID matches np.ID
// replaced by np. replaced reports whether a match was found. The input
// slice is never mutated.
func ReplaceByID(products []Product, np Product) (out []Product, replaced bool) {
	out = make([]Product, 0, len(products))
	for _, p := range products {
		if p.ID == np.ID {
			out = append(out, np)
			replaced = true
			continue
		}
		out = append(out, p)
	}
	return out, replaced
}

// RemoveByID returns a new slice without the product of the given ID.
func RemoveByID(products []Product, id int64) (out []Product, removed bool) {
	out = make([]Product, 0, len(products))
	for _, p := range products {
		if p.ID == id {
			removed = true
			continue
		}
		out = append(out, p)
	}
	return out, removed
}

// Featured returns up to limit featured products, in catalog order.
// limit <= 0 means no limit.
func Featured(products []Product, limit int) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if !p.Featured {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
