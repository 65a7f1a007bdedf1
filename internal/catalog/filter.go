package catalog

import (
	"sort"
	"strings"

	"github.com/insiderdeals/storefront/internal/domain"
)

// Sort keys accepted by SortBy.
const (
	SortByName     = "name"
	SortByPrice    = "price"
	SortByCategory = "category"
)

// CategoryAll is the wildcard that bypasses the category filter.
const CategoryAll = "all"

// Filter returns the products whose name, description or category contains
// term, case-insensitively. An empty term is the identity. The input slice
// is never mutated.
func Filter(products []domain.Product, term string) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	if term == "" {
		return append(out, products...)
	}
	needle := strings.ToLower(term)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle) {
			out = append(out, p)
		}
	}
	return out
}

// FilterCategory keeps products of exactly the given category;
// CategoryAll (or empty) passes everything through.
func FilterCategory(products []domain.Product, category string) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	if category == "" || category == CategoryAll {
		return append(out, products...)
	}
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// SortBy returns a sorted copy of products. Sorting is stable, so applying
// the same key twice yields the same order. Unknown keys return the input
// order.
//
// Price ordering uses the normalized money value; a price that yields no
// digits at all sorts before every parsable price and unparsable prices keep
// their relative order.
func SortBy(products []domain.Product, key string) []domain.Product {
	out := append([]domain.Product(nil), products...)
	switch key {
	case SortByName:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	case SortByCategory:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Category) < strings.ToLower(out[j].Category)
		})
	case SortByPrice:
		sort.SliceStable(out, func(i, j int) bool {
			pi, oki := out[i].PriceValue()
			pj, okj := out[j].PriceValue()
			switch {
			case !oki && !okj:
				return false
			case !oki:
				return true
			case !okj:
				return false
			default:
				return pi.LessThan(pj)
			}
		})
	}
	return out
}

// Apply runs the full pipeline: search filter, category filter, sort. It is
// a pure function of its inputs and recomputing it is idempotent.
func Apply(products []domain.Product, q Query) []domain.Product {
	return SortBy(FilterCategory(Filter(products, q.Search), q.Category), q.Sort)
}
