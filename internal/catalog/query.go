package catalog

import "net/url"

// View modes for the product listing.
const (
	ViewGrid = "grid"
	ViewList = "list"
)

// Query is the listing state carried in URL query parameters. Parameters
// seed the state once on load; state changes re-encode to parameters with
// keys at their default value omitted.
type Query struct {
	Search   string
	Category string
	Sort     string
	View     string
}

func DefaultQuery() Query {
	return Query{Category: CategoryAll, Sort: SortByName, View: ViewGrid}
}

// ParseQuery decodes listing state from URL parameters, falling back to the
// defaults for missing or invalid values.
func ParseQuery(values url.Values) Query {
	q := DefaultQuery()
	q.Search = values.Get("search")
	if v := values.Get("category"); v != "" {
		q.Category = v
	}
	switch values.Get("sort") {
	case SortByPrice:
		q.Sort = SortByPrice
	case SortByCategory:
		q.Sort = SortByCategory
	}
	if values.Get("view") == ViewList {
		q.View = ViewList
	}
	return q
}

// Values encodes the state back to URL parameters, omitting keys that sit at
// their default value so default state yields a clean URL.
func (q Query) Values() url.Values {
	values := url.Values{}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.Category != "" && q.Category != CategoryAll {
		values.Set("category", q.Category)
	}
	if q.Sort != "" && q.Sort != SortByName {
		values.Set("sort", q.Sort)
	}
	if q.View != "" && q.View != ViewGrid {
		values.Set("view", q.View)
	}
	return values
}
