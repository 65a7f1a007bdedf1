package publicapi

import (
	"github.com/labstack/echo/v4"

	"github.com/insiderdeals/storefront/internal/catalog"
)

// listProducts applies the search/category/sort pipeline from the query
// string and returns the filtered view plus counts, so clients can show
// "Showing N of M products".
func listProducts(c echo.Context) error {
	q := catalog.ParseQuery(c.QueryParams())
	all := GetApp(c).Catalog().Load()
	rows := catalog.Apply(all, q)

	return ok(c, map[string]interface{}{
		"products": rows,
		"total":    len(all),
		"shown":    len(rows),
		"query":    q.Values().Encode(),
	})
}

func featuredProducts(c echo.Context) error {
	return ok(c, GetApp(c).Featured().Items())
}

// listCategories returns the distinct categories with the "all" sentinel
// prepended, ready to render as filter buttons.
func listCategories(c echo.Context) error {
	cats := GetApp(c).Catalog().Categories()
	out := make([]string, 0, len(cats)+1)
	out = append(out, catalog.CategoryAll)
	out = append(out, cats...)
	return ok(c, out)
}
