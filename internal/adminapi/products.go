package adminapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/insiderdeals/storefront/internal/catalog"
	"github.com/insiderdeals/storefront/internal/domain"
)

type productPayload struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Price         string `json:"price"`
	OriginalPrice string `json:"originalPrice"`
	Discount      string `json:"discount"`
	Image         string `json:"image"`
	AffiliateLink string `json:"affiliateLink"`
	Category      string `json:"category"`
	Featured      bool   `json:"featured"`
}

func (p productPayload) toProduct() domain.Product {
	out := domain.Product{
		Name:          strings.TrimSpace(p.Name),
		Description:   p.Description,
		Price:         strings.TrimSpace(p.Price),
		OriginalPrice: strings.TrimSpace(p.OriginalPrice),
		Discount:      strings.TrimSpace(p.Discount),
		Image:         strings.TrimSpace(p.Image),
		AffiliateLink: strings.TrimSpace(p.AffiliateLink),
		Category:      strings.TrimSpace(p.Category),
		Featured:      p.Featured,
	}
	if out.Discount == "" {
		out.Discount = domain.AutoDiscount(out.Price, out.OriginalPrice)
	}
	return out
}

// allowed sort keys for the admin listing
var allowedSort = map[string]bool{
	catalog.SortByName:     true,
	catalog.SortByPrice:    true,
	catalog.SortByCategory: true,
}

func listProducts(c echo.Context) error {
	page, pageSize := parsePagination(c)

	q := catalog.DefaultQuery()
	q.Search = strings.TrimSpace(c.QueryParam("q"))
	if cat := strings.TrimSpace(c.QueryParam("category")); cat != "" {
		q.Category = cat
	}
	if sortKey := strings.TrimSpace(c.QueryParam("sort")); allowedSort[sortKey] {
		q.Sort = sortKey
	}

	rows := catalog.Apply(GetApp(c).Catalog().Load(), q)
	total := int64(len(rows))

	start := (page - 1) * pageSize
	if start > len(rows) {
		start = len(rows)
	}
	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return paged(c, rows[start:end], total, page, pageSize)
}

func getProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	for _, p := range GetApp(c).Catalog().Load() {
		if p.ID == id {
			return ok(c, p)
		}
	}
	return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
}

func createProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}

	created, err := GetApp(c).Catalog().Add(payload.toProduct())
	if errors.Is(err, domain.ErrInvalidProduct) {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Name, price and category are required", nil)
	} else if err != nil {
		return fail(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to save product", err.Error())
	}
	return ok(c, created)
}

func updateProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}

	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}

	p := payload.toProduct()
	p.ID = id

	err = GetApp(c).Catalog().Update(p)
	switch {
	case errors.Is(err, domain.ErrInvalidProduct):
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Name, price and category are required", nil)
	case errors.Is(err, catalog.ErrNotFound):
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	case err != nil:
		return fail(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to update product", err.Error())
	}
	return ok(c, p)
}

func deleteProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	err = GetApp(c).Catalog().Delete(id)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	case err != nil:
		return fail(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to delete product", err.Error())
	}
	return ok(c, map[string]interface{}{"id": id})
}

// exportProducts streams an indented products.json snapshot for manual
// backup; it has no effect on persisted state.
func exportProducts(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="products.json"`)
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return GetApp(c).Catalog().Export(c.Response())
}

// resetProducts drops the persisted catalog so the next load re-reads the
// seed document.
func resetProducts(c echo.Context) error {
	if err := GetApp(c).Catalog().Reset(); err != nil {
		return fail(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to reset catalog", err.Error())
	}
	return ok(c, map[string]interface{}{
		"reset_at": time.Now(),
		"products": len(GetApp(c).Catalog().Load()),
	})
}
