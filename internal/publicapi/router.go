// Package publicapi exposes the storefront's read-only endpoints: product
// listing with the filter/sort pipeline, the featured selection and blogs.
package publicapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/insiderdeals/storefront/internal/app"
	"github.com/insiderdeals/storefront/internal/webserver"
)

const appContextKey = "appctx"

func withApp(a app.AppContext, h echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Set(appContextKey, a)
		return h(c)
	}
}

func GetApp(c echo.Context) app.AppContext {
	return c.Get(appContextKey).(app.AppContext)
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"code": 0,
		"data": data,
	})
}

func fail(c echo.Context, status int, code string, msg string) error {
	return c.JSON(status, map[string]interface{}{
		"code":    code,
		"message": msg,
	})
}

// InitRouter registers the public routes.
func InitRouter(ws *webserver.WebServer, a app.AppContext) {
	wrap := func(h echo.HandlerFunc) echo.HandlerFunc { return withApp(a, h) }

	ws.PubGET("/products", wrap(listProducts))
	ws.PubGET("/products/featured", wrap(featuredProducts))
	ws.PubGET("/products/categories", wrap(listCategories))
	ws.PubGET("/blogs", wrap(listBlogs))
	ws.PubGET("/blogs/:id", wrap(getBlog))
}
