// Package adminapi exposes the admin panel's REST surface: the auth gate,
// product catalog CRUD, snapshot export and image uploads.
package adminapi

import (
	"github.com/labstack/echo/v4"

	"github.com/insiderdeals/storefront/internal/app"
	"github.com/insiderdeals/storefront/internal/webserver"
)

// InitRouter registers all admin routes. Login is the only unguarded route;
// everything else requires a valid session token.
func InitRouter(ws *webserver.WebServer, a app.AppContext) {
	wrap := func(h echo.HandlerFunc) echo.HandlerFunc { return withApp(a, h) }

	ws.OpenPOST("/login", wrap(login))

	ws.ApiPOST("/logout", wrap(logout))
	ws.ApiGET("/session", wrap(session))

	ws.ApiGET("/products", wrap(listProducts))
	ws.ApiGET("/products/export", wrap(exportProducts))
	ws.ApiPOST("/products/reset", wrap(resetProducts))
	ws.ApiGET("/products/:id", wrap(getProduct))
	ws.ApiPOST("/products", wrap(createProduct))
	ws.ApiPUT("/products/:id", wrap(updateProduct))
	ws.ApiDELETE("/products/:id", wrap(deleteProduct))

	ws.ApiPOST("/uploads/images", wrap(uploadImage))
	ws.ApiGET("/uploads/images/:key", wrap(getUploadedImage))
	ws.ApiDELETE("/uploads/images/:key", wrap(deleteUploadedImage))
}
