// Package webserver hosts the echo instance and the route groups the API
// packages register into.
package webserver

import (
	"context"
	"fmt"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/insiderdeals/storefront/config"
	"github.com/insiderdeals/storefront/internal/auth"
)

// WebServer wires the public /api group and the JWT-guarded /admin group.
type WebServer struct {
	cfg   *config.AppConfig
	root  *echo.Echo
	pub   *echo.Group
	admin *echo.Group
	open  *echo.Group
}

func New(cfg *config.AppConfig, authn *auth.Authenticator) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &WebServer{
		cfg:  cfg,
		root: e,
		pub:  e.Group("/api"),
		open: e.Group("/admin"),
	}

	// Admin routes sit behind the session-token guard; login itself is
	// registered on the open group.
	s.admin = e.Group("/admin", echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			if err := authn.VerifyToken(token); err != nil {
				return nil, err
			}
			return token, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "session expired or missing")
		},
	}))

	return s
}

// PubGET registers a public API route.
func (s *WebServer) PubGET(path string, h echo.HandlerFunc) {
	s.pub.GET(path, h)
}

// OpenPOST registers an unguarded admin route (login).
func (s *WebServer) OpenPOST(path string, h echo.HandlerFunc) {
	s.open.POST(path, h)
}

func (s *WebServer) ApiGET(path string, h echo.HandlerFunc)    { s.admin.GET(path, h) }
func (s *WebServer) ApiPOST(path string, h echo.HandlerFunc)   { s.admin.POST(path, h) }
func (s *WebServer) ApiPUT(path string, h echo.HandlerFunc)    { s.admin.PUT(path, h) }
func (s *WebServer) ApiDELETE(path string, h echo.HandlerFunc) { s.admin.DELETE(path, h) }

// Echo exposes the underlying instance for tests.
func (s *WebServer) Echo() *echo.Echo {
	return s.root
}

func (s *WebServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Web.Host, s.cfg.Web.Port)
	zap.L().Info("web server listening", zap.String("addr", addr))
	err := s.root.Start(addr)
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *WebServer) Shutdown(ctx context.Context) error {
	return s.root.Shutdown(ctx)
}
