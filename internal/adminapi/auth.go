package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/insiderdeals/storefront/internal/auth"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func login(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse login request", err.Error())
	}
	payload.Username = strings.TrimSpace(payload.Username)
	if payload.Username == "" || payload.Password == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Username and password are required", nil)
	}

	token, err := GetApp(c).Auth().Authenticate(payload.Username, payload.Password)
	switch {
	case errors.Is(err, auth.ErrNotConfigured):
		return fail(c, http.StatusInternalServerError, "CONFIG_ERROR", "Admin credentials not configured", nil)
	case errors.Is(err, auth.ErrTooManyAttempts):
		return fail(c, http.StatusTooManyRequests, "TOO_MANY_ATTEMPTS", "Too many failed attempts, try again later", nil)
	case err != nil:
		// generic on purpose, never reveal which field was wrong
		return fail(c, http.StatusUnauthorized, "AUTH_FAILED", "Invalid username or password", nil)
	}

	return ok(c, map[string]interface{}{
		"token": token,
	})
}

func logout(c echo.Context) error {
	GetApp(c).Auth().Logout()
	return ok(c, map[string]interface{}{"logged_out": true})
}

// session reports on the current session; reaching this handler at all means
// the token guard accepted the request.
func session(c echo.Context) error {
	return ok(c, map[string]interface{}{
		"valid": GetApp(c).Auth().Valid(),
	})
}
