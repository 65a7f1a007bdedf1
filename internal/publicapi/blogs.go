package publicapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

func listBlogs(c echo.Context) error {
	return ok(c, GetApp(c).Blogs().Load())
}

func getBlog(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid blog ID")
	}
	post, err := GetApp(c).Blogs().Get(id)
	if err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Blog post not found")
	}
	return ok(c, post)
}
