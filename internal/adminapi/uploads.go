package adminapi

import (
	"encoding/base64"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	pkgerrors "github.com/pkg/errors"

	"github.com/insiderdeals/storefront/internal/store"
	"github.com/insiderdeals/storefront/pkg/common"
)

// maxImageBytes caps uploads at 5 MB, matching the admin form limit.
const maxImageBytes = 5 * 1024 * 1024

// uploadImage converts a multipart image into a base64 data URI and stores
// it under an ad hoc per-upload key. The data URI doubles as the image field
// value on the product.
func uploadImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Image file is missing", nil)
	}
	if file.Size <= 0 || file.Size > maxImageBytes {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Image must be between 1 byte and 5 MB", nil)
	}

	src, err := file.Open()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "UPLOAD_ERROR", "Failed to read image", err.Error())
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxImageBytes+1))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "UPLOAD_ERROR", "Failed to read image", err.Error())
	}
	if len(data) > maxImageBytes {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Image must be at most 5 MB", nil)
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "File is not an image", mime)
	}

	dataURI := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
	key := store.UploadKeyPrefix + strconv.FormatInt(common.UUIDint64(), 10)

	if err := GetApp(c).Store().Put(key, []byte(dataURI)); err != nil {
		return fail(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to store image", err.Error())
	}

	return ok(c, map[string]interface{}{
		"key": key,
		"url": dataURI,
	})
}

func getUploadedImage(c echo.Context) error {
	key := c.Param("key")
	if !strings.HasPrefix(key, store.UploadKeyPrefix) {
		return fail(c, http.StatusBadRequest, "INVALID_KEY", "Not an upload key", nil)
	}
	value, err := GetApp(c).Store().Get(key)
	if pkgerrors.Is(err, store.ErrNotFound) {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Image not found", nil)
	} else if err != nil {
		return fail(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to read image", err.Error())
	}
	return ok(c, map[string]interface{}{
		"key": key,
		"url": string(value),
	})
}

func deleteUploadedImage(c echo.Context) error {
	key := c.Param("key")
	if !strings.HasPrefix(key, store.UploadKeyPrefix) {
		return fail(c, http.StatusBadRequest, "INVALID_KEY", "Not an upload key", nil)
	}
	if err := GetApp(c).Store().Delete(key); err != nil {
		return fail(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to delete image", err.Error())
	}
	return ok(c, map[string]interface{}{"key": key})
}
