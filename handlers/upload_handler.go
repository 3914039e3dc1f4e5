package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/shvendra/bookmyworker-back/config"
)

// Upload kinds map to the static mounts in routes.go.
var uploadKinds = map[string]string{
	"kyc":     "kyc_doc",
	"profile": "profile_photo",
}

var allowedExts = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".pdf": {},
}

type UploadHandler struct {
	BaseDir string
}

func NewUploadHandler(cfg *config.Config) *UploadHandler {
	return &UploadHandler{BaseDir: cfg.UploadDir}
}

// POST /api/v1/upload/:kind  (kind = kyc | profile)
func (h *UploadHandler) Upload(c echo.Context) error {
	dir, ok := uploadKinds[c.Param("kind")]
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_UPLOAD_KIND"})
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "File is required"})
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := allowedExts[ext]; !ok {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "UNSUPPORTED_FILE_TYPE"})
	}

	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_FILE"})
	}
	defer src.Close()

	targetDir := filepath.Join(h.BaseDir, dir)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "UPLOAD_FAILED"})
	}
	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(targetDir, name))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "UPLOAD_FAILED"})
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "UPLOAD_FAILED"})
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"path":    "/" + dir + "/" + name,
	})
}
