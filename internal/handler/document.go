package handler

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/rental-property-manager/internal/repository"
)

// DocumentHandler exposes the upload endpoint and CRUD over the acting
// account's document records.
type DocumentHandler struct {
	Documents *repository.DocumentRepo
	UploadDir string
}

func NewDocumentHandler(d *repository.DocumentRepo, uploadDir string) *DocumentHandler {
	return &DocumentHandler{Documents: d, UploadDir: uploadDir}
}

// List handles GET /api/documents.
func (h *DocumentHandler) List(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, h.Documents.List(accID))
}

// ListByTenant handles GET /api/documents/tenant/:tenantId.
func (h *DocumentHandler) ListByTenant(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, h.Documents.ListByTenant(accID, c.Param("tenantId")))
}

// Upload handles POST /api/documents/upload: a multipart form with the file
// under "file" plus tenantId/propertyId/docType/description fields. The file
// is stored under a generated name that cannot collide with other uploads;
// the record is created only after the file is safely on disk, and the file
// is cleaned up if the record cannot be persisted.
func (h *DocumentHandler) Upload(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "file is required"})
	}

	stored := storedName(fh.Filename)
	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store file failed"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unreadable file"})
	}
	defer src.Close()
	path := filepath.Join(h.UploadDir, stored)
	dst, err := os.Create(path)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store file failed"})
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store file failed"})
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store file failed"})
	}

	doc, err := h.Documents.Create(accID, repository.NewDocument{
		Filename:    stored,
		Original:    fh.Filename,
		TenantID:    c.FormValue("tenantId"),
		PropertyID:  c.FormValue("propertyId"),
		DocType:     c.FormValue("docType"),
		Description: c.FormValue("description"),
	})
	if err != nil {
		os.Remove(path)
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, doc)
}

// Get handles GET /api/documents/:id.
func (h *DocumentHandler) Get(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	d, err := h.Documents.Get(accID, c.Param("id"))
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

// Update handles PUT /api/documents/:id (metadata only).
func (h *DocumentHandler) Update(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var patch repository.DocumentPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	d, err := h.Documents.Update(accID, c.Param("id"), patch)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

// Delete handles DELETE /api/documents/:id and removes the stored file.
func (h *DocumentHandler) Delete(c echo.Context) error {
	accID, err := accountID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if err := h.Documents.Delete(accID, c.Param("id")); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// storedName builds a unique on-disk filename: nanosecond timestamp plus a
// random component, keeping a sanitized version of the original name for
// readability. Path separators in the client-supplied name are stripped.
func storedName(original string) string {
	base := filepath.Base(strings.ReplaceAll(original, "\\", "/"))
	base = strings.ReplaceAll(base, " ", "_")
	return fmt.Sprintf("%d-%s-%s", time.Now().UnixNano(), uuid.NewString()[:8], base)
}
