package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/awfaabdulkader/interior-architect-backend/internal/storage"
)

// ImageHandler serves stored binaries over HTTP so that database-backed
// storage paths stay addressable the same way S3 URLs are.
type ImageHandler struct {
	*BaseHandler
	store storage.Storage
}

func NewImageHandler(base *BaseHandler, store storage.Storage) *ImageHandler {
	return &ImageHandler{BaseHandler: base, store: store}
}

func (h *ImageHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/images/*path", h.Serve)
}

// Serve streams the raw object at the given path. A trailing /info
// segment returns metadata instead of the bytes.
func (h *ImageHandler) Serve(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")

	wantInfo := false
	if trimmed, ok := strings.CutSuffix(path, "/info"); ok {
		path = trimmed
		wantInfo = true
	}

	obj, err := h.store.Get(c.Request.Context(), path)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	if wantInfo {
		c.JSON(http.StatusOK, gin.H{
			"path":      obj.Path,
			"filename":  obj.Filename,
			"mime_type": obj.MimeType,
			"size":      obj.Size,
		})
		return
	}

	// Paths are immutable once minted, so clients may cache forever.
	c.Header("Cache-Control", "public, max-age=31536000")
	c.Data(http.StatusOK, obj.MimeType, obj.Data)
}
