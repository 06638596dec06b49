package upload

import (
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kamal464/wissen-publication-group-sub000/internal/assets"
	"github.com/kamal464/wissen-publication-group-sub000/internal/storage"
)

// 25 MiB covers flyer PDFs, the largest assets editors upload.
const maxUploadBytes = 25 << 20

type Handler struct {
	Store storage.Uploader
	RW    assets.Rewriter
}

func NewHandler(store storage.Uploader, rw assets.Rewriter) *Handler {
	return &Handler{Store: store, RW: rw}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.upload) // POST /uploads (multipart, field "file")
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field required"})
		return
	}

	folder := sanitizeFolder(c.PostForm("folder"))

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "open upload failed"})
		return
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	key := path.Join(folder, uuid.NewString()+ext)
	contentType := fileHeader.Header.Get("Content-Type")

	url, err := h.Store.Upload(c.Request.Context(), key, contentType, f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"key": key,
		"url": url,
		// what the public site will serve under the active CDN config
		"public_url": h.RW.RewriteURL(url),
	})
}

// sanitizeFolder keeps the object key flat and predictable: a single
// lower-case path segment, defaulting to "uploads".
func sanitizeFolder(folder string) string {
	folder = strings.ToLower(strings.Trim(folder, "/ "))
	if folder == "" || strings.ContainsAny(folder, "/\\.") {
		return "uploads"
	}
	return folder
}
