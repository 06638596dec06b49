package journal

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kamal464/wissen-publication-group-sub000/internal/events"
	"github.com/kamal464/wissen-publication-group-sub000/pkg/models"
)

type Handler struct {
	Repo *Repo
	Hub  *events.Hub
}

func NewHandler(repo *Repo, hub *events.Hub) *Handler {
	return &Handler{Repo: repo, Hub: hub}
}

// RegisterPublicRoutes exposes the read path used by the public site.
// A journal is addressed either by numeric id or by shortcode.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list)     // GET /journals
	rg.GET("/:key", h.get) // GET /journals/:id-or-shortcode
}

// RegisterAdminRoutes exposes the write surface for the admin console.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.PATCH("/:key", h.update)
	rg.DELETE("/:key", h.remove)
}

// RegisterShortcodeRoutes exposes the shortcode indirection table.
func (h *Handler) RegisterShortcodeRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.listShortcodes)
	rg.POST("", h.createShortcode)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.Repo.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total": len(items),
		"items": items,
	})
}

func (h *Handler) get(c *gin.Context) {
	key := strings.TrimSpace(c.Param("key"))

	var (
		j   *models.Journal
		err error
	)
	if id, convErr := strconv.ParseInt(key, 10, 64); convErr == nil {
		j, err = h.Repo.GetByID(c.Request.Context(), id)
	} else {
		j, err = h.Repo.GetByShortcode(c.Request.Context(), key)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	if j == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, j)
}

func (h *Handler) create(c *gin.Context) {
	var req models.Journal
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title required"})
		return
	}

	id, err := h.Repo.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}

	h.Hub.Publish(events.JournalCreated, id)
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("key"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var patch models.JournalPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	ok, err := h.Repo.Update(c.Request.Context(), id, patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	h.Hub.Publish(events.JournalUpdated, id)
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *Handler) remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("key"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ok, err := h.Repo.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	h.Hub.Publish(events.JournalDeleted, id)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

type createShortcodeReq struct {
	Shortcode   string `json:"shortcode"`
	JournalName string `json:"journal_name"`
	JournalID   *int64 `json:"journal_id"`
}

func (h *Handler) createShortcode(c *gin.Context) {
	var req createShortcodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(req.Shortcode) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "shortcode required"})
		return
	}

	sc := models.JournalShortcode{
		Shortcode:   req.Shortcode,
		JournalName: req.JournalName,
		JournalID:   req.JournalID,
	}
	if err := h.Repo.CreateShortcode(c.Request.Context(), sc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create shortcode failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "created"})
}

func (h *Handler) listShortcodes(c *gin.Context) {
	items, err := h.Repo.ListShortcodes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total": len(items),
		"items": items,
	})
}
