package article

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kamal464/wissen-publication-group-sub000/internal/events"
	"github.com/kamal464/wissen-publication-group-sub000/internal/journal"
	"github.com/kamal464/wissen-publication-group-sub000/pkg/models"
)

type Handler struct {
	Repo     *Repo
	Journals *journal.Repo
	Hub      *events.Hub
}

func NewHandler(repo *Repo, journals *journal.Repo, hub *events.Hub) *Handler {
	return &Handler{Repo: repo, Journals: journals, Hub: hub}
}

// RegisterPublicRoutes adds the article read path under the journals group.
// The :key segment matches the journal route param so the routes can share a
// prefix.
func (h *Handler) RegisterPublicRoutes(journals *gin.RouterGroup, articles *gin.RouterGroup) {
	journals.GET("/:key/articles", h.listForJournal)
	articles.GET("/:id", h.get)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.PATCH("/:id", h.update)
	rg.DELETE("/:id", h.remove)
}

func (h *Handler) listForJournal(c *gin.Context) {
	key := strings.TrimSpace(c.Param("key"))

	var (
		j   *models.Journal
		err error
	)
	if id, convErr := strconv.ParseInt(key, 10, 64); convErr == nil {
		j, err = h.Journals.GetByID(c.Request.Context(), id)
	} else {
		j, err = h.Journals.GetByShortcode(c.Request.Context(), key)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	if j == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "journal not found"})
		return
	}

	limit := parseInt(c.Query("limit"), 20)
	offset := parseInt(c.Query("offset"), 0)

	items, total, err := h.Repo.ListByJournal(c.Request.Context(), j.ID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":  total,
		"limit":  limit,
		"offset": offset,
		"items":  items,
	})
}

func (h *Handler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	a, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	if a == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, a)
}

type createReq struct {
	JournalID   int64      `json:"journal_id"`
	Title       string     `json:"title"`
	Authors     string     `json:"authors"`
	Abstract    string     `json:"abstract"`
	Content     string     `json:"content"`
	PDFURL      string     `json:"pdf_url"`
	PublishedAt *time.Time `json:"published_at"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(req.Title) == "" || req.JournalID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "journal_id and title required"})
		return
	}

	j, err := h.Journals.GetByID(c.Request.Context(), req.JournalID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get journal failed"})
		return
	}
	if j == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "journal not found"})
		return
	}

	id, err := h.Repo.Create(c.Request.Context(), models.Article{
		JournalID:   req.JournalID,
		Title:       req.Title,
		Authors:     req.Authors,
		Abstract:    req.Abstract,
		Content:     req.Content,
		PDFURL:      req.PDFURL,
		PublishedAt: req.PublishedAt,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}

	h.Hub.Publish(events.ArticleCreated, id)
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var patch models.ArticlePatch
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

	h.Hub.Publish(events.ArticleUpdated, id)
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *Handler) remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
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

	h.Hub.Publish(events.ArticleDeleted, id)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func parseInt(s string, def int) int {
	if strings.TrimSpace(s) == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
