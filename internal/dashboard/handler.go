package dashboard

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.overview) // GET /dashboard
}

func (h *Handler) overview(c *gin.Context) {
	stats, err := h.Repo.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stats failed"})
		return
	}

	recent, err := h.Repo.RecentArticles(c.Request.Context(), parseInt(c.Query("recent"), 10))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "recent failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":           stats,
		"recent_articles": recent,
	})
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
