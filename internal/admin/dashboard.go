package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/tracking"
)

// ProjectRow is a top project with its title resolved.
type ProjectRow struct {
	ID    int
	Title string
	Count int64
}

func (h *Handler) dashboard(c *gin.Context) {
	stats, err := h.store.Stats(c.Request.Context())
	if err != nil {
		h.log.Error("error loading admin stats", "error", err)
		c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
			"error": "Failed to load statistics",
		})
		return
	}

	c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
		"title":    "Dashboard",
		"stats":    stats,
		"projects": h.projectRows(stats.TopProjects),
	})
}

func (h *Handler) statsJSON(c *gin.Context) {
	stats, err := h.store.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) exportStats(c *gin.Context) {
	stats, err := h.store.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=portfolio-stats.json")
	h.log.Info("admin stats exported", "client", h.store.Hash(c.ClientIP()))
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) cleanup(c *gin.Context) {
	removed, err := h.store.Cleanup(c.Request.Context(), h.retention)
	if err != nil {
		h.log.Error("error cleaning up tracking data", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clean up tracking data"})
		return
	}
	h.log.Info("privacy cleanup", "removed", removed)
	c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup complete", "removed": removed})
}

func (h *Handler) projectRows(counts []tracking.ProjectCount) []ProjectRow {
	rows := make([]ProjectRow, 0, len(counts))
	for _, pc := range counts {
		title := "Removed project"
		if p, ok := h.lib.FindProject(pc.ProjectID); ok {
			title = p.Title
		}
		rows = append(rows, ProjectRow{ID: pc.ProjectID, Title: title, Count: pc.Count})
	}
	return rows
}
