package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adscomb/adscomb/app/database"
)

func NewHandler(runRepo database.RunRepository, adRepo database.AdRepository, version string) *Handler {
	return &Handler{
		runRepo: runRepo,
		adRepo:  adRepo,
		version: version,
	}
}

func (h *Handler) HealthCheck(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	if runCount, err := h.runRepo.GetRunCount(); err == nil {
		health["runs"] = runCount
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats := map[string]interface{}{
		"version":   h.version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	runCount, err := h.runRepo.GetRunCount()
	if err != nil {
		slog.Error("Database error", "operation", "run_count", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	stats["runs"] = runCount

	adCount, err := h.adRepo.GetAdCount()
	if err != nil {
		slog.Error("Database error", "operation", "ad_count", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	stats["ads"] = adCount

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) ListRuns(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	runs, err := h.runRepo.GetRuns(limit)
	if err != nil {
		slog.Error("Database error", "operation", "list_runs", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	out := make([]map[string]interface{}, 0, len(runs))
	for _, run := range runs {
		out = append(out, map[string]interface{}{
			"id":              run.ID,
			"query":           run.Query,
			"region":          run.Region,
			"pages_requested": run.PagesRequested,
			"pages_fetched":   run.PagesFetched,
			"ad_count":        run.AdCount,
			"started_at":      run.StartedAt.Format(time.RFC3339),
			"finished_at":     run.FinishedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, gin.H{"runs": out, "count": len(out)})
}

func (h *Handler) GetRunAds(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid run id"})
		return
	}

	run, err := h.runRepo.GetRun(id)
	if err != nil {
		slog.Error("Database error", "operation", "get_run", "run_id", id, "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	if run == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return
	}

	records, err := h.adRepo.GetAdsByRun(id)
	if err != nil {
		slog.Error("Database error", "operation", "get_run_ads", "run_id", id, "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"run_id": run.ID,
		"query":  run.Query,
		"region": run.Region,
		"count":  len(records),
		"ads":    records,
	})
}
