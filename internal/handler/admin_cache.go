package handler

import (
	"net/http"

	"github.com/osse101/CraftLedger_Go/internal/cache"
	"github.com/osse101/CraftLedger_Go/internal/logger"
)

// AdminCacheHandler handles admin cache operations
type AdminCacheHandler struct {
	cache *cache.QueryCache
}

// NewAdminCacheHandler creates a new admin cache handler
func NewAdminCacheHandler(c *cache.QueryCache) *AdminCacheHandler {
	return &AdminCacheHandler{cache: c}
}

// HandleGetCacheStats returns current query cache statistics
// @Summary Get query cache stats
// @Description Returns cache hit/miss statistics for monitoring (admin only)
// @Tags admin
// @Produce json
// @Success 200 {object} cache.Stats
// @Router /api/v1/admin/cache/stats [get]
func (h *AdminCacheHandler) HandleGetCacheStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.cache.GetStats())
}

// HandleClearCache drops every cached query result. The next read goes to the store.
// @Summary Clear query cache
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/admin/cache [delete]
func (h *AdminCacheHandler) HandleClearCache(w http.ResponseWriter, r *http.Request) {
	h.cache.Clear()
	logger.FromContext(r.Context()).Info(LogMsgCacheCleared)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCacheCleared})
}
