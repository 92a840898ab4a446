package handlers

import (
	"net/http"
	"strconv"

	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/analytics"
	"github.com/gin-gonic/gin"
)

// AnalyticsHandler handles HTTP requests for tag analytics
type AnalyticsHandler struct {
	service analytics.Service
}

// NewAnalyticsHandler creates a new AnalyticsHandler instance
func NewAnalyticsHandler(service analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// GetTagAnalytics godoc
// @Summary Get tag analytics
// @Description Get tag aggregates and co-occurrence pairs. metric, limit and pair_sort shape the payload per widget without recomputing the aggregates.
// @Tags analytics
// @Produce json
// @Param metric query string false "Ranking metric: count, clicks or favorites" default(count)
// @Param limit query int false "Top-N tags to return; 0 returns all"
// @Param pair_sort query string false "Pair ordering: count or name" default(count)
// @Success 200 {object} dto.TagAnalyticsResponse "Tag analytics payload"
// @Router /api/analytics/tags [get]
func (h *AnalyticsHandler) GetTagAnalytics(c *gin.Context) {
	result, err := h.service.GetAnalytics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	metric := c.DefaultQuery("metric", "count")
	pairSort := c.DefaultQuery("pair_sort", "count")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	shaped := analytics.TagAnalytics{
		Tags:         analytics.TopTags(result.Tags, metric, limit),
		Cooccurrence: analytics.SortPairs(result.Cooccurrence, pairSort),
	}

	c.JSON(http.StatusOK, gin.H{"data": TagAnalyticsToResponse(&shaped)})
}
