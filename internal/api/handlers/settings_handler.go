package handlers

import (
	"net/http"

	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/api/dto"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/dashboard"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/settings"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// SettingsHandler handles HTTP requests for the settings document
type SettingsHandler struct {
	service   settings.Service
	dashboard dashboard.Service
	logger    *zap.Logger
}

// NewSettingsHandler creates a new SettingsHandler instance
func NewSettingsHandler(service settings.Service, dashboardSvc dashboard.Service, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{service: service, dashboard: dashboardSvc, logger: logger}
}

// GetSettings godoc
// @Summary Get the settings document
// @Description Get the full settings document, with defaults applied
// @Tags settings
// @Produce json
// @Success 200 {object} dto.SettingsResponse "Settings document"
// @Router /api/settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	doc, err := h.service.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": SettingsToResponse(doc)})
}

// UpdateSettings godoc
// @Summary Update settings
// @Description Apply a partial update to the settings document
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body dto.UpdateSettingsRequest true "Settings update request"
// @Success 200 {object} dto.SettingsResponse "Updated settings document"
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /api/settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := settings.UpdateInput{
		SnapToGrid:            req.SnapToGrid,
		DashboardMode:         req.DashboardMode,
		DashboardSort:         req.DashboardSort,
		WidgetOrder:           req.WidgetOrder,
		IncludeChildBookmarks: req.IncludeChildBookmarks,
	}
	if req.DashboardWidgets != nil {
		input.DashboardWidgets = datatypes.JSON(req.DashboardWidgets)
	}
	if req.DashboardTags != nil {
		input.DashboardTags = datatypes.JSON(req.DashboardTags)
	}

	doc, err := h.service.Update(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// The dashboard engine reads preferences and the widget blob from
	// the settings document; resync it with what was just written.
	if err := h.dashboard.Reload(c.Request.Context()); err != nil {
		h.logger.Error("Failed to reload dashboard after settings update", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"data": SettingsToResponse(doc)})
}
