package handlers

import (
	"net/http"

	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/api/dto"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/dashboard"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/views"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ViewsHandler handles HTTP requests for saved dashboard views
type ViewsHandler struct {
	service   views.Service
	dashboard dashboard.Service
	logger    *zap.Logger
}

// NewViewsHandler creates a new ViewsHandler instance
func NewViewsHandler(service views.Service, dashboardSvc dashboard.Service, logger *zap.Logger) *ViewsHandler {
	return &ViewsHandler{service: service, dashboard: dashboardSvc, logger: logger}
}

// SaveView godoc
// @Summary Save the current dashboard as a named view
// @Description Capture the current dashboard configuration under a name. The response carries a view: shortcut URL for one-click restore.
// @Tags views
// @Accept json
// @Produce json
// @Param view body dto.SaveViewRequest true "View save request"
// @Success 201 {object} dto.ViewResponse "View saved"
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /api/views [post]
func (h *ViewsHandler) SaveView(c *gin.Context) {
	var req dto.SaveViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Widget writes are debounced; push them into the settings document
	// first so the snapshot captures the live dashboard.
	if err := h.dashboard.Flush(c.Request.Context()); err != nil {
		h.logger.Error("Failed to flush dashboard before view save", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	view, err := h.service.Save(c.Request.Context(), req.Name)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err == views.ErrInvalidName {
			statusCode = http.StatusBadRequest
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": ViewToResponse(view)})
}

// ListViews godoc
// @Summary List saved views
// @Description Get every saved dashboard view, newest first
// @Tags views
// @Produce json
// @Success 200 {array} dto.ViewResponse "View list"
// @Router /api/views [get]
func (h *ViewsHandler) ListViews(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]dto.ViewResponse, 0, len(list))
	for i := range list {
		out = append(out, ViewToResponse(&list[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// DeleteView godoc
// @Summary Delete a saved view
// @Description Delete the view with the given ID. Deleting a view never touches the live dashboard.
// @Tags views
// @Param id path string true "View ID" format(uuid)
// @Success 204 "View deleted"
// @Failure 404 {object} map[string]string "View not found"
// @Router /api/views/{id} [delete]
func (h *ViewsHandler) DeleteView(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid view ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		statusCode := http.StatusInternalServerError
		if err == views.ErrViewNotFound {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// RestoreView godoc
// @Summary Restore a saved view
// @Description Overwrite the current dashboard configuration with the snapshot and return the resulting settings document. Restore is a full resync, not a merge.
// @Tags views
// @Produce json
// @Param id path string true "View ID" format(uuid)
// @Success 200 {object} dto.SettingsResponse "Settings document after restore"
// @Failure 404 {object} map[string]string "View not found"
// @Router /api/views/{id}/restore [post]
func (h *ViewsHandler) RestoreView(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid view ID"})
		return
	}

	doc, err := h.service.Restore(c.Request.Context(), id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err == views.ErrViewNotFound {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	// Rehydrate the live widget store from the restored document.
	if err := h.dashboard.Reload(c.Request.Context()); err != nil {
		h.logger.Error("Failed to reload dashboard after view restore", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"data": SettingsToResponse(doc)})
}
