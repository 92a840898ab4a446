package handlers

import (
	"net/http"
	"strconv"

	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/api/dto"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/api/middleware"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/dashboard"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler handles HTTP requests for the widget dashboard
type DashboardHandler struct {
	service dashboard.Service
	logger  *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler instance
func NewDashboardHandler(service dashboard.Service, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{service: service, logger: logger}
}

// ListWidgets godoc
// @Summary List placed widgets
// @Description Get the full widget list in canvas order
// @Tags dashboard
// @Produce json
// @Success 200 {array} dto.WidgetResponse "Widget list"
// @Router /api/dashboard/widgets [get]
func (h *DashboardHandler) ListWidgets(c *gin.Context) {
	widgets := h.service.Widgets()
	c.JSON(http.StatusOK, gin.H{"data": WidgetsToResponse(widgets)})
}

// AddWidget godoc
// @Summary Place a new widget
// @Description Add a widget bound to a folder, a tag, or the tag analytics panel
// @Tags dashboard
// @Accept json
// @Produce json
// @Param widget body dto.AddWidgetRequest true "Widget placement request"
// @Success 201 {object} dto.WidgetResponse "Widget placed"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 409 {object} map[string]string "Widget already exists on dashboard"
// @Router /api/dashboard/widgets [post]
func (h *DashboardHandler) AddWidget(c *gin.Context) {
	var req dto.AddWidgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	w, err := h.service.AddWidget(c.Request.Context(), dashboard.WidgetType(req.Type), req.ID, req.X, req.Y)
	if err != nil {
		switch err {
		case dashboard.ErrWidgetExists:
			// Duplicate placement is not destructive; the message is the
			// user-facing notice.
			c.JSON(http.StatusConflict, gin.H{"error": "Widget already exists on dashboard"})
		case dashboard.ErrInvalidWidget:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	// A fresh widget is always appended, so its index is the tail.
	c.JSON(http.StatusCreated, gin.H{"data": WidgetToResponse(len(h.service.Widgets())-1, *w)})
}

// UpdateWidget godoc
// @Summary Update a widget
// @Description Apply a partial update to the widget at the given index
// @Tags dashboard
// @Accept json
// @Produce json
// @Param index path int true "Widget index"
// @Param widget body dto.UpdateWidgetRequest true "Widget update request"
// @Success 200 {object} dto.WidgetResponse "Widget updated"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Widget not found"
// @Router /api/dashboard/widgets/{index} [patch]
func (h *DashboardHandler) UpdateWidget(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid widget index"})
		return
	}

	var req dto.UpdateWidgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := dashboard.WidgetPatch{
		X:        req.X,
		Y:        req.Y,
		W:        req.W,
		H:        req.H,
		Sort:     req.Sort,
		Color:    req.Color,
		Settings: analyticsSettingsFromDTO(req.Settings),
	}

	w, err := h.service.UpdateWidget(c.Request.Context(), index, patch)
	if err != nil {
		h.widgetError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": WidgetToResponse(index, *w)})
}

// RemoveWidget godoc
// @Summary Remove a widget
// @Description Delete the widget at the given index
// @Tags dashboard
// @Produce json
// @Param index path int true "Widget index"
// @Success 204 "Widget removed"
// @Failure 404 {object} map[string]string "Widget not found"
// @Router /api/dashboard/widgets/{index} [delete]
func (h *DashboardHandler) RemoveWidget(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid widget index"})
		return
	}

	if err := h.service.RemoveWidget(c.Request.Context(), index); err != nil {
		h.widgetError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ClearWidgets godoc
// @Summary Clear the dashboard
// @Description Remove every widget
// @Tags dashboard
// @Success 204 "Dashboard cleared"
// @Router /api/dashboard/widgets [delete]
func (h *DashboardHandler) ClearWidgets(c *gin.Context) {
	h.service.ClearWidgets(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// AutoLayout godoc
// @Summary Auto-arrange widgets
// @Description Re-pack every widget on the fixed grid at the default size
// @Tags dashboard
// @Produce json
// @Success 200 {array} dto.WidgetResponse "Packed widget list"
// @Router /api/dashboard/widgets/auto-layout [post]
func (h *DashboardHandler) AutoLayout(c *gin.Context) {
	widgets := h.service.AutoLayout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"data": WidgetsToResponse(widgets)})
}

// Gesture godoc
// @Summary Feed a pointer event
// @Description Drive the drag/resize state machine with one pointer sample
// @Tags dashboard
// @Accept json
// @Produce json
// @Param event body dto.GestureRequest true "Pointer event"
// @Success 200 {object} dto.GestureResponse "Resulting gesture state"
// @Failure 404 {object} map[string]string "Widget not found"
// @Failure 409 {object} map[string]string "Another gesture is already active"
// @Router /api/dashboard/gesture [post]
func (h *DashboardHandler) Gesture(c *gin.Context) {
	var req dto.GestureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ev := dashboard.PointerEvent{
		Phase:       dashboard.GesturePhase(req.Phase),
		Kind:        dashboard.GestureKind(req.Kind),
		WidgetIndex: req.WidgetIndex,
		X:           req.X,
		Y:           req.Y,
	}

	middleware.ObserveGestureEvent(req.Phase)

	w, err := h.service.Gesture(c.Request.Context(), ev)
	if err != nil {
		switch err {
		case dashboard.ErrGestureActive:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case dashboard.ErrIndexOutOfRange:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	resp := dto.GestureResponse{State: string(h.service.GestureState())}
	if w != nil {
		resp.Widget = widgetResponsePtr(req.WidgetIndex, *w)
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// WidgetContent godoc
// @Summary Resolve widget content
// @Description Resolve the bookmarks and header of the widget at the given index. A null payload means the referenced entity is gone and the widget should be skipped.
// @Tags dashboard
// @Produce json
// @Param index path int true "Widget index"
// @Success 200 {object} dto.WidgetContentResponse "Resolved content"
// @Failure 404 {object} map[string]string "Widget not found"
// @Router /api/dashboard/widgets/{index}/content [get]
func (h *DashboardHandler) WidgetContent(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid widget index"})
		return
	}

	content, err := h.service.WidgetContent(c.Request.Context(), index)
	if err != nil {
		h.widgetError(c, err)
		return
	}
	if content == nil {
		c.JSON(http.StatusOK, gin.H{"data": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.WidgetContentResponse{
		Name:  content.Name,
		Color: content.Color,
		Count: content.Count,
		Items: BookmarksToResponse(content.Items),
	}})
}

// NextItems godoc
// @Summary Reveal the next lazy batch
// @Description Advance the widget's lazy loader by one batch. An empty batch with done=false means a load is already in flight.
// @Tags dashboard
// @Produce json
// @Param index path int true "Widget index"
// @Success 200 {object} dto.WidgetItemsResponse "Next batch"
// @Failure 404 {object} map[string]string "Widget not found"
// @Router /api/dashboard/widgets/{index}/items [post]
func (h *DashboardHandler) NextItems(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid widget index"})
		return
	}

	items, done, err := h.service.NextItems(c.Request.Context(), index)
	if err != nil {
		h.widgetError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.WidgetItemsResponse{
		Items: BookmarksToResponse(items),
		Done:  done,
	}})
}

// OpenAll godoc
// @Summary List all widget URLs
// @Description Return every bookmark URL in the widget for the open-all command
// @Tags dashboard
// @Produce json
// @Param index path int true "Widget index"
// @Success 200 {object} dto.OpenAllResponse "URL list"
// @Failure 404 {object} map[string]string "Widget not found"
// @Router /api/dashboard/widgets/{index}/open-all [get]
func (h *DashboardHandler) OpenAll(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid widget index"})
		return
	}

	urls, err := h.service.OpenAllURLs(c.Request.Context(), index)
	if err != nil {
		h.widgetError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.OpenAllResponse{URLs: urls}})
}

func (h *DashboardHandler) widgetError(c *gin.Context, err error) {
	switch err {
	case dashboard.ErrIndexOutOfRange, dashboard.ErrWidgetNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logger.Error("Dashboard request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func widgetResponsePtr(index int, w dashboard.Widget) *dto.WidgetResponse {
	resp := WidgetToResponse(index, w)
	return &resp
}
