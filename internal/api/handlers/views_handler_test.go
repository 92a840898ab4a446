package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/bookmark"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/dashboard"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/settings"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/views"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// Mock dashboard service recording calls into a shared sequence
type mockDashboardService struct {
	calls    *[]string
	flushErr error
}

func (m *mockDashboardService) Widgets() []dashboard.Widget { return nil }

func (m *mockDashboardService) AddWidget(ctx context.Context, typ dashboard.WidgetType, id string, x, y float64) (*dashboard.Widget, error) {
	return nil, nil
}

func (m *mockDashboardService) RemoveWidget(ctx context.Context, index int) error { return nil }

func (m *mockDashboardService) UpdateWidget(ctx context.Context, index int, patch dashboard.WidgetPatch) (*dashboard.Widget, error) {
	return nil, nil
}

func (m *mockDashboardService) ClearWidgets(ctx context.Context) {}

func (m *mockDashboardService) AutoLayout(ctx context.Context) []dashboard.Widget { return nil }

func (m *mockDashboardService) Gesture(ctx context.Context, ev dashboard.PointerEvent) (*dashboard.Widget, error) {
	return nil, nil
}

func (m *mockDashboardService) GestureState() dashboard.GestureState { return dashboard.StateIdle }

func (m *mockDashboardService) WidgetContent(ctx context.Context, index int) (*dashboard.ResolvedContent, error) {
	return nil, nil
}

func (m *mockDashboardService) NextItems(ctx context.Context, index int) ([]bookmark.Bookmark, bool, error) {
	return nil, true, nil
}

func (m *mockDashboardService) OpenAllURLs(ctx context.Context, index int) ([]string, error) {
	return nil, nil
}

func (m *mockDashboardService) Reload(ctx context.Context) error {
	*m.calls = append(*m.calls, "reload")
	return nil
}

func (m *mockDashboardService) Flush(ctx context.Context) error {
	*m.calls = append(*m.calls, "flush")
	return m.flushErr
}

// Mock views service recording into the same sequence
type mockViewsService struct {
	calls *[]string
}

func (m *mockViewsService) Save(ctx context.Context, name string) (*views.DashboardView, error) {
	*m.calls = append(*m.calls, "save")
	return &views.DashboardView{ID: uuid.New(), Name: name}, nil
}

func (m *mockViewsService) List(ctx context.Context) ([]views.DashboardView, error) {
	return nil, nil
}

func (m *mockViewsService) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (m *mockViewsService) Restore(ctx context.Context, id uuid.UUID) (*settings.Settings, error) {
	return &settings.Settings{}, nil
}

func newViewsRouter(dash *mockDashboardService, svc *mockViewsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewViewsHandler(svc, dash, zap.NewNop())
	router := gin.New()
	router.POST("/api/views", h.SaveView)
	return router
}

func TestSaveViewFlushesPendingWidgetWrites(t *testing.T) {
	var calls []string
	dash := &mockDashboardService{calls: &calls}
	svc := &mockViewsService{calls: &calls}
	router := newViewsRouter(dash, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/views", strings.NewReader(`{"name":"Work"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	// Debounced widget writes land in the settings document before the
	// snapshot is captured, so a save right after a drag commit never
	// records the pre-mutation widget list.
	assert.Equal(t, []string{"flush", "save"}, calls)
}

func TestSaveViewFailsWhenFlushFails(t *testing.T) {
	var calls []string
	dash := &mockDashboardService{calls: &calls, flushErr: errors.New("settings write failed")}
	svc := &mockViewsService{calls: &calls}
	router := newViewsRouter(dash, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/views", strings.NewReader(`{"name":"Work"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// A stale snapshot is worse than a failed save
	assert.Equal(t, []string{"flush"}, calls)
}
