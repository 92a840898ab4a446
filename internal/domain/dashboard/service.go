package dashboard

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/bookmark"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/events"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/settings"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/infrastructure/cache"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// persistDebounce batches rapid widget mutations (a drag commit plus a
// settings write per pixel would hammer the settings row) into one
// settings write.
const persistDebounce = 500 * time.Millisecond

type Service interface {
	Widgets() []Widget
	AddWidget(ctx context.Context, typ WidgetType, id string, x, y float64) (*Widget, error)
	RemoveWidget(ctx context.Context, index int) error
	UpdateWidget(ctx context.Context, index int, patch WidgetPatch) (*Widget, error)
	ClearWidgets(ctx context.Context)
	AutoLayout(ctx context.Context) []Widget
	Gesture(ctx context.Context, ev PointerEvent) (*Widget, error)
	GestureState() GestureState
	WidgetContent(ctx context.Context, index int) (*ResolvedContent, error)
	NextItems(ctx context.Context, index int) ([]bookmark.Bookmark, bool, error)
	OpenAllURLs(ctx context.Context, index int) ([]string, error)
	Reload(ctx context.Context) error
	Flush(ctx context.Context) error
}

type service struct {
	store    *Store
	ctrl     *Controller
	loader   *Loader
	resolver *Resolver
	settings settings.Service
	redis    *cache.RedisClient
	logger   *zap.Logger

	snapToGrid   atomic.Bool
	includeChild atomic.Bool

	persistMu    sync.Mutex
	persistTimer *time.Timer
	pending      []Widget
}

// NewService builds the dashboard engine: store, gesture controller,
// lazy loader and resolver, hydrated from the settings document.
func NewService(bookmarks bookmark.Service, settingsSvc settings.Service, redis *cache.RedisClient, logger *zap.Logger) (Service, error) {
	s := &service{
		store:    NewStore(),
		loader:   NewLoader(),
		resolver: NewResolver(bookmarks, logger),
		settings: settingsSvc,
		redis:    redis,
		logger:   logger,
	}
	s.ctrl = NewController(s.store, s.snapToGrid.Load)
	s.store.SetListener(s.onStoreChange)

	if err := s.Reload(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

// onStoreChange runs after every store mutation: schedule the debounced
// settings write and reset lazy-load progress (every mutation triggers
// a full canvas re-render).
func (s *service) onStoreChange(widgets []Widget) {
	s.loader.ResetAll()

	s.persistMu.Lock()
	s.pending = widgets
	if s.persistTimer != nil {
		s.persistTimer.Stop()
	}
	s.persistTimer = time.AfterFunc(persistDebounce, s.flushPending)
	s.persistMu.Unlock()
}

// flushPending writes the latest widget list into the settings
// document. Fire-and-forget: failures are logged, never surfaced to
// the gesture that triggered them.
func (s *service) flushPending() {
	s.persistMu.Lock()
	widgets := s.pending
	s.pending = nil
	s.persistMu.Unlock()

	if widgets == nil {
		widgets = s.store.List()
	}

	data, err := json.Marshal(widgets)
	if err != nil {
		s.logger.Error("Failed to marshal widget list", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.settings.UpdateDashboardWidgets(ctx, datatypes.JSON(data)); err != nil {
		s.logger.Error("Failed to persist widget list", zap.Error(err))
		return
	}

	event := &events.DashboardEvent{
		EventType: events.DashboardEventLayoutUpdate,
		EntityID:  uuid.Nil,
		Timestamp: time.Now().UTC(),
	}
	if err := s.redis.PublishDashboardEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish layout event", zap.Error(err))
	}
}

// Flush forces any pending debounced write out immediately. Called on
// shutdown.
func (s *service) Flush(ctx context.Context) error {
	s.persistMu.Lock()
	if s.persistTimer != nil {
		s.persistTimer.Stop()
		s.persistTimer = nil
	}
	s.persistMu.Unlock()

	data, err := json.Marshal(s.store.List())
	if err != nil {
		return err
	}
	return s.settings.UpdateDashboardWidgets(ctx, datatypes.JSON(data))
}

// Reload re-hydrates the widget store and preferences from the
// settings document. Used at startup and after a view restore, the
// full state resync that keeps client and server from drifting.
func (s *service) Reload(ctx context.Context) error {
	doc, err := s.settings.Get(ctx)
	if err != nil {
		return err
	}

	var widgets []Widget
	if len(doc.DashboardWidgets) > 0 {
		if err := json.Unmarshal(doc.DashboardWidgets, &widgets); err != nil {
			s.logger.Error("Failed to decode persisted widgets, starting empty", zap.Error(err))
			widgets = nil
		}
	}

	s.store.Load(widgets)
	s.loader.ResetAll()
	s.snapToGrid.Store(doc.SnapToGrid)
	s.includeChild.Store(doc.IncludeChildBookmarks)
	return nil
}

func (s *service) Widgets() []Widget {
	return s.store.List()
}

func (s *service) AddWidget(ctx context.Context, typ WidgetType, id string, x, y float64) (*Widget, error) {
	return s.store.Add(typ, id, x, y)
}

func (s *service) RemoveWidget(ctx context.Context, index int) error {
	return s.store.Remove(index)
}

func (s *service) UpdateWidget(ctx context.Context, index int, patch WidgetPatch) (*Widget, error) {
	w, err := s.store.Update(index, patch)
	if err != nil {
		return nil, err
	}

	// Explicit PATCH, as opposed to a gesture commit, which only
	// announces itself through the debounced layout event.
	event := &events.DashboardEvent{
		EventType: events.EventTypeWidgetUpdate,
		EntityID:  uuid.Nil,
		Timestamp: time.Now().UTC(),
		Details:   map[string]interface{}{"index": index},
	}
	if err := s.redis.PublishDashboardEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish widget update event", zap.Error(err))
	}

	return w, nil
}

func (s *service) ClearWidgets(ctx context.Context) {
	s.store.Clear()
}

func (s *service) AutoLayout(ctx context.Context) []Widget {
	return s.store.AutoLayout()
}

func (s *service) Gesture(ctx context.Context, ev PointerEvent) (*Widget, error) {
	return s.ctrl.Dispatch(ev)
}

func (s *service) GestureState() GestureState {
	return s.ctrl.State()
}

// WidgetContent resolves the widget at the given index. A nil result
// with nil error means the referenced entity is gone and the widget is
// skipped in render.
func (s *service) WidgetContent(ctx context.Context, index int) (*ResolvedContent, error) {
	w, err := s.store.Get(index)
	if err != nil {
		return nil, err
	}
	return s.resolver.Resolve(ctx, *w, s.includeChild.Load())
}

// NextItems reveals the widget's next lazy batch. An empty batch with
// done=false means a load is already in flight for this widget.
func (s *service) NextItems(ctx context.Context, index int) ([]bookmark.Bookmark, bool, error) {
	w, err := s.store.Get(index)
	if err != nil {
		return nil, false, err
	}

	key := w.Key()
	if !s.loader.Begin(key) {
		return nil, false, nil
	}

	content, err := s.resolver.Resolve(ctx, *w, s.includeChild.Load())
	if err != nil {
		s.loader.Abort(key)
		return nil, false, err
	}
	if content == nil {
		s.loader.Abort(key)
		return nil, true, nil
	}

	batch, done := s.loader.Commit(key, content.Items)
	return batch, done, nil
}

// OpenAllURLs returns every bookmark URL in the widget for the
// open-all command. Popup handling and the blocked-links fallback live
// in the client; click tracking happens per actual open.
func (s *service) OpenAllURLs(ctx context.Context, index int) ([]string, error) {
	w, err := s.store.Get(index)
	if err != nil {
		return nil, ErrWidgetNotFound
	}

	content, err := s.resolver.Resolve(ctx, *w, s.includeChild.Load())
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, ErrWidgetNotFound
	}

	urls := make([]string, 0, len(content.Items))
	for _, b := range content.Items {
		urls = append(urls, b.URL)
	}
	return urls, nil
}
