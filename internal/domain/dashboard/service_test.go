package dashboard

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/bookmark"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/events"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/settings"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/infrastructure/cache"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

func newTestRedis(t *testing.T) *cache.RedisClient {
	t.Helper()
	mr := miniredis.RunT(t)
	cfg := cache.DefaultConfig()
	cfg.Addr = mr.Addr()
	client, err := cache.NewRedisClient(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

// Mock settings service backed by an in-memory document
type mockSettingsService struct {
	mu      sync.Mutex
	doc     settings.Settings
	updates int
}

func newMockSettingsService() *mockSettingsService {
	return &mockSettingsService{
		doc: settings.Settings{
			DashboardWidgets: datatypes.JSON([]byte("[]")),
			SnapToGrid:       true,
		},
	}
}

func (m *mockSettingsService) Get(ctx context.Context) (*settings.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc := m.doc
	return &doc, nil
}

func (m *mockSettingsService) Update(ctx context.Context, input settings.UpdateInput) (*settings.Settings, error) {
	return m.Get(ctx)
}

func (m *mockSettingsService) UpdateDashboardWidgets(ctx context.Context, widgets datatypes.JSON) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doc.DashboardWidgets = widgets
	m.updates++
	return nil
}

func (m *mockSettingsService) Capture(ctx context.Context) (*settings.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return &settings.Snapshot{Widgets: m.doc.DashboardWidgets}, nil
}

func (m *mockSettingsService) ApplySnapshot(ctx context.Context, snap settings.Snapshot) (*settings.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doc.DashboardWidgets = snap.Widgets
	return &m.doc, nil
}

func (m *mockSettingsService) persistedWidgets(t *testing.T) []Widget {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	var widgets []Widget
	require.NoError(t, json.Unmarshal(m.doc.DashboardWidgets, &widgets))
	return widgets
}

func newServiceFixture(t *testing.T, bookmarks *mockBookmarkService) (Service, *mockSettingsService) {
	t.Helper()
	settingsSvc := newMockSettingsService()
	svc, err := NewService(bookmarks, settingsSvc, newTestRedis(t), zap.NewNop())
	require.NoError(t, err)
	return svc, settingsSvc
}

func TestServiceHydratesFromSettings(t *testing.T) {
	settingsSvc := newMockSettingsService()
	blob, err := json.Marshal([]Widget{
		{ID: "go", Type: WidgetTypeTag, X: 40, Y: 40},
	})
	require.NoError(t, err)
	settingsSvc.doc.DashboardWidgets = blob

	svc, err := NewService(&mockBookmarkService{}, settingsSvc, newTestRedis(t), zap.NewNop())
	require.NoError(t, err)

	widgets := svc.Widgets()
	require.Len(t, widgets, 1)
	assert.Equal(t, "go", widgets[0].ID)
	// Missing sizes were defaulted at load
	assert.Equal(t, DefaultWidgetWidth, widgets[0].W)
}

func TestServiceFlushPersistsWidgets(t *testing.T) {
	svc, settingsSvc := newServiceFixture(t, &mockBookmarkService{})

	ctx := context.Background()
	_, err := svc.AddWidget(ctx, WidgetTypeTag, "go", 100, 100)
	require.NoError(t, err)
	_, err = svc.AddWidget(ctx, WidgetTypeFolder, uuid.New().String(), 500, 100)
	require.NoError(t, err)

	require.NoError(t, svc.Flush(ctx))

	persisted := settingsSvc.persistedWidgets(t)
	require.Len(t, persisted, 2)
	assert.Equal(t, "go", persisted[0].ID)
	assert.Equal(t, WidgetTypeFolder, persisted[1].Type)
}

func TestServiceGestureUsesSnapPreference(t *testing.T) {
	svc, _ := newServiceFixture(t, &mockBookmarkService{})

	ctx := context.Background()
	_, err := svc.AddWidget(ctx, WidgetTypeTag, "go", 50, 50)
	require.NoError(t, err)

	_, err = svc.Gesture(ctx, PointerEvent{Phase: PhaseDown, Kind: KindDrag, WidgetIndex: 0, X: 0, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, StateDragging, svc.GestureState())

	// Snap is on in the settings fixture: (83, 97) lands on (80, 100)
	w, err := svc.Gesture(ctx, PointerEvent{Phase: PhaseUp, WidgetIndex: 0, X: 33, Y: 47})
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.Equal(t, 80.0, w.X)
	assert.Equal(t, 100.0, w.Y)
	assert.Equal(t, StateIdle, svc.GestureState())
}

func TestServiceNextItemsBatches(t *testing.T) {
	bookmarks := &mockBookmarkService{}
	for i := 0; i < 45; i++ {
		bookmarks.bookmarks = append(bookmarks.bookmarks, bookmark.Bookmark{
			ID: uuid.New(), Title: "b", URL: "https://example.com", Tags: "go",
		})
	}
	svc, _ := newServiceFixture(t, bookmarks)

	ctx := context.Background()
	_, err := svc.AddWidget(ctx, WidgetTypeTag, "go", 0, 0)
	require.NoError(t, err)

	batch, done, err := svc.NextItems(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, batch, LazyBatchSize)
	assert.False(t, done)

	batch, done, err = svc.NextItems(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, batch, LazyBatchSize)
	assert.False(t, done)

	batch, done, err = svc.NextItems(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, batch, 5)
	assert.True(t, done)
}

func TestServiceNextItemsResetOnMutation(t *testing.T) {
	bookmarks := &mockBookmarkService{}
	for i := 0; i < 30; i++ {
		bookmarks.bookmarks = append(bookmarks.bookmarks, bookmark.Bookmark{
			ID: uuid.New(), Title: "b", URL: "https://example.com", Tags: "go",
		})
	}
	svc, _ := newServiceFixture(t, bookmarks)

	ctx := context.Background()
	_, err := svc.AddWidget(ctx, WidgetTypeTag, "go", 0, 0)
	require.NoError(t, err)

	batch, _, err := svc.NextItems(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, batch, 20)

	// Any store mutation triggers a full re-render, so progress resets
	_, err = svc.AddWidget(ctx, WidgetTypeTag, "other", 0, 0)
	require.NoError(t, err)

	batch, done, err := svc.NextItems(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, batch, 20)
	assert.False(t, done)
}

func TestServiceNextItemsStaleWidget(t *testing.T) {
	svc, _ := newServiceFixture(t, &mockBookmarkService{})

	ctx := context.Background()
	// Folder widget whose folder does not exist
	_, err := svc.AddWidget(ctx, WidgetTypeFolder, uuid.New().String(), 0, 0)
	require.NoError(t, err)

	batch, done, err := svc.NextItems(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, batch)
	assert.True(t, done)
}

func TestServiceOpenAllURLs(t *testing.T) {
	bookmarks := &mockBookmarkService{
		bookmarks: []bookmark.Bookmark{
			{ID: uuid.New(), Title: "one", URL: "https://one.example.com", Tags: "go"},
			{ID: uuid.New(), Title: "two", URL: "https://two.example.com", Tags: "go"},
			{ID: uuid.New(), Title: "three", URL: "https://three.example.com", Tags: "rust"},
		},
	}
	svc, _ := newServiceFixture(t, bookmarks)

	ctx := context.Background()
	_, err := svc.AddWidget(ctx, WidgetTypeTag, "go", 0, 0)
	require.NoError(t, err)

	urls, err := svc.OpenAllURLs(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://one.example.com", "https://two.example.com"}, urls)

	_, err = svc.OpenAllURLs(ctx, 7)
	assert.ErrorIs(t, err, ErrWidgetNotFound)
}

func TestServiceReloadReplacesState(t *testing.T) {
	svc, settingsSvc := newServiceFixture(t, &mockBookmarkService{})

	ctx := context.Background()
	_, err := svc.AddWidget(ctx, WidgetTypeTag, "go", 0, 0)
	require.NoError(t, err)

	// Simulate a view restore writing a different blob into settings
	blob, err := json.Marshal([]Widget{
		{ID: "rust", Type: WidgetTypeTag, X: 0, Y: 0, W: 320, H: 400},
		{ID: "docs", Type: WidgetTypeTag, X: 340, Y: 0, W: 320, H: 400},
	})
	require.NoError(t, err)
	settingsSvc.mu.Lock()
	settingsSvc.doc.DashboardWidgets = blob
	settingsSvc.mu.Unlock()

	require.NoError(t, svc.Reload(ctx))

	widgets := svc.Widgets()
	require.Len(t, widgets, 2)
	assert.Equal(t, "rust", widgets[0].ID)
	assert.Equal(t, "docs", widgets[1].ID)
}

func TestServiceUpdateWidgetPublishesEvent(t *testing.T) {
	settingsSvc := newMockSettingsService()
	redisClient := newTestRedis(t)
	svc, err := NewService(&mockBookmarkService{}, settingsSvc, redisClient, zap.NewNop())
	require.NoError(t, err)

	_, err = svc.AddWidget(context.Background(), WidgetTypeTag, "go", 0, 0)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan *events.DashboardEvent, 8)
	go func() {
		_ = redisClient.SubscribeToDashboardEvents(ctx, func(ev *events.DashboardEvent) error {
			got <- ev
			return nil
		})
	}()
	// Let the subscription register before publishing
	time.Sleep(100 * time.Millisecond)

	color := "#ff8800"
	_, err = svc.UpdateWidget(ctx, 0, WidgetPatch{Color: &color})
	require.NoError(t, err)

	// The debounced persistence also publishes a layout event, so scan
	// until the widget update shows up
	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev := <-got:
			if ev.EventType == events.EventTypeWidgetUpdate {
				return
			}
		case <-deadline:
			t.Fatal("no widget update event received")
		}
	}
}
