package views

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/settings"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/infrastructure/cache"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// Mock view repository backed by a slice
type mockRepository struct {
	views []DashboardView
}

func (m *mockRepository) Create(ctx context.Context, view *DashboardView) error {
	m.views = append(m.views, *view)
	return nil
}

func (m *mockRepository) FindByID(ctx context.Context, id uuid.UUID) (*DashboardView, error) {
	for i := range m.views {
		if m.views[i].ID == id {
			v := m.views[i]
			return &v, nil
		}
	}
	return nil, ErrViewNotFound
}

func (m *mockRepository) FindAll(ctx context.Context) ([]DashboardView, error) {
	return m.views, nil
}

func (m *mockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range m.views {
		if m.views[i].ID == id {
			m.views = append(m.views[:i], m.views[i+1:]...)
			return nil
		}
	}
	return ErrViewNotFound
}

// Mock settings service holding a snapshot-shaped document
type mockSettingsService struct {
	snap    settings.Snapshot
	applied *settings.Snapshot
}

func (m *mockSettingsService) Get(ctx context.Context) (*settings.Settings, error) {
	return &settings.Settings{}, nil
}

func (m *mockSettingsService) Update(ctx context.Context, input settings.UpdateInput) (*settings.Settings, error) {
	return &settings.Settings{}, nil
}

func (m *mockSettingsService) UpdateDashboardWidgets(ctx context.Context, widgets datatypes.JSON) error {
	return nil
}

func (m *mockSettingsService) Capture(ctx context.Context) (*settings.Snapshot, error) {
	snap := m.snap
	return &snap, nil
}

func (m *mockSettingsService) ApplySnapshot(ctx context.Context, snap settings.Snapshot) (*settings.Settings, error) {
	m.applied = &snap
	return &settings.Settings{
		DashboardMode:         snap.Mode,
		DashboardTags:         snap.Tags,
		DashboardSort:         snap.BookmarkSort,
		WidgetOrder:           snap.WidgetOrder,
		DashboardWidgets:      snap.Widgets,
		IncludeChildBookmarks: snap.IncludeChildBookmarks,
	}, nil
}

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

func fixtureSnapshot() settings.Snapshot {
	return settings.Snapshot{
		Mode:                  "widgets",
		Tags:                  datatypes.JSON([]byte(`["go"]`)),
		BookmarkSort:          "newest",
		WidgetOrder:           "custom",
		Widgets:               datatypes.JSON([]byte(`[{"id":"go","type":"tag","x":0,"y":0,"w":320,"h":400}]`)),
		IncludeChildBookmarks: true,
	}
}

func newServiceFixture(t *testing.T) (Service, *mockRepository, *mockSettingsService) {
	t.Helper()
	repo := &mockRepository{}
	settingsSvc := &mockSettingsService{snap: fixtureSnapshot()}
	svc := NewService(repo, settingsSvc, newTestRedis(t), zap.NewNop())
	return svc, repo, settingsSvc
}

func TestSaveCapturesCurrentConfiguration(t *testing.T) {
	svc, repo, _ := newServiceFixture(t)

	view, err := svc.Save(context.Background(), "  Work setup  ")
	require.NoError(t, err)
	assert.Equal(t, "Work setup", view.Name)
	assert.NotEqual(t, uuid.Nil, view.ID)
	assert.Equal(t, "widgets", view.Mode)
	assert.True(t, view.IncludeChildBookmarks)
	assert.JSONEq(t, `[{"id":"go","type":"tag","x":0,"y":0,"w":320,"h":400}]`, string(view.Widgets))
	assert.Equal(t, "view:"+view.ID.String(), view.ShortcutURL())

	require.Len(t, repo.views, 1)
}

func TestSaveRejectsBlankName(t *testing.T) {
	svc, repo, _ := newServiceFixture(t)

	_, err := svc.Save(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidName)
	assert.Empty(t, repo.views)
}

func TestRestoreRoundTrip(t *testing.T) {
	svc, _, settingsSvc := newServiceFixture(t)

	view, err := svc.Save(context.Background(), "Work setup")
	require.NoError(t, err)

	doc, err := svc.Restore(context.Background(), view.ID)
	require.NoError(t, err)

	// The applied snapshot equals what was captured at save time
	require.NotNil(t, settingsSvc.applied)
	assert.Equal(t, fixtureSnapshot(), *settingsSvc.applied)

	// The returned document reflects the restored configuration
	assert.Equal(t, "widgets", doc.DashboardMode)
	assert.True(t, doc.IncludeChildBookmarks)
	assert.JSONEq(t, string(view.Widgets), string(doc.DashboardWidgets))
}

func TestRestoreMissingView(t *testing.T) {
	svc, _, settingsSvc := newServiceFixture(t)

	_, err := svc.Restore(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrViewNotFound)
	assert.Nil(t, settingsSvc.applied, "nothing is applied when the view is gone")
}

func TestDeleteView(t *testing.T) {
	svc, repo, _ := newServiceFixture(t)

	view, err := svc.Save(context.Background(), "Temp")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), view.ID))
	assert.Empty(t, repo.views)

	assert.ErrorIs(t, svc.Delete(context.Background(), view.ID), ErrViewNotFound)
}

func TestListViews(t *testing.T) {
	svc, _, _ := newServiceFixture(t)

	_, err := svc.Save(context.Background(), "One")
	require.NoError(t, err)
	_, err = svc.Save(context.Background(), "Two")
	require.NoError(t, err)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
