package settings

import (
	"context"
	"time"

	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/events"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/infrastructure/cache"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type Service interface {
	Get(ctx context.Context) (*Settings, error)
	Update(ctx context.Context, input UpdateInput) (*Settings, error)
	UpdateDashboardWidgets(ctx context.Context, widgets datatypes.JSON) error
	Capture(ctx context.Context) (*Snapshot, error)
	ApplySnapshot(ctx context.Context, snap Snapshot) (*Settings, error)
}

type service struct {
	repo   Repository
	redis  *cache.RedisClient
	logger *zap.Logger
}

func NewService(repo Repository, redis *cache.RedisClient, logger *zap.Logger) Service {
	return &service{repo: repo, redis: redis, logger: logger}
}

// Get loads the settings document, defaulting anything the persisted
// row is missing. A missing row yields the full default document.
func (s *service) Get(ctx context.Context) (*Settings, error) {
	stored, err := s.repo.Get(ctx)
	if err != nil {
		if err == ErrSettingsNotFound {
			return defaultSettings(), nil
		}
		return nil, err
	}
	applyDefaults(stored)
	return stored, nil
}

func (s *service) Update(ctx context.Context, input UpdateInput) (*Settings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if input.DashboardWidgets != nil {
		current.DashboardWidgets = input.DashboardWidgets
	}
	if input.SnapToGrid != nil {
		current.SnapToGrid = *input.SnapToGrid
	}
	if input.DashboardMode != nil {
		current.DashboardMode = *input.DashboardMode
	}
	if input.DashboardTags != nil {
		current.DashboardTags = input.DashboardTags
	}
	if input.DashboardSort != nil {
		current.DashboardSort = *input.DashboardSort
	}
	if input.WidgetOrder != nil {
		current.WidgetOrder = *input.WidgetOrder
	}
	if input.IncludeChildBookmarks != nil {
		current.IncludeChildBookmarks = *input.IncludeChildBookmarks
	}

	if err := s.repo.Save(ctx, current); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventTypeSettingsUpdate)
	return current, nil
}

// UpdateDashboardWidgets persists only the widget blob. This is the
// debounced write behind every widget store mutation, so it must not
// clobber unrelated settings.
func (s *service) UpdateDashboardWidgets(ctx context.Context, widgets datatypes.JSON) error {
	current, err := s.Get(ctx)
	if err != nil {
		return err
	}
	current.DashboardWidgets = widgets
	if err := s.repo.Save(ctx, current); err != nil {
		return err
	}
	return nil
}

// Capture copies the dashboard configuration out of the settings
// document for a view snapshot.
func (s *service) Capture(ctx context.Context) (*Snapshot, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		Mode:                  current.DashboardMode,
		Tags:                  current.DashboardTags,
		BookmarkSort:          current.DashboardSort,
		WidgetOrder:           current.WidgetOrder,
		Widgets:               current.DashboardWidgets,
		IncludeChildBookmarks: current.IncludeChildBookmarks,
	}, nil
}

// ApplySnapshot overwrites the dashboard portion of the settings
// document with a view snapshot. The caller is expected to reload the
// full document afterwards; restore is a full resync, not a merge.
func (s *service) ApplySnapshot(ctx context.Context, snap Snapshot) (*Settings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	current.DashboardMode = snap.Mode
	current.DashboardTags = snap.Tags
	current.DashboardSort = snap.BookmarkSort
	current.WidgetOrder = snap.WidgetOrder
	current.DashboardWidgets = snap.Widgets
	current.IncludeChildBookmarks = snap.IncludeChildBookmarks
	applyDefaults(current)

	if err := s.repo.Save(ctx, current); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventTypeViewRestore)
	return current, nil
}

func (s *service) publish(ctx context.Context, eventType string) {
	event := &events.DashboardEvent{
		EventType: eventType,
		EntityID:  uuid.Nil,
		Timestamp: time.Now().UTC(),
	}
	if err := s.redis.PublishDashboardEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish dashboard event", zap.Error(err))
	}
}

func defaultSettings() *Settings {
	s := &Settings{
		ID:         settingsRowID,
		SnapToGrid: true,
	}
	applyDefaults(s)
	return s
}

func applyDefaults(s *Settings) {
	if s.DashboardWidgets == nil {
		s.DashboardWidgets = datatypes.JSON([]byte("[]"))
	}
	if s.DashboardTags == nil {
		s.DashboardTags = datatypes.JSON([]byte("[]"))
	}
	if s.DashboardMode == "" {
		s.DashboardMode = DefaultDashboardMode
	}
	if s.DashboardSort == "" {
		s.DashboardSort = DefaultDashboardSort
	}
	if s.WidgetOrder == "" {
		s.WidgetOrder = DefaultWidgetOrder
	}
}
