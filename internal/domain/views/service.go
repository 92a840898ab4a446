package views

import (
	"context"
	"strings"
	"time"

	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/events"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/settings"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/infrastructure/cache"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Save(ctx context.Context, name string) (*DashboardView, error)
	List(ctx context.Context) ([]DashboardView, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) (*settings.Settings, error)
}

type service struct {
	repo     Repository
	settings settings.Service
	redis    *cache.RedisClient
	logger   *zap.Logger
}

func NewService(repo Repository, settingsSvc settings.Service, redis *cache.RedisClient, logger *zap.Logger) Service {
	return &service{repo: repo, settings: settingsSvc, redis: redis, logger: logger}
}

// Save captures the current dashboard configuration from the settings
// document under the given name.
func (s *service) Save(ctx context.Context, name string) (*DashboardView, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}

	snap, err := s.settings.Capture(ctx)
	if err != nil {
		return nil, err
	}

	view := &DashboardView{
		ID:                    uuid.New(),
		Name:                  name,
		Mode:                  snap.Mode,
		Tags:                  snap.Tags,
		BookmarkSort:          snap.BookmarkSort,
		WidgetOrder:           snap.WidgetOrder,
		Widgets:               snap.Widgets,
		IncludeChildBookmarks: snap.IncludeChildBookmarks,
		CreatedAt:             time.Now(),
	}

	if err := s.repo.Create(ctx, view); err != nil {
		return nil, err
	}

	return view, nil
}

func (s *service) List(ctx context.Context) ([]DashboardView, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Restore writes the snapshot back into the settings document and
// returns the resulting full document. The caller reloads its entire
// dashboard state from it: a full resync, not a merge, so client and
// server never drift on what "current configuration" means.
func (s *service) Restore(ctx context.Context, id uuid.UUID) (*settings.Settings, error) {
	view, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	doc, err := s.settings.ApplySnapshot(ctx, settings.Snapshot{
		Mode:                  view.Mode,
		Tags:                  view.Tags,
		BookmarkSort:          view.BookmarkSort,
		WidgetOrder:           view.WidgetOrder,
		Widgets:               view.Widgets,
		IncludeChildBookmarks: view.IncludeChildBookmarks,
	})
	if err != nil {
		return nil, err
	}

	event := &events.DashboardEvent{
		EventType: events.EventTypeViewRestore,
		EntityID:  view.ID,
		Timestamp: time.Now().UTC(),
	}
	if err := s.redis.PublishDashboardEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish view restore event", zap.Error(err))
	}

	return doc, nil
}
