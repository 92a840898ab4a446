package bookmark

import (
	"context"
	"time"

	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/events"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/infrastructure/cache"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	CreateBookmark(ctx context.Context, input CreateBookmarkInput) (*Bookmark, error)
	GetBookmark(ctx context.Context, id uuid.UUID) (*Bookmark, error)
	ListBookmarks(ctx context.Context, filter BookmarkFilter) ([]Bookmark, int64, error)
	UpdateBookmark(ctx context.Context, id uuid.UUID, input UpdateBookmarkInput) (*Bookmark, error)
	DeleteBookmark(ctx context.Context, id uuid.UUID) error
	TrackClick(ctx context.Context, id uuid.UUID) error

	CreateFolder(ctx context.Context, input CreateFolderInput) (*Folder, error)
	GetFolder(ctx context.Context, id uuid.UUID) (*Folder, error)
	ListFolders(ctx context.Context) ([]Folder, error)
	DeleteFolder(ctx context.Context, id uuid.UUID) error
}

type CreateBookmarkInput struct {
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Description string     `json:"description"`
	FolderID    *uuid.UUID `json:"folder_id"`
	Tags        string     `json:"tags"`
	IsFavorite  bool       `json:"is_favorite"`
}

// UpdateBookmarkInput is a partial bookmark update; nil fields are left as-is
type UpdateBookmarkInput struct {
	Title       *string    `json:"title"`
	URL         *string    `json:"url"`
	Description *string    `json:"description"`
	FolderID    *uuid.UUID `json:"folder_id"`
	Tags        *string    `json:"tags"`
	IsFavorite  *bool      `json:"is_favorite"`
}

type CreateFolderInput struct {
	Name     string     `json:"name"`
	Color    string     `json:"color"`
	ParentID *uuid.UUID `json:"parent_id"`
}

type service struct {
	repo   Repository
	redis  *cache.RedisClient
	logger *zap.Logger
}

func NewService(repo Repository, redis *cache.RedisClient, logger *zap.Logger) Service {
	return &service{repo: repo, redis: redis, logger: logger}
}

func (s *service) CreateBookmark(ctx context.Context, input CreateBookmarkInput) (*Bookmark, error) {
	if input.Title == "" || input.URL == "" {
		return nil, ErrInvalidInput
	}

	b := &Bookmark{
		ID:          uuid.New(),
		Title:       input.Title,
		URL:         input.URL,
		Description: input.Description,
		FolderID:    input.FolderID,
		Tags:        input.Tags,
		IsFavorite:  input.IsFavorite,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.publishInvalidate(ctx, b.ID, "bookmark_created")

	return b, nil
}

func (s *service) GetBookmark(ctx context.Context, id uuid.UUID) (*Bookmark, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListBookmarks(ctx context.Context, filter BookmarkFilter) ([]Bookmark, int64, error) {
	return s.repo.FindAll(ctx, filter)
}

// UpdateBookmark applies a partial patch to an existing bookmark. Tag
// edits invalidate the cached tag analytics through the event channel.
func (s *service) UpdateBookmark(ctx context.Context, id uuid.UUID, input UpdateBookmarkInput) (*Bookmark, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		b.Title = *input.Title
	}
	if input.URL != nil {
		b.URL = *input.URL
	}
	if input.Description != nil {
		b.Description = *input.Description
	}
	if input.FolderID != nil {
		b.FolderID = input.FolderID
	}
	if input.Tags != nil {
		b.Tags = *input.Tags
	}
	if input.IsFavorite != nil {
		b.IsFavorite = *input.IsFavorite
	}

	if b.Title == "" || b.URL == "" {
		return nil, ErrInvalidInput
	}
	b.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.publishInvalidate(ctx, b.ID, events.EventTypeBookmarkUpdate)

	return b, nil
}

func (s *service) DeleteBookmark(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publishInvalidate(ctx, id, "bookmark_deleted")
	return nil
}

// TrackClick increments the bookmark's click counter, which feeds the
// click_count_sum analytics metric.
func (s *service) TrackClick(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.IncrementClickCount(ctx, id); err != nil {
		return err
	}
	s.publishInvalidate(ctx, id, "bookmark_clicked")
	return nil
}

func (s *service) CreateFolder(ctx context.Context, input CreateFolderInput) (*Folder, error) {
	if input.Name == "" {
		return nil, ErrInvalidInput
	}

	f := &Folder{
		ID:        uuid.New(),
		Name:      input.Name,
		Color:     input.Color,
		ParentID:  input.ParentID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.repo.CreateFolder(ctx, f); err != nil {
		return nil, err
	}

	return f, nil
}

func (s *service) GetFolder(ctx context.Context, id uuid.UUID) (*Folder, error) {
	return s.repo.FindFolderByID(ctx, id)
}

func (s *service) ListFolders(ctx context.Context) ([]Folder, error) {
	return s.repo.FindAllFolders(ctx)
}

// DeleteFolder removes the folder row only. Bookmarks keep their
// folder_id; widgets pointing at the gone folder resolve to nil and
// are skipped in render.
func (s *service) DeleteFolder(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteFolder(ctx, id)
}

// publishInvalidate notifies listeners that bookmark-derived caches
// (tag analytics in particular) are stale.
func (s *service) publishInvalidate(ctx context.Context, id uuid.UUID, action string) {
	event := &events.DashboardEvent{
		EventType: events.DashboardEventCacheInvalidate,
		EntityID:  id,
		Timestamp: time.Now().UTC(),
		Details: map[string]interface{}{
			"action": action,
		},
	}
	if err := s.redis.PublishDashboardEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish dashboard event", zap.Error(err))
	}
}
