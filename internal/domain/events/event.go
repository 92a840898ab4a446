package events

import (
	"time"

	"github.com/google/uuid"
)

// Dashboard event types
const (
	EventTypeBookmarkUpdate = "bookmark_update"
	EventTypeWidgetUpdate   = "widget_update"
	EventTypeViewRestore    = "view_restore"
	EventTypeSettingsUpdate = "settings_update"
)

// DashboardEvent represents a dashboard-related event
type DashboardEvent struct {
	EventType string      `json:"event_type"`
	EntityID  uuid.UUID   `json:"entity_id"`
	Timestamp time.Time   `json:"timestamp"`
	Details   interface{} `json:"details,omitempty"`
}

// DashboardEventTypes defines standard event types for dashboard events
const (
	DashboardEventLayoutUpdate    = "layout_update"
	DashboardEventCacheInvalidate = "cache_invalidate"
)
