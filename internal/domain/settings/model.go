package settings

import (
	"time"

	"gorm.io/datatypes"
)

// Settings is the single-user settings document. The dashboard widget
// list is stored verbatim as a JSON array inside it; there is no schema
// migration logic, unknown or missing fields are defaulted at read
// time.
type Settings struct {
	ID                    int            `gorm:"primaryKey" json:"-"`
	DashboardWidgets      datatypes.JSON `gorm:"type:jsonb" json:"dashboard_widgets"`
	SnapToGrid            bool           `gorm:"not null;default:true" json:"snap_to_grid"`
	DashboardMode         string         `gorm:"size:32" json:"dashboard_mode"`
	DashboardTags         datatypes.JSON `gorm:"type:jsonb" json:"dashboard_tags"`
	DashboardSort         string         `gorm:"size:32" json:"dashboard_sort"`
	WidgetOrder           string         `gorm:"size:32" json:"widget_order"`
	IncludeChildBookmarks bool           `gorm:"not null;default:false" json:"include_child_bookmarks"`
	UpdatedAt             time.Time      `gorm:"not null;default:current_timestamp;autoUpdateTime" json:"updated_at"`
}

func (Settings) TableName() string {
	return "settings"
}

// settingsRowID pins the document to a single row
const settingsRowID = 1

// Defaults for fields missing from the persisted document
const (
	DefaultDashboardMode = "widgets"
	DefaultDashboardSort = "newest"
	DefaultWidgetOrder   = "custom"
)

// UpdateInput is a partial settings update; nil fields are left as-is
type UpdateInput struct {
	DashboardWidgets      datatypes.JSON `json:"dashboard_widgets,omitempty"`
	SnapToGrid            *bool          `json:"snap_to_grid,omitempty"`
	DashboardMode         *string        `json:"dashboard_mode,omitempty"`
	DashboardTags         datatypes.JSON `json:"dashboard_tags,omitempty"`
	DashboardSort         *string        `json:"dashboard_sort,omitempty"`
	WidgetOrder           *string        `json:"widget_order,omitempty"`
	IncludeChildBookmarks *bool          `json:"include_child_bookmarks,omitempty"`
}

// Snapshot is the dashboard configuration captured into (and restored
// from) a named view.
type Snapshot struct {
	Mode                  string         `json:"mode"`
	Tags                  datatypes.JSON `json:"tags"`
	BookmarkSort          string         `json:"bookmark_sort"`
	WidgetOrder           string         `json:"widget_order"`
	Widgets               datatypes.JSON `json:"widgets"`
	IncludeChildBookmarks bool           `json:"include_child_bookmarks"`
}
