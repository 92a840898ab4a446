package views

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DashboardView is a named, immutable snapshot of the full dashboard
// configuration. Lifecycle is fully server-owned: created on demand,
// deleted as a whole, never edited in place.
type DashboardView struct {
	ID                    uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name                  string         `gorm:"size:255;not null" json:"name"`
	Mode                  string         `gorm:"size:32" json:"mode"`
	Tags                  datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	BookmarkSort          string         `gorm:"size:32" json:"bookmark_sort"`
	WidgetOrder           string         `gorm:"size:32" json:"widget_order"`
	Widgets               datatypes.JSON `gorm:"type:jsonb" json:"widgets"`
	IncludeChildBookmarks bool           `gorm:"not null;default:false" json:"include_child_bookmarks"`
	CreatedAt             time.Time      `gorm:"not null;default:current_timestamp" json:"created_at"`
}

func (DashboardView) TableName() string {
	return "dashboard_views"
}

func (v *DashboardView) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	v.CreatedAt = time.Now()
	return nil
}

// ShortcutURL is the view: scheme URL offered as a one-click restore
// bookmark after saving.
func (v *DashboardView) ShortcutURL() string {
	return "view:" + v.ID.String()
}

// Common errors
var (
	ErrInvalidName = NewError("view name is required")
)

// Error represents a domain error
type Error struct {
	message string
}

// NewError creates a new Error instance
func NewError(message string) *Error {
	return &Error{message: message}
}

// Error returns the error message
func (e *Error) Error() string {
	return e.message
}
