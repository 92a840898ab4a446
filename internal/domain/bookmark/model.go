package bookmark

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bookmark represents a saved link in the system
type Bookmark struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	URL         string     `gorm:"type:text;not null" json:"url"`
	Description string     `gorm:"type:text" json:"description"`
	FolderID    *uuid.UUID `gorm:"type:uuid;index" json:"folder_id,omitempty"`
	Tags        string     `gorm:"type:text" json:"tags"` // comma-separated tag names
	ClickCount  int        `gorm:"not null;default:0" json:"click_count"`
	IsFavorite  bool       `gorm:"not null;default:false;index" json:"is_favorite"`
	CreatedAt   time.Time  `gorm:"not null;default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null;default:current_timestamp;autoUpdateTime" json:"updated_at"`
}

// Folder groups bookmarks into a hierarchy via ParentID
type Folder struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name      string     `gorm:"size:255;not null" json:"name"`
	Color     string     `gorm:"size:16" json:"color"`
	ParentID  *uuid.UUID `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	CreatedAt time.Time  `gorm:"not null;default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null;default:current_timestamp;autoUpdateTime" json:"updated_at"`
}

// Common errors
var (
	ErrInvalidInput = NewError("invalid input")
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

func (Bookmark) TableName() string {
	return "bookmarks"
}

func (Folder) TableName() string {
	return "folders"
}

// TagList splits the comma-separated tag string into trimmed names.
// Empty segments are dropped.
func (b *Bookmark) TagList() []string {
	if b.Tags == "" {
		return nil
	}
	parts := strings.Split(b.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	// Keep the no-tags result nil whether or not separators were present
	if len(tags) == 0 {
		return nil
	}
	return tags
}

// HasTag reports whether the bookmark carries the tag (exact, trimmed match)
func (b *Bookmark) HasTag(name string) bool {
	for _, t := range b.TagList() {
		if t == name {
			return true
		}
	}
	return false
}

// BeforeCreate is called before creating a new bookmark record
func (b *Bookmark) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Title == "" || b.URL == "" {
		return ErrInvalidInput
	}
	b.CreatedAt = time.Now()
	b.UpdatedAt = time.Now()
	return nil
}

// BeforeCreate is called before creating a new folder record
func (f *Folder) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.Name == "" {
		return ErrInvalidInput
	}
	f.CreatedAt = time.Now()
	f.UpdatedAt = time.Now()
	return nil
}

// BookmarkFilter narrows FindAll queries
type BookmarkFilter struct {
	FolderID   *uuid.UUID
	IsFavorite *bool
	Search     string
	Page       int
	PageSize   int
}
