package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SaveViewRequest represents the request to save the current dashboard
// configuration under a name
type SaveViewRequest struct {
	Name string `json:"name" binding:"required"`
}

// ViewResponse represents a saved dashboard view in API responses.
// ShortcutURL is the view: scheme link a client can bookmark for
// one-click restore.
type ViewResponse struct {
	ID                    uuid.UUID       `json:"id"`
	Name                  string          `json:"name"`
	Mode                  string          `json:"mode"`
	Tags                  json.RawMessage `json:"tags"`
	BookmarkSort          string          `json:"bookmark_sort"`
	WidgetOrder           string          `json:"widget_order"`
	Widgets               json.RawMessage `json:"widgets"`
	IncludeChildBookmarks bool            `json:"include_child_bookmarks"`
	ShortcutURL           string          `json:"shortcut_url"`
	CreatedAt             time.Time       `json:"created_at"`
}
