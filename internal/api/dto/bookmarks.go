package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateBookmarkRequest represents the request to create a new bookmark
type CreateBookmarkRequest struct {
	Title       string     `json:"title" binding:"required"`
	URL         string     `json:"url" binding:"required"`
	Description string     `json:"description"`
	FolderID    *uuid.UUID `json:"folder_id"`
	Tags        string     `json:"tags"`
	IsFavorite  bool       `json:"is_favorite"`
}

// UpdateBookmarkRequest represents a partial bookmark update
type UpdateBookmarkRequest struct {
	Title       *string    `json:"title"`
	URL         *string    `json:"url"`
	Description *string    `json:"description"`
	FolderID    *uuid.UUID `json:"folder_id"`
	Tags        *string    `json:"tags"`
	IsFavorite  *bool      `json:"is_favorite"`
}

// CreateFolderRequest represents the request to create a new folder
type CreateFolderRequest struct {
	Name     string     `json:"name" binding:"required"`
	Color    string     `json:"color"`
	ParentID *uuid.UUID `json:"parent_id"`
}

// BookmarkResponse represents a bookmark in API responses
type BookmarkResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Description string     `json:"description,omitempty"`
	FolderID    *uuid.UUID `json:"folder_id,omitempty"`
	Tags        []string   `json:"tags"`
	ClickCount  int        `json:"click_count"`
	IsFavorite  bool       `json:"is_favorite"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// BookmarkListResponse represents the response for listing bookmarks
type BookmarkListResponse struct {
	Bookmarks  []BookmarkResponse `json:"bookmarks"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
}

// FolderResponse represents a folder in API responses
type FolderResponse struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	Color    string     `json:"color,omitempty"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
}
