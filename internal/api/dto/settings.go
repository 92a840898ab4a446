package dto

import "encoding/json"

// UpdateSettingsRequest represents a partial settings update; omitted
// fields are left unchanged
type UpdateSettingsRequest struct {
	DashboardWidgets      json.RawMessage `json:"dashboard_widgets,omitempty"`
	SnapToGrid            *bool           `json:"snap_to_grid,omitempty"`
	DashboardMode         *string         `json:"dashboard_mode,omitempty"`
	DashboardTags         json.RawMessage `json:"dashboard_tags,omitempty"`
	DashboardSort         *string         `json:"dashboard_sort,omitempty"`
	WidgetOrder           *string         `json:"widget_order,omitempty"`
	IncludeChildBookmarks *bool           `json:"include_child_bookmarks,omitempty"`
}

// SettingsResponse represents the full settings document
type SettingsResponse struct {
	DashboardWidgets      json.RawMessage `json:"dashboard_widgets"`
	SnapToGrid            bool            `json:"snap_to_grid"`
	DashboardMode         string          `json:"dashboard_mode"`
	DashboardTags         json.RawMessage `json:"dashboard_tags"`
	DashboardSort         string          `json:"dashboard_sort"`
	WidgetOrder           string          `json:"widget_order"`
	IncludeChildBookmarks bool            `json:"include_child_bookmarks"`
}
