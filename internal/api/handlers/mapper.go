package handlers

import (
	"encoding/json"

	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/api/dto"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/analytics"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/bookmark"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/dashboard"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/settings"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/views"
)

// BookmarkToResponse converts a domain bookmark to its API representation
func BookmarkToResponse(b *bookmark.Bookmark) dto.BookmarkResponse {
	tags := b.TagList()
	if tags == nil {
		tags = []string{}
	}
	return dto.BookmarkResponse{
		ID:          b.ID,
		Title:       b.Title,
		URL:         b.URL,
		Description: b.Description,
		FolderID:    b.FolderID,
		Tags:        tags,
		ClickCount:  b.ClickCount,
		IsFavorite:  b.IsFavorite,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func BookmarksToResponse(items []bookmark.Bookmark) []dto.BookmarkResponse {
	out := make([]dto.BookmarkResponse, 0, len(items))
	for i := range items {
		out = append(out, BookmarkToResponse(&items[i]))
	}
	return out
}

func FolderToResponse(f *bookmark.Folder) dto.FolderResponse {
	return dto.FolderResponse{
		ID:       f.ID,
		Name:     f.Name,
		Color:    f.Color,
		ParentID: f.ParentID,
	}
}

func analyticsSettingsToDTO(s *dashboard.AnalyticsSettings) *dto.AnalyticsSettingsPayload {
	if s == nil {
		return nil
	}
	return &dto.AnalyticsSettingsPayload{
		Metric:   s.Metric,
		Limit:    s.Limit,
		PairSort: s.PairSort,
		Colors:   s.Colors,
	}
}

func analyticsSettingsFromDTO(p *dto.AnalyticsSettingsPayload) *dashboard.AnalyticsSettings {
	if p == nil {
		return nil
	}
	return &dashboard.AnalyticsSettings{
		Metric:   p.Metric,
		Limit:    p.Limit,
		PairSort: p.PairSort,
		Colors:   p.Colors,
	}
}

// WidgetToResponse converts a widget at its list index to the API shape.
// The index doubles as the widget's address in mutation endpoints.
func WidgetToResponse(index int, w dashboard.Widget) dto.WidgetResponse {
	return dto.WidgetResponse{
		Index:    index,
		ID:       w.ID,
		Type:     string(w.Type),
		X:        w.X,
		Y:        w.Y,
		W:        w.W,
		H:        w.H,
		Sort:     w.Sort,
		Color:    w.Color,
		Settings: analyticsSettingsToDTO(w.Settings),
	}
}

func WidgetsToResponse(widgets []dashboard.Widget) []dto.WidgetResponse {
	out := make([]dto.WidgetResponse, 0, len(widgets))
	for i, w := range widgets {
		out = append(out, WidgetToResponse(i, w))
	}
	return out
}

func ViewToResponse(v *views.DashboardView) dto.ViewResponse {
	return dto.ViewResponse{
		ID:                    v.ID,
		Name:                  v.Name,
		Mode:                  v.Mode,
		Tags:                  json.RawMessage(v.Tags),
		BookmarkSort:          v.BookmarkSort,
		WidgetOrder:           v.WidgetOrder,
		Widgets:               json.RawMessage(v.Widgets),
		IncludeChildBookmarks: v.IncludeChildBookmarks,
		ShortcutURL:           v.ShortcutURL(),
		CreatedAt:             v.CreatedAt,
	}
}

func SettingsToResponse(s *settings.Settings) dto.SettingsResponse {
	return dto.SettingsResponse{
		DashboardWidgets:      json.RawMessage(s.DashboardWidgets),
		SnapToGrid:            s.SnapToGrid,
		DashboardMode:         s.DashboardMode,
		DashboardTags:         json.RawMessage(s.DashboardTags),
		DashboardSort:         s.DashboardSort,
		WidgetOrder:           s.WidgetOrder,
		IncludeChildBookmarks: s.IncludeChildBookmarks,
	}
}

func TagAnalyticsToResponse(a *analytics.TagAnalytics) dto.TagAnalyticsResponse {
	resp := dto.TagAnalyticsResponse{
		Tags:         []dto.TagStatResponse{},
		Cooccurrence: []dto.TagPairResponse{},
	}
	for _, t := range a.Tags {
		resp.Tags = append(resp.Tags, dto.TagStatResponse{
			Name:           t.Name,
			Count:          t.Count,
			ClickCountSum:  t.ClickCountSum,
			FavoritesCount: t.FavoritesCount,
		})
	}
	for _, p := range a.Cooccurrence {
		resp.Cooccurrence = append(resp.Cooccurrence, dto.TagPairResponse{
			TagNameA: p.TagNameA,
			TagNameB: p.TagNameB,
			Count:    p.Count,
		})
	}
	return resp
}
