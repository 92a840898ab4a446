package dashboard

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/bookmark"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ResolvedContent is the renderable payload for one widget
type ResolvedContent struct {
	Name  string              `json:"name"`
	Color string              `json:"color"`
	Items []bookmark.Bookmark `json:"items"`
	Count string              `json:"count"`
}

// Resolver maps a widget descriptor to renderable content. Resolution
// is read-only: a widget whose folder or tag no longer resolves is
// skipped (nil result), never auto-removed from the store.
type Resolver struct {
	bookmarks bookmark.Service
	logger    *zap.Logger
}

func NewResolver(bookmarks bookmark.Service, logger *zap.Logger) *Resolver {
	return &Resolver{bookmarks: bookmarks, logger: logger}
}

// Resolve returns the content payload for a widget, or nil when the
// referenced entity no longer exists. includeChild controls whether
// folder widgets collect bookmarks from descendant folders too.
func (r *Resolver) Resolve(ctx context.Context, w Widget, includeChild bool) (*ResolvedContent, error) {
	switch w.Type {
	case WidgetTypeFolder:
		return r.resolveFolder(ctx, w, includeChild)
	case WidgetTypeTag:
		return r.resolveTag(ctx, w)
	case WidgetTypeTagAnalytics:
		// Content is aggregated across all tags by the analytics
		// service, not resolved per entity.
		return &ResolvedContent{Name: "Tag Analytics", Color: w.Color, Count: ""}, nil
	}
	return nil, nil
}

func (r *Resolver) resolveFolder(ctx context.Context, w Widget, includeChild bool) (*ResolvedContent, error) {
	folderID, err := uuid.Parse(w.ID)
	if err != nil {
		return nil, nil
	}

	folder, err := r.bookmarks.GetFolder(ctx, folderID)
	if err != nil {
		if err == bookmark.ErrFolderNotFound {
			// Stale descriptor: omit from render, keep the widget
			return nil, nil
		}
		return nil, err
	}

	var ids []uuid.UUID
	if includeChild {
		ids, err = r.descendantFolderIDs(ctx, folderID)
		if err != nil {
			return nil, err
		}
	} else {
		ids = []uuid.UUID{folderID}
	}

	var items []bookmark.Bookmark
	for i := range ids {
		batch, _, err := r.bookmarks.ListBookmarks(ctx, bookmark.BookmarkFilter{FolderID: &ids[i]})
		if err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}

	color := w.Color
	if color == "" {
		color = folder.Color
	}

	return &ResolvedContent{
		Name:  folder.Name,
		Color: color,
		Items: sortItems(items, w.Sort),
		Count: strconv.Itoa(len(items)),
	}, nil
}

// descendantFolderIDs walks the folder hierarchy depth-first from the
// root, returning the root plus every descendant. The visited set
// guards against cycles: hierarchies are acyclic by construction, but
// a corrupt parent pointer must not hang the resolver.
func (r *Resolver) descendantFolderIDs(ctx context.Context, root uuid.UUID) ([]uuid.UUID, error) {
	folders, err := r.bookmarks.ListFolders(ctx)
	if err != nil {
		return nil, err
	}

	children := make(map[uuid.UUID][]uuid.UUID)
	for _, f := range folders {
		if f.ParentID != nil {
			children[*f.ParentID] = append(children[*f.ParentID], f.ID)
		}
	}

	visited := map[uuid.UUID]bool{}
	var ids []uuid.UUID
	stack := []uuid.UUID{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true
		ids = append(ids, id)
		stack = append(stack, children[id]...)
	}
	return ids, nil
}

func (r *Resolver) resolveTag(ctx context.Context, w Widget) (*ResolvedContent, error) {
	all, _, err := r.bookmarks.ListBookmarks(ctx, bookmark.BookmarkFilter{})
	if err != nil {
		return nil, err
	}

	tag := strings.TrimSpace(w.ID)
	var items []bookmark.Bookmark
	for _, b := range all {
		if b.HasTag(tag) {
			items = append(items, b)
		}
	}

	return &ResolvedContent{
		Name:  tag,
		Color: w.Color,
		Items: sortItems(items, w.Sort),
		Count: strconv.Itoa(len(items)),
	}, nil
}

// sortItems applies the per-widget sort override. Absent override
// keeps the repository order.
func sortItems(items []bookmark.Bookmark, mode string) []bookmark.Bookmark {
	switch mode {
	case SortAZ:
		sort.SliceStable(items, func(i, j int) bool {
			return strings.ToLower(items[i].Title) < strings.ToLower(items[j].Title)
		})
	case SortZA:
		sort.SliceStable(items, func(i, j int) bool {
			return strings.ToLower(items[i].Title) > strings.ToLower(items[j].Title)
		})
	}
	return items
}
