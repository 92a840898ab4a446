package dashboard

import (
	"errors"
	"sync"
)

var (
	// ErrWidgetExists is surfaced to the user as the duplicate notice
	// ("Widget already exists on dashboard").
	ErrWidgetExists    = errors.New("widget already exists on dashboard")
	ErrWidgetNotFound  = errors.New("widget not found")
	ErrInvalidWidget   = errors.New("invalid widget")
	ErrIndexOutOfRange = errors.New("widget index out of range")
)

// ChangeListener is invoked after every store mutation with a copy of
// the widget list. The service hooks persistence and event publication
// here; render is always re-derived from the live list.
type ChangeListener func(widgets []Widget)

// Store is the canonical ordered list of widget descriptors, the
// single source of truth for the dashboard canvas. Array order is
// insertion order; it is the deterministic input to auto-layout and
// the persisted representation.
type Store struct {
	mu       sync.Mutex
	widgets  []Widget
	listener ChangeListener
}

func NewStore() *Store {
	return &Store{}
}

// SetListener registers the mutation listener. Must be called before
// the store is shared.
func (s *Store) SetListener(l ChangeListener) {
	s.listener = l
}

// Add appends a new widget with the default size. The (type, id) pair
// is the uniqueness key; a duplicate add is a no-op returning
// ErrWidgetExists. tag-analytics widgets get the default settings bag;
// any other type never carries one.
func (s *Store) Add(typ WidgetType, id string, x, y float64) (*Widget, error) {
	if !typ.IsValid() || id == "" {
		return nil, ErrInvalidWidget
	}

	s.mu.Lock()
	for _, w := range s.widgets {
		if w.Type == typ && w.ID == id {
			s.mu.Unlock()
			return nil, ErrWidgetExists
		}
	}

	w := Widget{
		ID:   id,
		Type: typ,
		X:    x,
		Y:    y,
		W:    DefaultWidgetWidth,
		H:    DefaultWidgetHeight,
	}
	if typ == WidgetTypeTagAnalytics {
		w.Settings = DefaultAnalyticsSettings()
	}
	s.widgets = append(s.widgets, w)
	list := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(list)
	return &w, nil
}

// Remove deletes the widget at the given index
func (s *Store) Remove(index int) error {
	s.mu.Lock()
	if index < 0 || index >= len(s.widgets) {
		s.mu.Unlock()
		return ErrIndexOutOfRange
	}
	s.widgets = append(s.widgets[:index], s.widgets[index+1:]...)
	list := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(list)
	return nil
}

// Update applies a partial patch to the widget at the given index.
// Settings patches are only honored for tag-analytics widgets.
func (s *Store) Update(index int, patch WidgetPatch) (*Widget, error) {
	s.mu.Lock()
	if index < 0 || index >= len(s.widgets) {
		s.mu.Unlock()
		return nil, ErrIndexOutOfRange
	}

	w := &s.widgets[index]
	if patch.X != nil {
		w.X = *patch.X
	}
	if patch.Y != nil {
		w.Y = *patch.Y
	}
	if patch.W != nil {
		w.W = *patch.W
	}
	if patch.H != nil {
		w.H = *patch.H
	}
	if patch.Sort != nil {
		w.Sort = *patch.Sort
	}
	if patch.Color != nil {
		w.Color = *patch.Color
	}
	if patch.Settings != nil && w.Type == WidgetTypeTagAnalytics {
		w.Settings = patch.Settings
	}
	updated := *w
	list := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(list)
	return &updated, nil
}

// Clear removes every widget. User confirmation is the caller's concern.
func (s *Store) Clear() {
	s.mu.Lock()
	s.widgets = nil
	list := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(list)
}

// AutoLayout re-packs all widgets on the fixed grid and returns the
// new arrangement.
func (s *Store) AutoLayout() []Widget {
	s.mu.Lock()
	s.widgets = AutoPack(s.widgets)
	list := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(list)
	return list
}

// List returns a copy of the widget list in insertion order
func (s *Store) List() []Widget {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Get returns the widget at the given index
func (s *Store) Get(index int) (*Widget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.widgets) {
		return nil, ErrIndexOutOfRange
	}
	w := s.widgets[index]
	return &w, nil
}

// Len returns the number of widgets
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.widgets)
}

// Load replaces the list without notifying the listener. Used when
// hydrating from the settings document and when restoring a view
// snapshot; both already are the persisted state.
func (s *Store) Load(widgets []Widget) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.widgets = make([]Widget, len(widgets))
	copy(s.widgets, widgets)
	// Default missing fields the persisted blob may lack
	for i := range s.widgets {
		if s.widgets[i].W == 0 {
			s.widgets[i].W = DefaultWidgetWidth
		}
		if s.widgets[i].H == 0 {
			s.widgets[i].H = DefaultWidgetHeight
		}
		if s.widgets[i].Type == WidgetTypeTagAnalytics && s.widgets[i].Settings == nil {
			s.widgets[i].Settings = DefaultAnalyticsSettings()
		}
		if s.widgets[i].Type != WidgetTypeTagAnalytics {
			s.widgets[i].Settings = nil
		}
	}
}

func (s *Store) snapshotLocked() []Widget {
	list := make([]Widget, len(s.widgets))
	copy(list, s.widgets)
	return list
}

func (s *Store) notify(list []Widget) {
	if s.listener != nil {
		s.listener(list)
	}
}
