package dashboard

import (
	"sync"

	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/bookmark"
)

// Loader implements the viewport-triggered incremental reveal of a
// widget's resolved items. Each widget starts with one batch; every
// sentinel intersection reveals the next LazyBatchSize items until the
// full resolved list is rendered. A per-widget loading flag suppresses
// duplicate batch loads from repeated intersection callbacks while a
// load is in flight. The loader is purely a render concern: it never
// touches the widget store, and it is reset on every full re-render.
type Loader struct {
	mu    sync.Mutex
	state map[string]*loadState
}

type loadState struct {
	rendered int
	loading  bool
	done     bool
}

func NewLoader() *Loader {
	return &Loader{state: make(map[string]*loadState)}
}

// Begin marks a batch load in flight for the widget key. It returns
// false when the widget is already fully rendered or another load is
// in flight, in which case the caller must not fetch.
func (l *Loader) Begin(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	st := l.state[key]
	if st == nil {
		st = &loadState{}
		l.state[key] = st
	}
	if st.loading || st.done {
		return false
	}
	st.loading = true
	return true
}

// Commit takes the full resolved item list, returns the next batch to
// append, and clears the loading flag. done reports that the sentinel
// should be removed (everything rendered).
func (l *Loader) Commit(key string, items []bookmark.Bookmark) (batch []bookmark.Bookmark, done bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	st := l.state[key]
	if st == nil || !st.loading {
		return nil, false
	}
	st.loading = false

	if st.rendered >= len(items) {
		st.done = true
		return nil, true
	}

	end := st.rendered + LazyBatchSize
	if end > len(items) {
		end = len(items)
	}
	batch = items[st.rendered:end]
	st.rendered = end
	st.done = end >= len(items)
	return batch, st.done
}

// Abort clears the loading flag without advancing, for a failed fetch
func (l *Loader) Abort(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if st := l.state[key]; st != nil {
		st.loading = false
	}
}

// Rendered returns how many items the widget has revealed so far
func (l *Loader) Rendered(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if st := l.state[key]; st != nil {
		return st.rendered
	}
	return 0
}

// Reset forgets a single widget's progress
func (l *Loader) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.state, key)
}

// ResetAll forgets all progress. Called on every full dashboard
// re-render.
func (l *Loader) ResetAll() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = make(map[string]*loadState)
}
