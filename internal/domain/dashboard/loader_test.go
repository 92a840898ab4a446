package dashboard

import (
	"fmt"
	"testing"

	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/bookmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeItems(n int) []bookmark.Bookmark {
	items := make([]bookmark.Bookmark, n)
	for i := range items {
		items[i].Title = fmt.Sprintf("bookmark %d", i)
	}
	return items
}

func TestLoaderBatches(t *testing.T) {
	l := NewLoader()
	items := makeItems(45)

	// First batch
	require.True(t, l.Begin("tag:a"))
	batch, done := l.Commit("tag:a", items)
	assert.Len(t, batch, LazyBatchSize)
	assert.False(t, done)
	assert.Equal(t, "bookmark 0", batch[0].Title)
	assert.Equal(t, 20, l.Rendered("tag:a"))

	// Second batch
	require.True(t, l.Begin("tag:a"))
	batch, done = l.Commit("tag:a", items)
	assert.Len(t, batch, LazyBatchSize)
	assert.False(t, done)
	assert.Equal(t, "bookmark 20", batch[0].Title)

	// Final partial batch
	require.True(t, l.Begin("tag:a"))
	batch, done = l.Commit("tag:a", items)
	assert.Len(t, batch, 5)
	assert.True(t, done)
	assert.Equal(t, 45, l.Rendered("tag:a"))

	// Fully rendered: no more loads
	assert.False(t, l.Begin("tag:a"))
}

func TestLoaderExactMultiple(t *testing.T) {
	l := NewLoader()
	items := makeItems(40)

	l.Begin("k")
	_, done := l.Commit("k", items)
	assert.False(t, done)

	l.Begin("k")
	batch, done := l.Commit("k", items)
	assert.Len(t, batch, 20)
	assert.True(t, done)
	assert.False(t, l.Begin("k"))
}

func TestLoaderShortList(t *testing.T) {
	l := NewLoader()
	items := makeItems(3)

	require.True(t, l.Begin("k"))
	batch, done := l.Commit("k", items)
	assert.Len(t, batch, 3)
	assert.True(t, done)
}

func TestLoaderEmptyList(t *testing.T) {
	l := NewLoader()

	require.True(t, l.Begin("k"))
	batch, done := l.Commit("k", nil)
	assert.Empty(t, batch)
	assert.True(t, done)
	assert.False(t, l.Begin("k"))
}

func TestLoaderSuppressesConcurrentLoads(t *testing.T) {
	l := NewLoader()
	items := makeItems(45)

	require.True(t, l.Begin("k"))
	// A second intersection callback while the load is in flight
	assert.False(t, l.Begin("k"))

	batch, _ := l.Commit("k", items)
	assert.Len(t, batch, 20)

	// After the commit a new load may start
	assert.True(t, l.Begin("k"))
}

func TestLoaderAbort(t *testing.T) {
	l := NewLoader()

	require.True(t, l.Begin("k"))
	l.Abort("k")

	// Progress did not advance; the widget can retry
	assert.Equal(t, 0, l.Rendered("k"))
	assert.True(t, l.Begin("k"))
}

func TestLoaderIndependentKeys(t *testing.T) {
	l := NewLoader()
	items := makeItems(25)

	l.Begin("a")
	l.Commit("a", items)

	// Progress on one widget never bleeds into another
	assert.Equal(t, 20, l.Rendered("a"))
	assert.Equal(t, 0, l.Rendered("b"))
	assert.True(t, l.Begin("b"))
}

func TestLoaderReset(t *testing.T) {
	l := NewLoader()
	items := makeItems(25)

	l.Begin("a")
	l.Commit("a", items)
	l.Begin("b")
	l.Commit("b", items)

	l.Reset("a")
	assert.Equal(t, 0, l.Rendered("a"))
	assert.Equal(t, 20, l.Rendered("b"))

	l.ResetAll()
	assert.Equal(t, 0, l.Rendered("b"))
	assert.True(t, l.Begin("b"))
}
