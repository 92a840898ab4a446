package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGestureFixture(t *testing.T, snap bool) (*Store, *Controller) {
	t.Helper()
	s := NewStore()
	_, err := s.Add(WidgetTypeTag, "a", 50, 50)
	require.NoError(t, err)
	_, err = s.Add(WidgetTypeTag, "b", 400, 50)
	require.NoError(t, err)
	return s, NewController(s, func() bool { return snap })
}

func TestGestureDragCommitsSnappedPosition(t *testing.T) {
	s, c := newGestureFixture(t, true)

	_, err := c.Dispatch(PointerEvent{Phase: PhaseDown, Kind: KindDrag, WidgetIndex: 0, X: 500, Y: 500})
	require.NoError(t, err)
	assert.Equal(t, StateDragging, c.State())

	_, err = c.Dispatch(PointerEvent{Phase: PhaseMove, WidgetIndex: 0, X: 533, Y: 547})
	require.NoError(t, err)

	// Live geometry follows the pointer, snapped: (50+33, 50+47) -> (80, 100)
	x, y := c.Live()
	assert.Equal(t, 80.0, x)
	assert.Equal(t, 100.0, y)

	// Store is untouched until the gesture ends
	w, _ := s.Get(0)
	assert.Equal(t, 50.0, w.X)

	committed, err := c.Dispatch(PointerEvent{Phase: PhaseUp, WidgetIndex: 0, X: 533, Y: 547})
	require.NoError(t, err)
	require.NotNil(t, committed)
	assert.Equal(t, 80.0, committed.X)
	assert.Equal(t, 100.0, committed.Y)
	assert.Equal(t, StateIdle, c.State())

	w, _ = s.Get(0)
	assert.Equal(t, 80.0, w.X)
	assert.Equal(t, 100.0, w.Y)
}

func TestGestureDragWithoutSnap(t *testing.T) {
	s, c := newGestureFixture(t, false)

	c.Dispatch(PointerEvent{Phase: PhaseDown, Kind: KindDrag, WidgetIndex: 0, X: 0, Y: 0})
	committed, err := c.Dispatch(PointerEvent{Phase: PhaseUp, WidgetIndex: 0, X: 33, Y: 47})
	require.NoError(t, err)
	require.NotNil(t, committed)
	assert.Equal(t, 83.0, committed.X)
	assert.Equal(t, 97.0, committed.Y)

	w, _ := s.Get(0)
	assert.Equal(t, 83.0, w.X)
}

func TestGestureDragAllowsNegativeCoordinates(t *testing.T) {
	_, c := newGestureFixture(t, false)

	c.Dispatch(PointerEvent{Phase: PhaseDown, Kind: KindDrag, WidgetIndex: 0, X: 0, Y: 0})
	committed, err := c.Dispatch(PointerEvent{Phase: PhaseUp, WidgetIndex: 0, X: -200, Y: -300})
	require.NoError(t, err)
	require.NotNil(t, committed)
	assert.Equal(t, -150.0, committed.X)
	assert.Equal(t, -250.0, committed.Y)
}

func TestGestureResizeClampsToMinimum(t *testing.T) {
	s, c := newGestureFixture(t, false)

	c.Dispatch(PointerEvent{Phase: PhaseDown, Kind: KindResize, WidgetIndex: 0, X: 0, Y: 0})

	// Drag far past the minimum in both axes
	committed, err := c.Dispatch(PointerEvent{Phase: PhaseUp, WidgetIndex: 0, X: -1000, Y: -1000})
	require.NoError(t, err)
	require.NotNil(t, committed)
	assert.Equal(t, MinWidgetWidth, committed.W)
	assert.Equal(t, MinWidgetHeight, committed.H)

	w, _ := s.Get(0)
	assert.Equal(t, MinWidgetWidth, w.W)
	assert.Equal(t, MinWidgetHeight, w.H)
}

func TestGestureResizeGrows(t *testing.T) {
	_, c := newGestureFixture(t, false)

	c.Dispatch(PointerEvent{Phase: PhaseDown, Kind: KindResize, WidgetIndex: 0, X: 0, Y: 0})
	committed, err := c.Dispatch(PointerEvent{Phase: PhaseUp, WidgetIndex: 0, X: 100, Y: 60})
	require.NoError(t, err)
	require.NotNil(t, committed)
	assert.Equal(t, DefaultWidgetWidth+100, committed.W)
	assert.Equal(t, DefaultWidgetHeight+60, committed.H)
}

func TestGestureCancelDiscardsGeometry(t *testing.T) {
	s, c := newGestureFixture(t, false)

	c.Dispatch(PointerEvent{Phase: PhaseDown, Kind: KindDrag, WidgetIndex: 0, X: 0, Y: 0})
	c.Dispatch(PointerEvent{Phase: PhaseMove, WidgetIndex: 0, X: 300, Y: 300})

	committed, err := c.Dispatch(PointerEvent{Phase: PhaseCancel, WidgetIndex: 0})
	require.NoError(t, err)
	assert.Nil(t, committed)
	assert.Equal(t, StateIdle, c.State())

	w, _ := s.Get(0)
	assert.Equal(t, 50.0, w.X)
	assert.Equal(t, 50.0, w.Y)
}

func TestGestureSingleActiveGesture(t *testing.T) {
	_, c := newGestureFixture(t, false)

	_, err := c.Dispatch(PointerEvent{Phase: PhaseDown, Kind: KindDrag, WidgetIndex: 0, X: 0, Y: 0})
	require.NoError(t, err)

	// A second pointer-down while a gesture is active is rejected
	_, err = c.Dispatch(PointerEvent{Phase: PhaseDown, Kind: KindDrag, WidgetIndex: 1, X: 0, Y: 0})
	assert.ErrorIs(t, err, ErrGestureActive)
	assert.Equal(t, StateDragging, c.State())
}

func TestGestureIgnoresUnrelatedSamples(t *testing.T) {
	s, c := newGestureFixture(t, false)

	// Moves and ups while idle are dropped
	_, err := c.Dispatch(PointerEvent{Phase: PhaseMove, WidgetIndex: 0, X: 10, Y: 10})
	require.NoError(t, err)
	committed, err := c.Dispatch(PointerEvent{Phase: PhaseUp, WidgetIndex: 0, X: 10, Y: 10})
	require.NoError(t, err)
	assert.Nil(t, committed)

	// Samples for a different widget are dropped mid-gesture
	c.Dispatch(PointerEvent{Phase: PhaseDown, Kind: KindDrag, WidgetIndex: 0, X: 0, Y: 0})
	c.Dispatch(PointerEvent{Phase: PhaseMove, WidgetIndex: 1, X: 900, Y: 900})
	x, y := c.Live()
	assert.Equal(t, 50.0, x)
	assert.Equal(t, 50.0, y)

	committed, err = c.Dispatch(PointerEvent{Phase: PhaseUp, WidgetIndex: 1, X: 900, Y: 900})
	require.NoError(t, err)
	assert.Nil(t, committed)
	// The original gesture is still active
	assert.Equal(t, StateDragging, c.State())

	w, _ := s.Get(1)
	assert.Equal(t, 400.0, w.X)
}

func TestGestureDownOnMissingWidget(t *testing.T) {
	_, c := newGestureFixture(t, false)

	_, err := c.Dispatch(PointerEvent{Phase: PhaseDown, Kind: KindDrag, WidgetIndex: 9, X: 0, Y: 0})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, StateIdle, c.State())
}
