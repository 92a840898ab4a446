package dashboard

import (
	"errors"
	"sync"
)

// GesturePhase is the pointer event phase fed into the controller
type GesturePhase string

const (
	PhaseDown   GesturePhase = "down"
	PhaseMove   GesturePhase = "move"
	PhaseUp     GesturePhase = "up"
	PhaseCancel GesturePhase = "cancel"
)

// GestureKind distinguishes the handle the pointer went down on
type GestureKind string

const (
	KindDrag   GestureKind = "drag"
	KindResize GestureKind = "resize"
)

// GestureState is the controller's tagged state
type GestureState string

const (
	StateIdle     GestureState = "idle"
	StateDragging GestureState = "dragging"
	StateResizing GestureState = "resizing"
)

var ErrGestureActive = errors.New("another gesture is already active")

// PointerEvent is one pointer sample. Kind is only consulted on
// PhaseDown; X/Y are canvas coordinates.
type PointerEvent struct {
	Phase       GesturePhase `json:"phase"`
	Kind        GestureKind  `json:"kind,omitempty"`
	WidgetIndex int          `json:"widget_index"`
	X           float64      `json:"x"`
	Y           float64      `json:"y"`
}

// Controller owns the drag/resize interaction state machine. Exactly
// one gesture may be active at a time; pointer events for any other
// widget are ignored while a gesture is in flight. Geometry stays
// purely local (the "visual" position) until PhaseUp commits it into
// the store in a single write; PhaseCancel discards it.
type Controller struct {
	mu    sync.Mutex
	store *Store
	snap  func() bool // snap-to-grid preference

	state       GestureState
	widgetIndex int

	// pointer position at PhaseDown
	pointerOriginX float64
	pointerOriginY float64

	// widget (x,y) or (w,h) at PhaseDown, depending on state
	originA float64
	originB float64

	// live visual geometry, updated on every PhaseMove
	liveA float64
	liveB float64
}

// NewController creates an idle controller. snap reports the current
// snap-to-grid preference and is consulted on every move.
func NewController(store *Store, snap func() bool) *Controller {
	return &Controller{
		store: store,
		snap:  snap,
		state: StateIdle,
	}
}

// State returns the current gesture state
func (c *Controller) State() GestureState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Live returns the current visual geometry pair for the active widget:
// (x, y) while dragging, (w, h) while resizing. Zero values when idle.
func (c *Controller) Live() (float64, float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.liveA, c.liveB
}

// Dispatch feeds a pointer event through the state machine. It returns
// the committed widget on a PhaseUp transition and nil otherwise.
// Events that do not apply to the current state (a move while idle, a
// down while a gesture is active, samples for an unrelated widget) are
// dropped without error, matching browser-level pointer capture.
func (c *Controller) Dispatch(ev PointerEvent) (*Widget, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch ev.Phase {
	case PhaseDown:
		return nil, c.handleDown(ev)
	case PhaseMove:
		c.handleMove(ev)
		return nil, nil
	case PhaseUp:
		return c.handleUp(ev)
	case PhaseCancel:
		c.reset()
		return nil, nil
	}
	return nil, nil
}

func (c *Controller) handleDown(ev PointerEvent) error {
	if c.state != StateIdle {
		return ErrGestureActive
	}

	w, err := c.store.Get(ev.WidgetIndex)
	if err != nil {
		return err
	}

	c.widgetIndex = ev.WidgetIndex
	c.pointerOriginX = ev.X
	c.pointerOriginY = ev.Y

	switch ev.Kind {
	case KindResize:
		c.state = StateResizing
		c.originA, c.originB = w.W, w.H
	default:
		c.state = StateDragging
		c.originA, c.originB = w.X, w.Y
	}
	c.liveA, c.liveB = c.originA, c.originB
	return nil
}

func (c *Controller) handleMove(ev PointerEvent) {
	if c.state == StateIdle || ev.WidgetIndex != c.widgetIndex {
		return
	}

	dx := ev.X - c.pointerOriginX
	dy := ev.Y - c.pointerOriginY
	snap := c.snap()

	switch c.state {
	case StateDragging:
		c.liveA = MaybeSnap(c.originA+dx, snap)
		c.liveB = MaybeSnap(c.originB+dy, snap)
	case StateResizing:
		w, h := ClampSize(c.originA+dx, c.originB+dy)
		c.liveA = MaybeSnap(w, snap)
		c.liveB = MaybeSnap(h, snap)
	}
}

func (c *Controller) handleUp(ev PointerEvent) (*Widget, error) {
	if c.state == StateIdle || ev.WidgetIndex != c.widgetIndex {
		return nil, nil
	}

	// Fold in the final sample before committing
	c.handleMove(ev)

	var patch WidgetPatch
	a, b := c.liveA, c.liveB
	switch c.state {
	case StateDragging:
		patch = WidgetPatch{X: &a, Y: &b}
	case StateResizing:
		patch = WidgetPatch{W: &a, H: &b}
	}
	index := c.widgetIndex
	c.reset()

	return c.store.Update(index, patch)
}

func (c *Controller) reset() {
	c.state = StateIdle
	c.widgetIndex = 0
	c.pointerOriginX, c.pointerOriginY = 0, 0
	c.originA, c.originB = 0, 0
	c.liveA, c.liveB = 0, 0
}
