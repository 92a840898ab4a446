package dashboard

import "math"

// SnapToGrid rounds a canvas coordinate to the nearest grid multiple.
// Idempotent: SnapToGrid(SnapToGrid(v)) == SnapToGrid(v).
func SnapToGrid(v float64) float64 {
	return math.Round(v/GridSize) * GridSize
}

// MaybeSnap applies SnapToGrid only when the snap preference is on
func MaybeSnap(v float64, enabled bool) float64 {
	if !enabled {
		return v
	}
	return SnapToGrid(v)
}

// ClampSize enforces the minimum widget dimensions. Applied before
// snapping so a tiny resize can never shrink a widget below the floor.
func ClampSize(w, h float64) (float64, float64) {
	return math.Max(MinWidgetWidth, w), math.Max(MinWidgetHeight, h)
}

// AutoPackPosition returns the cell origin for the widget at the given
// list index in the 3-column auto-pack layout.
func AutoPackPosition(index int) (x, y float64) {
	row := index / AutoPackColumns
	col := index % AutoPackColumns
	x = float64(col) * (DefaultWidgetWidth + AutoPackGap)
	y = float64(row) * (DefaultWidgetHeight + AutoPackGap)
	return x, y
}

// AutoPack lays out the widgets on the fixed grid, resetting every
// widget to the default cell size. Pure function of list order and
// length: identical input always yields identical geometry.
func AutoPack(widgets []Widget) []Widget {
	packed := make([]Widget, len(widgets))
	for i, w := range widgets {
		w.X, w.Y = AutoPackPosition(i)
		w.W = DefaultWidgetWidth
		w.H = DefaultWidgetHeight
		packed[i] = w
	}
	return packed
}
