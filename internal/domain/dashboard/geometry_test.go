package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapToGrid(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{"Already on grid", 100, 100},
		{"Rounds down", 108, 100},
		{"Rounds up", 112, 120},
		{"Zero stays zero", 0, 0},
		{"Negative rounds to nearest", -33, -40},
		{"Negative near zero", -8, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SnapToGrid(tt.in)
			assert.Equal(t, tt.expected, got)
			// Snapping is idempotent and always lands on the grid
			assert.Equal(t, got, SnapToGrid(got))
			assert.Zero(t, int(got)%int(GridSize))
		})
	}
}

func TestMaybeSnap(t *testing.T) {
	assert.Equal(t, 120.0, MaybeSnap(112, true))
	assert.Equal(t, 112.0, MaybeSnap(112, false))
}

func TestClampSize(t *testing.T) {
	tests := []struct {
		name       string
		w, h       float64
		expW, expH float64
	}{
		{"Above minimums untouched", 320, 400, 320, 400},
		{"Width floored", 80, 400, MinWidgetWidth, 400},
		{"Height floored", 320, 40, 320, MinWidgetHeight},
		{"Both floored", 10, 10, MinWidgetWidth, MinWidgetHeight},
		{"Negative resize delta floored", -500, -500, MinWidgetWidth, MinWidgetHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := ClampSize(tt.w, tt.h)
			assert.Equal(t, tt.expW, w)
			assert.Equal(t, tt.expH, h)
		})
	}
}

func TestAutoPackPosition(t *testing.T) {
	tests := []struct {
		index int
		expX  float64
		expY  float64
	}{
		{0, 0, 0},
		{1, 340, 0},
		{2, 680, 0},
		{3, 0, 420},
		{4, 340, 420},
		{6, 0, 840},
	}

	for _, tt := range tests {
		x, y := AutoPackPosition(tt.index)
		assert.Equal(t, tt.expX, x, "index %d", tt.index)
		assert.Equal(t, tt.expY, y, "index %d", tt.index)
	}
}

func TestAutoPack(t *testing.T) {
	widgets := []Widget{
		{ID: "a", Type: WidgetTypeTag, X: 999, Y: -40, W: 200, H: 150},
		{ID: "b", Type: WidgetTypeTag, X: 13, Y: 37, W: 700, H: 900},
		{ID: "c", Type: WidgetTypeTag},
		{ID: "d", Type: WidgetTypeTag},
	}

	packed := AutoPack(widgets)

	for i, w := range packed {
		x, y := AutoPackPosition(i)
		assert.Equal(t, x, w.X)
		assert.Equal(t, y, w.Y)
		assert.Equal(t, DefaultWidgetWidth, w.W)
		assert.Equal(t, DefaultWidgetHeight, w.H)
	}

	// List order is preserved
	assert.Equal(t, "a", packed[0].ID)
	assert.Equal(t, "d", packed[3].ID)

	// Pure function: same input yields identical geometry
	again := AutoPack(widgets)
	assert.Equal(t, packed, again)

	// Input slice is not mutated
	assert.Equal(t, 999.0, widgets[0].X)
}
