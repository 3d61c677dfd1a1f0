package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{0, 16, 0},
		{15, 16, 0},
		{16, 16, 1},
		{-1, 16, -1},
		{-16, 16, -1},
		{-17, 16, -2},
		{-32, 16, -2},
		{7, -2, -4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FloorDiv(tt.a, tt.b), "FloorDiv(%d, %d)", tt.a, tt.b)
	}
}

func TestRect_Intersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"touching right edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"touching bottom edge", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"single pixel overlap", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), true},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 2, 2), true},
		{"zero width never overlaps", NewRect(5, 0, 0, 10), NewRect(0, 0, 10, 10), false},
		{"negative coordinates", NewRect(-10, -10, 5, 5), NewRect(-7, -7, 5, 5), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Intersects(tt.b))
			assert.Equal(t, tt.want, tt.b.Intersects(tt.a), "intersection must be symmetric")
		})
	}
}

func TestNewRect_ClampsNegativeExtent(t *testing.T) {
	r := NewRect(1, 2, -3, -4)

	assert.Equal(t, Rect{X: 1, Y: 2}, r)
	assert.True(t, r.Empty())
}

func TestRect_Center(t *testing.T) {
	assert.Equal(t, Vec{X: 5, Y: 10}, NewRect(0, 0, 10, 20).Center())
	assert.Equal(t, Vec{X: 1.5, Y: 2.5}, NewRect(1, 2, 1, 1).Center())
}

func TestRect_Sensors(t *testing.T) {
	r := NewRect(10, 20, 8, 12)

	assert.Equal(t, Rect{X: 10, Y: 32, W: 8, H: 1}, r.FeetSensor())
	assert.Equal(t, Rect{X: 10, Y: 20, W: 8, H: 13}, r.PushingSensor())
	assert.False(t, r.Intersects(r.FeetSensor()), "feet sensor lies just outside the rect")
}

func TestAxis_String(t *testing.T) {
	assert.Equal(t, "X", AxisX.String())
	assert.Equal(t, "Y", AxisY.String())
	assert.Equal(t, "None", AxisNone.String())
}
