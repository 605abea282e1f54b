package terrain

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestHeightColorRamp(t *testing.T) {
	red := mgl32.Vec4{1, 0, 0, 1}
	ramp := HeightColorRamp{
		Ranges: []ColorRange{
			{From: 0, To: 10, Color: &red},
			{From: 10, To: 20, Gradient: &Gradient{
				Low:  mgl32.Vec4{0, 0, 0, 1},
				High: mgl32.Vec4{1, 1, 1, 1},
			}},
			{From: 5, To: 15, Color: &mgl32.Vec4{0, 1, 0, 1}},
		},
	}

	tests := []struct {
		name   string
		height float32
		want   mgl32.Vec4
	}{
		{"below all ranges", -1, White},
		{"above all ranges", 25, White},
		{"solid color", 3, red},
		{"first match wins", 7, red},
		{"range end exclusive", 20, White},
		{"gradient start", 10, mgl32.Vec4{0, 0, 0, 1}},
		{"gradient quarter", 12.5, mgl32.Vec4{0.25, 0.25, 0.25, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ramp.Color(tt.height, 0, 100)
			if !got.ApproxEqual(tt.want) {
				t.Errorf("Color(%v) = %v, want %v", tt.height, got, tt.want)
			}
		})
	}
}

func TestHeightColorRampNormalized(t *testing.T) {
	blue := mgl32.Vec4{0, 0, 1, 1}
	ramp := HeightColorRamp{
		Normalized: true,
		Ranges: []ColorRange{
			{From: 0.5, To: 1.01, Color: &blue},
		},
	}

	if got := ramp.Color(80, 0, 100); got != blue {
		t.Errorf("expected blue for upper half, got %v", got)
	}
	if got := ramp.Color(20, 0, 100); got != White {
		t.Errorf("expected white for lower half, got %v", got)
	}

	// Zero-width height range maps every height to 0 instead of NaN.
	zeroRamp := HeightColorRamp{
		Normalized: true,
		Ranges:     []ColorRange{{From: 0, To: 0.1, Color: &blue}},
	}
	if got := zeroRamp.Color(5, 5, 5); got != blue {
		t.Errorf("expected blue on flat plane, got %v", got)
	}
}
