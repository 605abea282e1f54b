package terrain

import (
	"github.com/go-gl/mathgl/mgl32"

	tmath "github.com/Faultbox/midgard-terrain/pkg/math"
)

// White is returned when no ramp range matches a height.
var White = mgl32.Vec4{1, 1, 1, 1}

// Gradient interpolates linearly from Low at a range's start to High at its end.
type Gradient struct {
	Low  mgl32.Vec4 `yaml:"low"`
	High mgl32.Vec4 `yaml:"high"`
}

// ColorRange colors heights in [From, To) with either a solid Color or a
// Gradient. With neither set the range yields white.
type ColorRange struct {
	From     float32     `yaml:"from"`
	To       float32     `yaml:"to"`
	Color    *mgl32.Vec4 `yaml:"color,omitempty"`
	Gradient *Gradient   `yaml:"gradient,omitempty"`
}

// HeightColorRamp maps vertex heights to colors. Ranges are tested in order
// and the first match wins.
//
// When Normalized is set, ranges are expressed in [0, 1] relative to the
// plane's global min/max height instead of absolute heights.
type HeightColorRamp struct {
	Normalized bool         `yaml:"normalized,omitempty"`
	Ranges     []ColorRange `yaml:"ranges"`
}

// Color returns the ramp color for height given the plane's height range.
func (r HeightColorRamp) Color(height, minHeight, maxHeight float32) mgl32.Vec4 {
	if r.Normalized {
		height = tmath.InverseLerp(minHeight, maxHeight, height)
	}

	for _, rng := range r.Ranges {
		if height < rng.From || height >= rng.To {
			continue
		}
		switch {
		case rng.Gradient != nil:
			scale := (height - rng.From) / (rng.To - rng.From)
			return rng.Gradient.Low.Mul(1 - scale).Add(rng.Gradient.High.Mul(scale))
		case rng.Color != nil:
			return *rng.Color
		default:
			return White
		}
	}
	return White
}
