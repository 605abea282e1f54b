package terrain

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/midgard-terrain/pkg/area"
	tmath "github.com/Faultbox/midgard-terrain/pkg/math"
)

// Modifier is a baked, ready-to-evaluate height or position transform.
// Every concrete modifier is either a PointModifier or an AreaModifier.
type Modifier interface {
	Kind() string
}

// PointModifier computes a new height for one vertex. position is
// plane-local with the current height in Y; origin is the plane's world
// location. Vertices outside the modifier's area keep their height.
type PointModifier interface {
	Modifier
	Apply(position, origin mgl32.Vec3) float32
}

// AreaModifier rewrites the vertices inside its area in one pass over the
// whole buffer.
type AreaModifier interface {
	Modifier
	ApplyArea(positions []mgl32.Vec3)
}

// frame carries the plane state modifiers are baked against.
type frame struct {
	origin mgl32.Vec3
	bounds area.Box // plane-local extent
}

func (f frame) location() tmath.Vec2 {
	return tmath.Vec2{X: f.origin[0], Z: f.origin[2]}
}

func (f frame) bakeArea(d *area.Descriptor) (area.Area, error) {
	a, err := d.Bake(f.location(), f.bounds)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidModifier, err)
	}
	return a, nil
}

// bake turns a descriptor into its runtime modifier.
func (m ModifierDescriptor) bake(f frame) (Modifier, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}

	switch {
	case m.Value != nil:
		return bakeValue(m.Value, f)
	case m.Terraces != nil:
		return bakeTerraces(m.Terraces, f)
	case m.Noise != nil:
		return bakeNoise(m.Noise, f)
	case m.Smoothing != nil:
		return bakeSmoothing(m.Smoothing, f)
	case m.Wave != nil:
		return bakeWave(m.Wave, f)
	default:
		return bakeTargetWander(m.TargetWander, f)
	}
}
