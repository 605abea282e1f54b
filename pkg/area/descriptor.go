package area

import (
	"errors"

	tmath "github.com/Faultbox/midgard-terrain/pkg/math"
)

// ErrAmbiguousArea is returned when a descriptor sets both shapes.
var ErrAmbiguousArea = errors.New("area must set exactly one of box or ellipse")

// Descriptor is the author-facing form of an Area.
//
// Coordinates are relative to the plane's location unless Global is set,
// in which case they are world coordinates.
type Descriptor struct {
	Box     *Box     `yaml:"box,omitempty"`
	Ellipse *Ellipse `yaml:"ellipse,omitempty"`
	Global  bool     `yaml:"global,omitempty"`
}

// Bake resolves the descriptor into plane-local space. A nil descriptor, or
// one with no shape, covers fallback.
func (d *Descriptor) Bake(location tmath.Vec2, fallback Box) (Area, error) {
	if d == nil || (d.Box == nil && d.Ellipse == nil) {
		return fallback, nil
	}
	if d.Box != nil && d.Ellipse != nil {
		return nil, ErrAmbiguousArea
	}

	var a Area
	if d.Box != nil {
		a = *d.Box
	} else {
		a = *d.Ellipse
	}
	if d.Global {
		a = a.Translate(tmath.Vec2{}.Sub(location))
	}
	return a, nil
}
