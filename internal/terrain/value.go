package terrain

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/midgard-terrain/pkg/area"
	"github.com/Faultbox/midgard-terrain/pkg/easing"
	tmath "github.com/Faultbox/midgard-terrain/pkg/math"
)

type valueModifier struct {
	kind    ValueKind
	value   float32
	falloff *falloff
	area    area.Area
}

type falloff struct {
	point  *tmath.Vec2
	axisX  bool // distance measured along X to coordinate; otherwise along Z
	coord  float32
	rate   float32
	easing easing.Easing
}

func bakeValue(d *ValueDescriptor, f frame) (*valueModifier, error) {
	a, err := f.bakeArea(d.Area)
	if err != nil {
		return nil, err
	}

	m := &valueModifier{kind: d.Kind, value: d.Value, area: a}
	if m.kind == "" {
		m.kind = ValueConstant
	}
	if fd := d.Falloff; fd != nil {
		fo := &falloff{
			axisX:  fd.Axis == "x",
			coord:  fd.Coordinate,
			rate:   fd.Rate,
			easing: fd.Easing,
		}
		if fd.Point != nil {
			fo.point = &tmath.Vec2{X: fd.Point[0], Z: fd.Point[1]}
		}
		if fo.rate <= 0 {
			fo.rate = 1
		}
		m.falloff = fo
	}
	return m, nil
}

func (m *valueModifier) Kind() string { return "value" }

// factor returns the falloff weight at p in [0, 1].
func (fo *falloff) factor(p mgl32.Vec3) float32 {
	var d float32
	switch {
	case fo.point != nil:
		d = fo.point.Distance(tmath.Vec2{X: p[0], Z: p[2]})
	case fo.axisX:
		d = tmath.Abs(p[0] - fo.coord)
	default:
		d = tmath.Abs(p[2] - fo.coord)
	}
	return fo.easing.Apply(1 / (1 + d*fo.rate))
}

func (m *valueModifier) Apply(position, _ mgl32.Vec3) float32 {
	height := position[1]
	if !m.area.HasPoint(position) {
		return height
	}

	weight := float32(1)
	if m.falloff != nil {
		weight = m.falloff.factor(position)
	}

	var out float32
	switch m.kind {
	case ValueDelta:
		out = height + m.value*weight
	case ValueScale:
		out = height * tmath.Lerp(1, m.value, weight)
	default:
		out = m.value * weight
	}
	return finiteOr(out, height)
}

// finiteOr returns h unless it is NaN or infinite, in which case the
// previous height is kept.
func finiteOr(h, previous float32) float32 {
	if math.IsNaN(float64(h)) || math.IsInf(float64(h), 0) {
		return previous
	}
	return h
}

type terracesModifier struct {
	terraces []Terrace
	area     area.Area
}

func bakeTerraces(d *TerracesDescriptor, f frame) (*terracesModifier, error) {
	a, err := f.bakeArea(d.Area)
	if err != nil {
		return nil, err
	}
	return &terracesModifier{terraces: append([]Terrace(nil), d.Terraces...), area: a}, nil
}

func (m *terracesModifier) Kind() string { return "terraces" }

func (m *terracesModifier) Apply(position, _ mgl32.Vec3) float32 {
	height := position[1]
	if !m.area.HasPoint(position) {
		return height
	}
	for _, t := range m.terraces {
		if height >= t.From && height < t.To {
			return t.Height
		}
	}
	return height
}
