package terrain

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/midgard-terrain/pkg/area"
	tmath "github.com/Faultbox/midgard-terrain/pkg/math"
)

type smoothingModifier struct {
	method SmoothingMethod
	point  tmath.Vec2
	target float32
	area   area.Area
}

func bakeSmoothing(d *SmoothingDescriptor, f frame) (*smoothingModifier, error) {
	a, err := f.bakeArea(d.Area)
	if err != nil {
		return nil, err
	}
	return &smoothingModifier{
		method: d.Method,
		point:  smoothingPoint(d, f),
		target: d.TargetHeight,
		area:   a,
	}, nil
}

func (m *smoothingModifier) Kind() string { return "smoothing" }

func (m *smoothingModifier) ApplyArea(positions []mgl32.Vec3) {
	inside := make([]int, 0, len(positions))
	minH := float32(math.MaxFloat32)
	maxH := float32(-math.MaxFloat32)
	for i, p := range positions {
		if !m.area.HasPoint(p) {
			continue
		}
		inside = append(inside, i)
		minH = min(minH, p[1])
		maxH = max(maxH, p[1])
	}
	if len(inside) == 0 {
		return
	}

	switch m.method {
	case SmoothLogNormalize:
		m.logNormalize(positions, inside, minH, maxH)
	case SmoothDistanceToPoint:
		m.distanceToPoint(positions, inside)
	}
}

// logNormalize scales each height by 1 - ln(1 + t), t being the height's
// position within the area's own min/max. Peaks shrink most.
func (m *smoothingModifier) logNormalize(positions []mgl32.Vec3, inside []int, minH, maxH float32) {
	for _, i := range inside {
		t := tmath.InverseLerp(minH, maxH, positions[i][1])
		positions[i][1] *= 1 - float32(math.Log1p(float64(t)))
	}
}

// distanceToPoint pulls heights towards the target height, fully at the
// point and not at all at the farthest vertex in the area. The result never
// crosses the target.
func (m *smoothingModifier) distanceToPoint(positions []mgl32.Vec3, inside []int) {
	var maxDist float32
	for _, i := range inside {
		maxDist = max(maxDist, m.point.Distance(tmath.Vec2{X: positions[i][0], Z: positions[i][2]}))
	}

	for _, i := range inside {
		h := positions[i][1]
		weight := float32(1)
		if maxDist > 0 {
			d := m.point.Distance(tmath.Vec2{X: positions[i][0], Z: positions[i][2]})
			weight = tmath.Clamp(1-d/maxDist, 0, 1)
		}
		next := h + (m.target-h)*weight
		if h <= m.target {
			next = min(next, m.target)
		} else {
			next = max(next, m.target)
		}
		positions[i][1] = next
	}
}

// smoothingPoint shares the frame of the area: a global area makes the
// point global too.
func smoothingPoint(d *SmoothingDescriptor, f frame) tmath.Vec2 {
	p := tmath.Vec2{X: d.Point[0], Z: d.Point[1]}
	if d.Area != nil && d.Area.Global {
		p = p.Sub(f.location())
	}
	return p
}
