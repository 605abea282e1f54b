package terrain

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/midgard-terrain/pkg/area"
	"github.com/Faultbox/midgard-terrain/pkg/easing"
)

// targetWanderModifier raises terrain inside the corridor ellipses laid
// along a wander path.
type targetWanderModifier struct {
	path      []PathPoint
	corridors []area.Ellipse
	height    float32
	easing    easing.Easing
}

func bakeTargetWander(d *TargetWanderDescriptor, f frame) (*targetWanderModifier, error) {
	rnd := NewRandomness(d.Seed)
	bounds := [4]float32{f.bounds.MinX, f.bounds.MaxX, f.bounds.MinZ, f.bounds.MaxZ}

	endpoints := rnd.Step(0)
	source := resolveLocation(d.Source, bounds, endpoints)
	target := resolveLocation(d.Target, bounds, endpoints)

	path := WanderPath(source, target, WanderParams{
		StepLength:  d.StepLength,
		MaxSteps:    d.MaxSteps,
		Style:       d.Style,
		DegreeRange: d.DegreeRange,
	}, rnd)

	corridors := make([]area.Ellipse, len(path))
	for i, p := range path {
		corridors[i] = area.Ellipse{
			CenterX: p.Position.X,
			CenterZ: p.Position.Z,
			RadiusA: 2 * d.StepLength,
			RadiusB: d.Width,
			Angle:   float32(p.Heading),
		}
	}

	return &targetWanderModifier{
		path:      path,
		corridors: corridors,
		height:    d.Height,
		easing:    d.Easing,
	}, nil
}

func (m *targetWanderModifier) Kind() string { return "target_wander" }

// Path returns the visited points.
func (m *targetWanderModifier) Path() []PathPoint {
	return m.path
}

func (m *targetWanderModifier) Apply(position, _ mgl32.Vec3) float32 {
	height := position[1]
	for _, c := range m.corridors {
		d, ok := c.HasPointWithDistance(position)
		if !ok {
			continue
		}
		raised := m.height * m.easing.Apply(1-d/c.Radius())
		return finiteOr(max(height, raised), height)
	}
	return height
}
