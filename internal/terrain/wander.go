package terrain

import (
	"math/rand"
	"time"

	tmath "github.com/Faultbox/midgard-terrain/pkg/math"
)

// Randomness supplies the random generator used for each wander step.
type Randomness interface {
	// Step returns the generator for a step. Step 0 places random endpoints;
	// walking steps are numbered from 1.
	Step(i int) *rand.Rand
}

type seededRandomness struct {
	seed int64
}

// Step derives a fresh generator from seed+i so a path is exactly
// reproducible step by step.
func (s seededRandomness) Step(i int) *rand.Rand {
	return rand.New(rand.NewSource(s.seed + int64(i)))
}

type sharedRandomness struct {
	rng *rand.Rand
}

func (s sharedRandomness) Step(int) *rand.Rand {
	return s.rng
}

// NewRandomness returns a deterministic source when seed is set, otherwise
// one seeded from the clock.
func NewRandomness(seed *int64) Randomness {
	if seed != nil {
		return seededRandomness{seed: *seed}
	}
	return sharedRandomness{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// wandererOffsets repeats 0 so going straight ahead is three times as likely
// as any turn.
var wandererOffsets = [...]float64{90, -90, 180, 0, 0, 0}

// PathPoint is one visited position and the heading used to reach it.
type PathPoint struct {
	Position tmath.Vec2
	Heading  float64 // radians
}

// WanderParams controls a target-wander walk.
type WanderParams struct {
	StepLength  float32
	MaxSteps    int
	Style       WanderStyle
	DegreeRange float64 // emu only
}

// WanderPath walks from source towards target, re-aiming at the target after
// every step and deviating randomly according to the style. It stops after
// MaxSteps steps or once the Manhattan distance to target is within one
// step, so the path holds at most MaxSteps+1 points.
func WanderPath(source, target tmath.Vec2, params WanderParams, rnd Randomness) []PathPoint {
	pos := source
	bearing := pos.BearingTo(target)
	path := []PathPoint{{Position: pos, Heading: bearing}}
	if params.StepLength <= 0 {
		return path
	}

	for step := 1; step <= params.MaxSteps; step++ {
		if pos.Manhattan(target) <= params.StepLength {
			break
		}

		rng := rnd.Step(step)
		heading := bearing
		switch params.Style {
		case WanderEmu:
			heading += tmath.Radians((rng.Float64() - 0.5) * params.DegreeRange)
		case WanderWanderer:
			heading += tmath.Radians(wandererOffsets[rng.Intn(len(wandererOffsets))])
		}

		pos = pos.Add(tmath.Direction(heading).Scale(params.StepLength))
		bearing = pos.BearingTo(target)
		path = append(path, PathPoint{Position: pos, Heading: heading})
	}
	return path
}

// resolveLocation returns a fixed point or a random point on the named edge
// of bounds.
func resolveLocation(l LocationDescriptor, bounds [4]float32, rng *rand.Rand) tmath.Vec2 {
	if l.Point != nil {
		return tmath.Vec2{X: l.Point[0], Z: l.Point[1]}
	}

	minX, maxX, minZ, maxZ := bounds[0], bounds[1], bounds[2], bounds[3]
	t := rng.Float32()
	switch l.Edge {
	case "north":
		return tmath.Vec2{X: tmath.Lerp(minX, maxX, t), Z: minZ}
	case "south":
		return tmath.Vec2{X: tmath.Lerp(minX, maxX, t), Z: maxZ}
	case "west":
		return tmath.Vec2{X: minX, Z: tmath.Lerp(minZ, maxZ, t)}
	default:
		return tmath.Vec2{X: maxX, Z: tmath.Lerp(minZ, maxZ, t)}
	}
}
