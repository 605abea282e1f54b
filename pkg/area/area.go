// Package area provides 2D region predicates on the ground (XZ) plane.
//
// Areas gate where a terrain modifier applies. Heights (Y) are ignored.
// Degenerate areas (zero or negative extent) contain no points.
package area

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	tmath "github.com/Faultbox/midgard-terrain/pkg/math"
)

// Area is a region of effect.
type Area interface {
	// HasPoint reports whether p lies inside the area.
	HasPoint(p mgl32.Vec3) bool
	// HasPointWithDistance also returns the XZ distance from the area's center
	// when p is inside.
	HasPointWithDistance(p mgl32.Vec3) (float32, bool)
	// Center returns the middle of the area.
	Center() tmath.Vec2
	// Translate returns a copy moved by offset.
	Translate(offset tmath.Vec2) Area
}

// Box is an axis-aligned rectangle.
type Box struct {
	MinX float32 `yaml:"min_x"`
	MaxX float32 `yaml:"max_x"`
	MinZ float32 `yaml:"min_z"`
	MaxZ float32 `yaml:"max_z"`
}

// HasPoint implements Area. Edges are inclusive.
func (b Box) HasPoint(p mgl32.Vec3) bool {
	if b.MaxX <= b.MinX || b.MaxZ <= b.MinZ {
		return false
	}
	return p[0] >= b.MinX && p[0] <= b.MaxX && p[2] >= b.MinZ && p[2] <= b.MaxZ
}

// HasPointWithDistance implements Area.
func (b Box) HasPointWithDistance(p mgl32.Vec3) (float32, bool) {
	if !b.HasPoint(p) {
		return 0, false
	}
	return b.Center().Distance(tmath.Vec2{X: p[0], Z: p[2]}), true
}

// Center implements Area.
func (b Box) Center() tmath.Vec2 {
	return tmath.Vec2{X: (b.MinX + b.MaxX) / 2, Z: (b.MinZ + b.MaxZ) / 2}
}

// Translate implements Area.
func (b Box) Translate(offset tmath.Vec2) Area {
	return Box{
		MinX: b.MinX + offset.X,
		MaxX: b.MaxX + offset.X,
		MinZ: b.MinZ + offset.Z,
		MaxZ: b.MaxZ + offset.Z,
	}
}

// Ellipse is centered on (CenterX, CenterZ) with semi-axis RadiusA along its
// local X and RadiusB along its local Z, rotated by Angle radians.
type Ellipse struct {
	CenterX float32 `yaml:"center_x"`
	CenterZ float32 `yaml:"center_z"`
	RadiusA float32 `yaml:"radius_a"`
	RadiusB float32 `yaml:"radius_b"`
	Angle   float32 `yaml:"angle,omitempty"`
}

// HasPoint implements Area: (dx/a)² + (dz/b)² <= 1 in the ellipse frame.
func (e Ellipse) HasPoint(p mgl32.Vec3) bool {
	_, ok := e.HasPointWithDistance(p)
	return ok
}

// HasPointWithDistance implements Area.
func (e Ellipse) HasPointWithDistance(p mgl32.Vec3) (float32, bool) {
	if e.RadiusA <= 0 || e.RadiusB <= 0 {
		return 0, false
	}

	dx := float64(p[0] - e.CenterX)
	dz := float64(p[2] - e.CenterZ)
	lx, lz := dx, dz
	if e.Angle != 0 {
		sin, cos := math.Sincos(float64(-e.Angle))
		lx = dx*cos - dz*sin
		lz = dx*sin + dz*cos
	}

	nx := lx / float64(e.RadiusA)
	nz := lz / float64(e.RadiusB)
	if nx*nx+nz*nz > 1 {
		return 0, false
	}
	return float32(math.Sqrt(dx*dx + dz*dz)), true
}

// Center implements Area.
func (e Ellipse) Center() tmath.Vec2 {
	return tmath.Vec2{X: e.CenterX, Z: e.CenterZ}
}

// Translate implements Area.
func (e Ellipse) Translate(offset tmath.Vec2) Area {
	e.CenterX += offset.X
	e.CenterZ += offset.Z
	return e
}

// Radius returns the longer semi-axis.
func (e Ellipse) Radius() float32 {
	if e.RadiusA > e.RadiusB {
		return e.RadiusA
	}
	return e.RadiusB
}
