// Package math provides small float32 helpers for terrain-plane geometry.
package math

import "math"

// Vec2 is a point or direction on the ground (XZ) plane.
type Vec2 struct {
	X, Z float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Z * s}
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Z*v.Z)))
}

// Distance returns the Euclidean distance to another point.
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

// Manhattan returns the taxicab distance to another point.
func (v Vec2) Manhattan(other Vec2) float32 {
	return Abs(v.X-other.X) + Abs(v.Z-other.Z)
}

// BearingTo returns the angle in radians from v towards other,
// measured from +X towards +Z.
func (v Vec2) BearingTo(other Vec2) float64 {
	d := other.Sub(v)
	return math.Atan2(float64(d.Z), float64(d.X))
}

// Direction returns the unit vector for a bearing in radians.
func Direction(bearing float64) Vec2 {
	return Vec2{float32(math.Cos(bearing)), float32(math.Sin(bearing))}
}
