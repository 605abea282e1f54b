// Package terrain synthesizes height-field meshes for editor planes from a
// stack of declarative shape, noise and path modifiers.
package terrain

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh holds a generated plane: parallel per-vertex buffers plus a triangle
// index buffer laid out as one 6-index quad per grid cell, row-major.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Colors    []mgl32.Vec4
	UVs       []mgl32.Vec2
	Indices   []uint32

	Cols   int     // Grid cells along X
	Rows   int     // Grid cells along Z
	Width  float32 // Plane extent along X
	Length float32 // Plane extent along Z

	MinHeight float32 // Lowest height seen by the point pass
	MaxHeight float32 // Highest height seen by the point pass
	Bounds    Bounds

	// Reduced is set once quads have been merged. Cols and Rows then keep
	// the source grid size and no longer describe the index buffer.
	Reduced bool
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	out := *m
	out.Positions = slices.Clone(m.Positions)
	out.Normals = slices.Clone(m.Normals)
	out.Colors = slices.Clone(m.Colors)
	out.UVs = slices.Clone(m.UVs)
	out.Indices = slices.Clone(m.Indices)
	return &out
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// ComputeBounds returns the bounding box of positions.
func ComputeBounds(positions []mgl32.Vec3) Bounds {
	b := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
	for _, p := range positions {
		updateBounds(&b, p)
	}
	return b
}

func updateBounds(b *Bounds, p mgl32.Vec3) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

// Heightmap provides height lookup over the nominal grid of a mesh.
type Heightmap struct {
	Altitudes  [][]float32 // 2D array [x][z] of vertex heights
	VertsX     int         // Vertices along X
	VertsZ     int         // Vertices along Z
	CellWidth  float32     // Cell size along X
	CellLength float32     // Cell size along Z
	OriginX    float32     // Local X of vertex column 0
	OriginZ    float32     // Local Z of vertex row 0
}
