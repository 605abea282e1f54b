// Package simplify reduces generated plane meshes by merging square blocks
// of flat, equal-height quads into single quads.
package simplify

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/midgard-terrain/internal/terrain"
	tmath "github.com/Faultbox/midgard-terrain/pkg/math"
)

// ErrNotGridMesh is returned for meshes whose index buffer is not one
// 6-index quad per grid cell.
var ErrNotGridMesh = errors.New("mesh is not a quad grid")

// Corner positions within a Quad.
const (
	TopLeft = iota
	TopRight
	BottomLeft
	BottomRight
)

// Quad is one grid cell. "Top" is the lower-Z edge, "left" the lower-X edge.
type Quad struct {
	ID        int // Row*Cols + Col
	Row       int
	Col       int
	Corners   [4]uint32 // Vertex indices, TopLeft..BottomRight
	Positions [4]mgl32.Vec3
	Normals   [4]mgl32.Vec3
	Heights   []float32 // Distinct corner heights, ascending
	OnGrid    bool      // All corners sit at their undisplaced X/Z
}

// Flat reports whether all corners share one height.
func (q *Quad) Flat() bool {
	return len(q.Heights) == 1
}

// Mergeable reports whether the quad may be absorbed into a larger group.
// Laterally displaced quads keep their own vertices so the outline holds.
func (q *Quad) Mergeable() bool {
	return q.Flat() && q.OnGrid
}

// SameHeights reports whether both quads have the same height-set.
func (q *Quad) SameHeights(other *Quad) bool {
	return slices.Equal(q.Heights, other.Heights)
}

// MeshData is a mesh sliced into its grid of quads.
type MeshData struct {
	Cols  int
	Rows  int
	Quads [][]Quad // [row][col]
	mesh  *terrain.Mesh
}

// Extract slices a generated grid mesh into quads. Corners follow the
// row-major vertex layout of the grid, whatever the vertex positions.
func Extract(m *terrain.Mesh) (*MeshData, error) {
	if m.Reduced || m.Cols <= 0 || m.Rows <= 0 || len(m.Indices) != m.Cols*m.Rows*6 {
		return nil, fmt.Errorf("%w: %d indices for %dx%d cells", ErrNotGridMesh, len(m.Indices), m.Cols, m.Rows)
	}
	if len(m.Positions) != (m.Cols+1)*(m.Rows+1) {
		return nil, fmt.Errorf("%w: %d vertices for %dx%d cells", ErrNotGridMesh, len(m.Positions), m.Cols, m.Rows)
	}

	d := &MeshData{
		Cols:  m.Cols,
		Rows:  m.Rows,
		Quads: make([][]Quad, m.Rows),
		mesh:  m,
	}
	for r := range m.Rows {
		d.Quads[r] = make([]Quad, m.Cols)
		for c := range m.Cols {
			q, err := extractQuad(m, r, c)
			if err != nil {
				return nil, err
			}
			d.Quads[r][c] = q
		}
	}
	return d, nil
}

func extractQuad(m *terrain.Mesh, r, c int) (Quad, error) {
	id := r*m.Cols + c
	vertsX := uint32(m.Cols + 1)
	tl := uint32(r)*vertsX + uint32(c)
	q := Quad{
		ID:      id,
		Row:     r,
		Col:     c,
		Corners: [4]uint32{tl, tl + 1, tl + vertsX, tl + vertsX + 1},
		OnGrid:  true,
	}

	for _, idx := range m.Indices[id*6 : id*6+6] {
		if !slices.Contains(q.Corners[:], idx) {
			return Quad{}, fmt.Errorf("%w: quad %d references vertex %d", ErrNotGridMesh, id, idx)
		}
	}

	for i, idx := range q.Corners {
		q.Positions[i] = m.Positions[idx]
		if int(idx) < len(m.Normals) {
			q.Normals[i] = m.Normals[idx]
		}
		h := q.Positions[i][1]
		if !slices.Contains(q.Heights, h) {
			q.Heights = append(q.Heights, h)
		}
		col, row := c+i%2, r+i/2
		if !onGrid(q.Positions[i], gridX(m, col), gridZ(m, row), m.Width+m.Length) {
			q.OnGrid = false
		}
	}
	slices.Sort(q.Heights)
	return q, nil
}

// gridX and gridZ mirror the vertex placement of a freshly built plane.
func gridX(m *terrain.Mesh, col int) float32 {
	return -m.Width/2 + m.Width*(float32(col)/float32(m.Cols))
}

func gridZ(m *terrain.Mesh, row int) float32 {
	return -m.Length/2 + m.Length*(float32(row)/float32(m.Rows))
}

func onGrid(p mgl32.Vec3, x, z, extent float32) bool {
	eps := extent * 1e-6
	return tmath.Abs(p[0]-x) <= eps && tmath.Abs(p[2]-z) <= eps
}
