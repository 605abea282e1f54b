package terrain

import "github.com/go-gl/mathgl/mgl32"

// newGridMesh builds a flat grid centered on the plane origin. countX and
// countZ are interior subdivisions, so the grid has (countX+2)*(countZ+2)
// vertices and (countX+1)*(countZ+1) cells.
func newGridMesh(width, length float32, countX, countZ int) *Mesh {
	cols := countX + 1
	rows := countZ + 1
	vertsX := cols + 1
	vertsZ := rows + 1

	positions := make([]mgl32.Vec3, 0, vertsX*vertsZ)
	uvs := make([]mgl32.Vec2, 0, vertsX*vertsZ)
	for z := 0; z < vertsZ; z++ {
		v := float32(z) / float32(rows)
		for x := 0; x < vertsX; x++ {
			u := float32(x) / float32(cols)
			positions = append(positions, mgl32.Vec3{
				-width/2 + width*u,
				0,
				-length/2 + length*v,
			})
			uvs = append(uvs, mgl32.Vec2{u, v})
		}
	}

	indices := make([]uint32, 0, cols*rows*6)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			tl := uint32(r*vertsX + c)
			tr := tl + 1
			bl := tl + uint32(vertsX)
			br := bl + 1
			// Counter-clockwise seen from +Y.
			indices = append(indices, tl, bl, tr, tr, bl, br)
		}
	}

	return &Mesh{
		Positions: positions,
		UVs:       uvs,
		Indices:   indices,
		Cols:      cols,
		Rows:      rows,
		Width:     width,
		Length:    length,
	}
}

// PlaneUV maps a plane-local position to texture space relative to the
// plane's size.
func PlaneUV(p mgl32.Vec3, width, length float32) mgl32.Vec2 {
	var u, v float32
	if width != 0 {
		u = (p[0] + width/2) / width
	}
	if length != 0 {
		v = (p[2] + length/2) / length
	}
	return mgl32.Vec2{u, v}
}
