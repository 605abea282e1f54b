package terrain

import tmath "github.com/Faultbox/midgard-terrain/pkg/math"

// BuildHeightmap captures the vertex heights of an unreduced grid mesh.
// Lookups use the nominal grid spacing, so lateral offsets applied by wave
// modifiers are ignored.
func BuildHeightmap(m *Mesh) *Heightmap {
	vertsX := m.Cols + 1
	vertsZ := m.Rows + 1
	if m.Reduced || len(m.Positions) != vertsX*vertsZ {
		return nil
	}

	altitudes := make([][]float32, vertsX)
	for x := range vertsX {
		altitudes[x] = make([]float32, vertsZ)
		for z := range vertsZ {
			altitudes[x][z] = m.Positions[z*vertsX+x][1]
		}
	}

	return &Heightmap{
		Altitudes:  altitudes,
		VertsX:     vertsX,
		VertsZ:     vertsZ,
		CellWidth:  m.Width / float32(m.Cols),
		CellLength: m.Length / float32(m.Rows),
		OriginX:    -m.Width / 2,
		OriginZ:    -m.Length / 2,
	}
}

// HeightAt returns the bilinearly interpolated height at a plane-local
// position. Positions outside the plane are clamped to its edge.
func (h *Heightmap) HeightAt(x, z float32) float32 {
	if h == nil || h.VertsX < 2 || h.VertsZ < 2 || h.CellWidth == 0 || h.CellLength == 0 {
		return 0
	}

	cellFX := (x - h.OriginX) / h.CellWidth
	cellFZ := (z - h.OriginZ) / h.CellLength

	cellX := int(cellFX)
	cellZ := int(cellFZ)

	// Clamp to valid range
	if cellX < 0 {
		cellX = 0
	}
	if cellZ < 0 {
		cellZ = 0
	}
	if cellX >= h.VertsX-1 {
		cellX = h.VertsX - 2
	}
	if cellZ >= h.VertsZ-1 {
		cellZ = h.VertsZ - 2
	}

	fracX := tmath.Clamp(cellFX-float32(cellX), 0, 1)
	fracZ := tmath.Clamp(cellFZ-float32(cellZ), 0, 1)

	// Near edge (lower Z): lerp along X, then the far edge, then across Z.
	near := h.Altitudes[cellX][cellZ]*(1-fracX) + h.Altitudes[cellX+1][cellZ]*fracX
	far := h.Altitudes[cellX][cellZ+1]*(1-fracX) + h.Altitudes[cellX+1][cellZ+1]*fracX
	return near*(1-fracZ) + far*fracZ
}
