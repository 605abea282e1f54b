package simplify

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/logger"
	"github.com/Faultbox/midgard-terrain/internal/terrain"
)

// quadWinding emits two counter-clockwise triangles (seen from +Y) from
// corners ordered TopLeft, TopRight, BottomLeft, BottomRight.
var quadWinding = [6]int{TopLeft, BottomLeft, TopRight, TopRight, BottomLeft, BottomRight}

// Reduce returns a new mesh in which every merge group becomes one quad.
// Only group corner vertices survive; their positions, normals and colors
// are unchanged and UVs are recomputed against the plane size. A mesh that
// is already reduced comes back as an unchanged copy.
func Reduce(m *terrain.Mesh) (*terrain.Mesh, error) {
	if m.Reduced {
		return m.Clone(), nil
	}
	data, err := Extract(m)
	if err != nil {
		return nil, err
	}
	groups := data.FindGroups()

	corners := make([][4]uint32, len(groups))
	var keep []uint32
	for i, g := range groups {
		corners[i] = data.Corners(g)
		keep = append(keep, corners[i][:]...)
	}
	slices.Sort(keep)
	keep = slices.Compact(keep)

	remap := make(map[uint32]uint32, len(keep))
	out := &terrain.Mesh{
		Positions: make([]mgl32.Vec3, len(keep)),
		Normals:   make([]mgl32.Vec3, len(keep)),
		UVs:       make([]mgl32.Vec2, len(keep)),
		Indices:   make([]uint32, 0, len(groups)*6),
		Cols:      m.Cols,
		Rows:      m.Rows,
		Width:     m.Width,
		Length:    m.Length,
		MinHeight: m.MinHeight,
		MaxHeight: m.MaxHeight,
		Reduced:   true,
	}
	if len(m.Colors) == len(m.Positions) {
		out.Colors = make([]mgl32.Vec4, len(keep))
	}

	for newIdx, oldIdx := range keep {
		remap[oldIdx] = uint32(newIdx)
		out.Positions[newIdx] = m.Positions[oldIdx]
		if int(oldIdx) < len(m.Normals) {
			out.Normals[newIdx] = m.Normals[oldIdx]
		}
		if out.Colors != nil {
			out.Colors[newIdx] = m.Colors[oldIdx]
		}
		out.UVs[newIdx] = terrain.PlaneUV(out.Positions[newIdx], m.Width, m.Length)
	}

	for _, c := range corners {
		for _, corner := range quadWinding {
			out.Indices = append(out.Indices, remap[c[corner]])
		}
	}
	out.Bounds = terrain.ComputeBounds(out.Positions)

	logger.Debug("mesh reduced",
		zap.Int("quads_before", m.Cols*m.Rows),
		zap.Int("quads_after", len(groups)),
		zap.Int("vertices_before", len(m.Positions)),
		zap.Int("vertices_after", len(out.Positions)),
	)
	return out, nil
}
