package terrain

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/dgravesa/go-parallel/parallel"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/logger"
	"github.com/Faultbox/midgard-terrain/pkg/area"
)

// Plane is a baked plane descriptor ready to generate its mesh.
type Plane struct {
	Label         string
	Origin        mgl32.Vec3
	Width         float32
	Length        float32
	SubdivisionsX int
	SubdivisionsZ int
	Active        bool
	Colors        HeightColorRamp

	point []PointModifier
	area  []AreaModifier
}

// GenerateOptions tunes mesh generation.
type GenerateOptions struct {
	// Parallel spreads the point pass across goroutines. Output is identical.
	Parallel bool
}

// NewPlane validates and bakes a descriptor. Point and area modifiers keep
// their declared relative order.
func NewPlane(d PlaneDescriptor) (*Plane, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	p := &Plane{
		Label:         d.Label,
		Origin:        mgl32.Vec3(d.Location),
		Width:         d.Width,
		Length:        d.Length,
		SubdivisionsX: d.SubdivisionsX,
		SubdivisionsZ: d.SubdivisionsZ,
		Active:        d.Active,
		Colors:        d.Colors,
	}

	f := frame{
		origin: p.Origin,
		bounds: area.Box{MinX: -d.Width / 2, MaxX: d.Width / 2, MinZ: -d.Length / 2, MaxZ: d.Length / 2},
	}
	for i, md := range d.Modifiers {
		m, err := md.bake(f)
		if err != nil {
			return nil, fmt.Errorf("modifier %d (%s): %w", i, md.Kind(), err)
		}
		switch m := m.(type) {
		case PointModifier:
			p.point = append(p.point, m)
		case AreaModifier:
			p.area = append(p.area, m)
		}
	}
	return p, nil
}

// PointModifiers returns the per-vertex modifiers in application order.
func (p *Plane) PointModifiers() []PointModifier {
	return p.point
}

// AreaModifiers returns the whole-buffer modifiers in application order.
func (p *Plane) AreaModifiers() []AreaModifier {
	return p.area
}

// Generate builds the plane mesh: a flat grid, the point pass, the area
// pass, then colors and normals. ctx is checked between area modifiers.
func (p *Plane) Generate(ctx context.Context, opts GenerateOptions) (*Mesh, error) {
	start := time.Now()
	mesh := newGridMesh(p.Width, p.Length, p.SubdivisionsX, p.SubdivisionsZ)
	positions := mesh.Positions

	if opts.Parallel {
		parallel.For(len(positions), func(i, _ int) {
			positions[i][1] = p.applyPoint(positions[i])
		})
	} else {
		for i := range positions {
			positions[i][1] = p.applyPoint(positions[i])
		}
	}

	minH := float32(math.MaxFloat32)
	maxH := float32(-math.MaxFloat32)
	for _, pos := range positions {
		minH = min(minH, pos[1])
		maxH = max(maxH, pos[1])
	}
	mesh.MinHeight = minH
	mesh.MaxHeight = maxH

	for _, m := range p.area {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m.ApplyArea(positions)
	}

	mesh.Colors = make([]mgl32.Vec4, len(positions))
	for i, pos := range positions {
		mesh.Colors[i] = p.Colors.Color(pos[1], minH, maxH)
	}
	mesh.Normals = ComputeNormals(positions, mesh.Indices)
	mesh.Bounds = ComputeBounds(positions)

	logger.Debug("plane generated",
		zap.String("label", p.Label),
		zap.Int("vertices", len(positions)),
		zap.Int("point_modifiers", len(p.point)),
		zap.Int("area_modifiers", len(p.area)),
		zap.Float32("min_height", minH),
		zap.Float32("max_height", maxH),
		zap.Duration("elapsed", time.Since(start)),
	)
	return mesh, nil
}

func (p *Plane) applyPoint(pos mgl32.Vec3) float32 {
	for _, m := range p.point {
		pos[1] = m.Apply(pos, p.Origin)
	}
	return pos[1]
}
