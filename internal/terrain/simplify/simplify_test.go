package simplify

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/midgard-terrain/internal/terrain"
	"github.com/Faultbox/midgard-terrain/pkg/area"
	"github.com/Faultbox/midgard-terrain/pkg/noise"
)

func generate(t *testing.T, width, length float32, subX, subZ int, mods ...terrain.ModifierDescriptor) *terrain.Mesh {
	t.Helper()
	d := terrain.DefaultPlaneDescriptor()
	d.Width, d.Length = width, length
	d.SubdivisionsX, d.SubdivisionsZ = subX, subZ
	d.Modifiers = mods
	p, err := terrain.NewPlane(d)
	if err != nil {
		t.Fatalf("NewPlane() error = %v", err)
	}
	m, err := p.Generate(context.Background(), terrain.GenerateOptions{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return m
}

func raise(value float32, box area.Box) terrain.ModifierDescriptor {
	return terrain.ModifierDescriptor{Value: &terrain.ValueDescriptor{
		Kind:  terrain.ValueConstant,
		Value: value,
		Area:  &area.Descriptor{Box: &box},
	}}
}

func TestExtract(t *testing.T) {
	m := generate(t, 4, 4, 1, 1, raise(2, area.Box{MinX: 0, MaxX: 2, MinZ: 0, MaxZ: 2}))
	data, err := Extract(m)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if data.Cols != 2 || data.Rows != 2 {
		t.Fatalf("grid = %dx%d, want 2x2", data.Cols, data.Rows)
	}

	q := data.Quads[1][1]
	if q.ID != 3 || q.Row != 1 || q.Col != 1 {
		t.Errorf("quad = id %d (%d, %d), want id 3 (1, 1)", q.ID, q.Row, q.Col)
	}
	if q.Corners != [4]uint32{4, 5, 7, 8} {
		t.Errorf("Corners = %v, want [4 5 7 8]", q.Corners)
	}
	if !q.Flat() || q.Heights[0] != 2 {
		t.Errorf("Heights = %v, want [2]", q.Heights)
	}

	q = data.Quads[0][0]
	if q.Flat() || len(q.Heights) != 2 {
		t.Errorf("Heights = %v, want [0 2]", q.Heights)
	}
}

func TestExtractRejectsNonGrid(t *testing.T) {
	m := generate(t, 2, 2, 0, 0)
	m.Indices = m.Indices[:3]
	if _, err := Extract(m); !errors.Is(err, ErrNotGridMesh) {
		t.Errorf("Extract() error = %v, want ErrNotGridMesh", err)
	}
}

func wobble(scale float32, box *area.Box) terrain.ModifierDescriptor {
	w := &terrain.WaveDescriptor{
		Noise:  noise.Descriptor{Kind: noise.Kind{Base: noise.Value}, Seed: 3, Scale: 1.3},
		ScaleX: scale,
		ScaleZ: scale,
	}
	if box != nil {
		w.Area = &area.Descriptor{Box: box}
	}
	return terrain.ModifierDescriptor{Wave: w}
}

// displaced reports whether vertex i left its nominal grid position.
func displaced(m *terrain.Mesh, i int) bool {
	col, row := i%(m.Cols+1), i/(m.Cols+1)
	x := -m.Width/2 + m.Width*(float32(col)/float32(m.Cols))
	z := -m.Length/2 + m.Length*(float32(row)/float32(m.Rows))
	dx, dz := m.Positions[i][0]-x, m.Positions[i][2]-z
	return dx > 1e-5 || dx < -1e-5 || dz > 1e-5 || dz < -1e-5
}

func TestExtractCornersFollowGrid(t *testing.T) {
	m := generate(t, 8, 8, 7, 7, wobble(0.9, nil))
	data, err := Extract(m)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	vertsX := uint32(data.Cols + 1)
	for r, row := range data.Quads {
		for c, q := range row {
			tl := uint32(r)*vertsX + uint32(c)
			want := [4]uint32{tl, tl + 1, tl + vertsX, tl + vertsX + 1}
			if q.Corners != want {
				t.Errorf("quad (%d, %d) Corners = %v, want %v", r, c, q.Corners, want)
			}
		}
	}
}

func TestExtractRejectsReducedMesh(t *testing.T) {
	out, err := Reduce(generate(t, 4, 4, 3, 3))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Extract(out); !errors.Is(err, ErrNotGridMesh) {
		t.Errorf("Extract() error = %v, want ErrNotGridMesh", err)
	}
}

func TestFindGroups(t *testing.T) {
	tests := []struct {
		name   string
		subX   int
		subZ   int
		mods   []terrain.ModifierDescriptor
		groups []Group
	}{
		{
			name:   "flat square",
			subX:   3,
			subZ:   3,
			groups: []Group{{0, 0, 4}},
		},
		{
			name:   "flat strip",
			subX:   3,
			subZ:   1,
			groups: []Group{{0, 0, 2}, {0, 2, 2}},
		},
		{
			name: "raised corner vertex",
			subX: 3,
			subZ: 3,
			// Only the vertex at (2, 2) rises, making the bottom-right quad
			// non-flat.
			mods:   []terrain.ModifierDescriptor{raise(1, area.Box{MinX: 1.5, MaxX: 2, MinZ: 1.5, MaxZ: 2})},
			groups: []Group{{0, 0, 3}, {0, 3, 1}, {1, 3, 1}, {2, 3, 1}, {3, 0, 1}, {3, 1, 1}, {3, 2, 1}, {3, 3, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Cell size 1 so coordinates stay exact.
			m := generate(t, float32(tt.subX+1), float32(tt.subZ+1), tt.subX, tt.subZ, tt.mods...)
			data, err := Extract(m)
			if err != nil {
				t.Fatal(err)
			}
			got := data.FindGroups()
			if len(got) != len(tt.groups) {
				t.Fatalf("FindGroups() = %v, want %v", got, tt.groups)
			}
			for i := range got {
				if got[i] != tt.groups[i] {
					t.Errorf("group %d = %v, want %v", i, got[i], tt.groups[i])
				}
			}

			covered := 0
			for _, g := range got {
				covered += g.Size * g.Size
			}
			if covered != data.Cols*data.Rows {
				t.Errorf("groups cover %d quads, want %d", covered, data.Cols*data.Rows)
			}
		})
	}
}

func TestReduceFlatPlane(t *testing.T) {
	m := generate(t, 4, 4, 3, 3, terrain.ModifierDescriptor{Value: &terrain.ValueDescriptor{Value: 5}})

	out, err := Reduce(m)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	if out.VertexCount() != 4 || out.TriangleCount() != 2 {
		t.Fatalf("reduced to %d vertices, %d triangles; want 4, 2", out.VertexCount(), out.TriangleCount())
	}

	corners := map[mgl32.Vec3]bool{
		{-2, 5, -2}: false, {2, 5, -2}: false, {-2, 5, 2}: false, {2, 5, 2}: false,
	}
	for _, p := range out.Positions {
		if _, ok := corners[p]; !ok {
			t.Errorf("unexpected vertex %v", p)
		}
		corners[p] = true
	}
	for p, seen := range corners {
		if !seen {
			t.Errorf("plane corner %v dropped", p)
		}
	}
	if out.Bounds != m.Bounds {
		t.Errorf("Bounds = %+v, want %+v", out.Bounds, m.Bounds)
	}
	for i, uv := range out.UVs {
		want := terrain.PlaneUV(out.Positions[i], 4, 4)
		if uv != want {
			t.Errorf("UV %d = %v, want %v", i, uv, want)
		}
	}
	assertUpwardWinding(t, out)
}

func TestReducePreservesHeightField(t *testing.T) {
	m := generate(t, 8, 8, 7, 7,
		raise(3, area.Box{MinX: -2, MaxX: 2, MinZ: -2, MaxZ: 2}),
		raise(1, area.Box{MinX: 3, MaxX: 4, MinZ: -4, MaxZ: 4}),
	)

	out, err := Reduce(m)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	if out.VertexCount() >= m.VertexCount() {
		t.Errorf("Reduce() kept %d of %d vertices", out.VertexCount(), m.VertexCount())
	}
	if out.Bounds != m.Bounds {
		t.Errorf("Bounds = %+v, want %+v", out.Bounds, m.Bounds)
	}

	for _, p := range m.Positions {
		h, ok := sampleHeight(out, p[0], p[2])
		if !ok {
			t.Errorf("no reduced triangle covers (%v, %v)", p[0], p[2])
			continue
		}
		if d := h - p[1]; d > 1e-4 || d < -1e-4 {
			t.Errorf("height at (%v, %v) = %v, want %v", p[0], p[2], h, p[1])
		}
	}
	assertUpwardWinding(t, out)
}

func TestReduceKeepsDisplacedVertices(t *testing.T) {
	tests := []struct {
		name  string
		box   *area.Box
		fewer bool
	}{
		{name: "whole plane", box: nil},
		{name: "east half", box: &area.Box{MinX: 0.5, MaxX: 4, MinZ: -4, MaxZ: 4}, fewer: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := generate(t, 8, 8, 7, 7, wobble(0.9, tt.box))
			out, err := Reduce(m)
			if err != nil {
				t.Fatalf("Reduce() error = %v", err)
			}

			kept := make(map[mgl32.Vec3]bool, len(out.Positions))
			for _, p := range out.Positions {
				kept[p] = true
			}
			moved := 0
			for i, p := range m.Positions {
				if !displaced(m, i) {
					continue
				}
				moved++
				if !kept[p] {
					t.Errorf("displaced vertex %d at %v dropped", i, p)
				}
			}
			if moved == 0 {
				t.Fatal("wave moved no vertices")
			}
			if tt.fewer && out.VertexCount() >= m.VertexCount() {
				t.Errorf("Reduce() kept %d of %d vertices, want fewer", out.VertexCount(), m.VertexCount())
			}
			if out.Bounds != m.Bounds {
				t.Errorf("Bounds = %+v, want %+v", out.Bounds, m.Bounds)
			}
		})
	}
}

func TestReduceTwice(t *testing.T) {
	m := generate(t, 4, 4, 3, 3, terrain.ModifierDescriptor{Value: &terrain.ValueDescriptor{Value: 2}})
	once, err := Reduce(m)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	twice, err := Reduce(once)
	if err != nil {
		t.Fatalf("second Reduce() error = %v", err)
	}

	if !slices.Equal(twice.Positions, once.Positions) || !slices.Equal(twice.Indices, once.Indices) {
		t.Errorf("second Reduce() changed the mesh: %v / %v, want %v / %v",
			twice.Positions, twice.Indices, once.Positions, once.Indices)
	}
	if !twice.Reduced {
		t.Error("Reduced flag lost")
	}
	twice.Positions[0][1] = 99
	if once.Positions[0][1] == 99 {
		t.Error("second Reduce() shares buffers with its input")
	}
}

func TestReduceKeepsVertexAttributes(t *testing.T) {
	m := generate(t, 4, 4, 3, 3, raise(2, area.Box{MinX: 0, MaxX: 2, MinZ: 0, MaxZ: 2}))
	out, err := Reduce(m)
	if err != nil {
		t.Fatal(err)
	}

	index := make(map[mgl32.Vec3]int, len(m.Positions))
	for i, p := range m.Positions {
		index[p] = i
	}
	for i, p := range out.Positions {
		src, ok := index[p]
		if !ok {
			t.Fatalf("reduced vertex %v not in source mesh", p)
		}
		if out.Normals[i] != m.Normals[src] {
			t.Errorf("normal of %v changed", p)
		}
		if out.Colors[i] != m.Colors[src] {
			t.Errorf("color of %v changed", p)
		}
	}
}

// sampleHeight interpolates the height at (x, z) from the first triangle
// whose XZ projection contains it.
func sampleHeight(m *terrain.Mesh, x, z float32) (float32, bool) {
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Positions[m.Indices[i]]
		b := m.Positions[m.Indices[i+1]]
		c := m.Positions[m.Indices[i+2]]

		det := (b[2]-c[2])*(a[0]-c[0]) + (c[0]-b[0])*(a[2]-c[2])
		if det == 0 {
			continue
		}
		wa := ((b[2]-c[2])*(x-c[0]) + (c[0]-b[0])*(z-c[2])) / det
		wb := ((c[2]-a[2])*(x-c[0]) + (a[0]-c[0])*(z-c[2])) / det
		wc := 1 - wa - wb
		const eps = -1e-5
		if wa < eps || wb < eps || wc < eps {
			continue
		}
		return wa*a[1] + wb*b[1] + wc*c[1], true
	}
	return 0, false
}

func assertUpwardWinding(t *testing.T, m *terrain.Mesh) {
	t.Helper()
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Positions[m.Indices[i]]
		b := m.Positions[m.Indices[i+1]]
		c := m.Positions[m.Indices[i+2]]
		if n := b.Sub(a).Cross(c.Sub(a)); n[1] <= 0 {
			t.Errorf("triangle %d faces down: %v", i/3, n)
		}
	}
}
