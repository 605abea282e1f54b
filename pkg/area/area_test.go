package area

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	tmath "github.com/Faultbox/midgard-terrain/pkg/math"
)

func TestBoxHasPoint(t *testing.T) {
	b := Box{MinX: -1, MaxX: 1, MinZ: 0, MaxZ: 2}

	tests := []struct {
		name string
		p    mgl32.Vec3
		want bool
	}{
		{"inside", mgl32.Vec3{0, 100, 1}, true},
		{"edge inclusive", mgl32.Vec3{1, 0, 2}, true},
		{"outside x", mgl32.Vec3{1.5, 0, 1}, false},
		{"outside z", mgl32.Vec3{0, 0, -0.1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.HasPoint(tt.p); got != tt.want {
				t.Errorf("HasPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestDegenerateAreasContainNothing(t *testing.T) {
	areas := []Area{
		Box{},
		Box{MinX: 1, MaxX: 1, MinZ: 0, MaxZ: 5},
		Box{MinX: 2, MaxX: 1, MinZ: 0, MaxZ: 5},
		Ellipse{},
		Ellipse{RadiusA: 0, RadiusB: 3},
		Ellipse{RadiusA: -1, RadiusB: 3},
	}
	for _, a := range areas {
		if a.HasPoint(mgl32.Vec3{}) {
			t.Errorf("degenerate area %+v contains origin", a)
		}
		if _, ok := a.HasPointWithDistance(mgl32.Vec3{1, 0, 1}); ok {
			t.Errorf("degenerate area %+v reports a distance", a)
		}
	}
}

func TestEllipseHasPointWithDistance(t *testing.T) {
	e := Ellipse{CenterX: 10, CenterZ: 10, RadiusA: 4, RadiusB: 2}

	d, ok := e.HasPointWithDistance(mgl32.Vec3{13, 0, 10})
	if !ok {
		t.Fatal("expected point on long axis to be inside")
	}
	if d != 3 {
		t.Errorf("expected distance 3, got %v", d)
	}

	if e.HasPoint(mgl32.Vec3{10, 0, 13}) {
		t.Error("point beyond short axis should be outside")
	}
}

func TestEllipseRotation(t *testing.T) {
	e := Ellipse{RadiusA: 4, RadiusB: 1, Angle: math.Pi / 2}

	if !e.HasPoint(mgl32.Vec3{0, 0, 3.5}) {
		t.Error("rotated ellipse should extend along Z")
	}
	if e.HasPoint(mgl32.Vec3{3.5, 0, 0}) {
		t.Error("rotated ellipse should be narrow along X")
	}
}

func TestBakeGlobalTranslatesByLocation(t *testing.T) {
	location := tmath.Vec2{X: 100, Z: -50}
	d := &Descriptor{
		Box:    &Box{MinX: 99, MaxX: 101, MinZ: -51, MaxZ: -49},
		Global: true,
	}

	a, err := d.Bake(location, Box{})
	if err != nil {
		t.Fatalf("Bake failed: %v", err)
	}

	// World point (100, -50) is plane-local (0, 0).
	if !a.HasPoint(mgl32.Vec3{0, 0, 0}) {
		t.Error("global area should contain the plane-local origin")
	}

	local := &Descriptor{Box: &Box{MinX: 99, MaxX: 101, MinZ: -51, MaxZ: -49}}
	a, err = local.Bake(location, Box{})
	if err != nil {
		t.Fatalf("Bake failed: %v", err)
	}
	if a.HasPoint(mgl32.Vec3{0, 0, 0}) {
		t.Error("local area should not be translated")
	}
}

func TestBakeFallbackAndAmbiguous(t *testing.T) {
	fallback := Box{MinX: -5, MaxX: 5, MinZ: -5, MaxZ: 5}

	var nilDesc *Descriptor
	a, err := nilDesc.Bake(tmath.Vec2{}, fallback)
	if err != nil {
		t.Fatalf("Bake failed: %v", err)
	}
	if a != Area(fallback) {
		t.Errorf("expected fallback box, got %+v", a)
	}

	both := &Descriptor{Box: &Box{}, Ellipse: &Ellipse{}}
	if _, err := both.Bake(tmath.Vec2{}, fallback); !errors.Is(err, ErrAmbiguousArea) {
		t.Errorf("expected ErrAmbiguousArea, got %v", err)
	}
}
