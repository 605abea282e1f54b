package noise

import "fmt"

// Descriptor is the serializable form of a noise field.
type Descriptor struct {
	Kind      Kind     `yaml:"kind"`
	Seed      int64    `yaml:"seed"`
	Scale     float64  `yaml:"scale"`
	Octaves   *int     `yaml:"octaves,omitempty"`
	Frequency *float64 `yaml:"frequency,omitempty"`
}

// Function is a baked, stateless scalar field. Output lies roughly in [-1, 1]
// and depends on the backend. Identical descriptors produce bit-identical
// samples.
type Function struct {
	kind   Kind
	source Source
	scale  float64
}

var baseConstructors = [...]func(int64) Source{
	Perlin:        newPerlin,
	PerlinSurflet: newPerlinSurflet,
	OpenSimplex:   newOpenSimplex,
	SuperSimplex:  newSuperSimplex,
	Simplex:       newSimplex,
	Value:         newValue,
	Worley:        newWorley,
}

// New bakes a descriptor. Octaves and frequency are ignored by plain kinds.
func New(d Descriptor) (*Function, error) {
	if int(d.Kind.Base) >= len(baseConstructors) || int(d.Kind.Fractal) >= len(fractalNames) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNoiseKind, d.Kind)
	}
	base := baseConstructors[d.Kind.Base]

	count := DefaultOctaves
	if d.Octaves != nil {
		count = *d.Octaves
	}
	if count < 1 || count > MaxOctaves {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidOctaves, count, MaxOctaves)
	}
	frequency := DefaultFrequency
	if d.Frequency != nil {
		frequency = *d.Frequency
	}

	var src Source
	switch d.Kind.Fractal {
	case Plain:
		src = base(d.Seed)
	case Fbm:
		src = fbm{newOctaves(base, d.Seed, count, frequency)}
	case BasicMulti:
		src = basicMulti{newOctaves(base, d.Seed, count, frequency)}
	case Billow:
		src = billow{newOctaves(base, d.Seed, count, frequency)}
	case RidgedMulti:
		src = ridgedMulti{newOctaves(base, d.Seed, count, frequency)}
	case HybridMulti:
		src = hybridMulti{newOctaves(base, d.Seed, count, frequency)}
	}

	scale := d.Scale
	if scale <= 0 {
		scale = 1
	}
	return &Function{kind: d.Kind, source: src, scale: scale}, nil
}

// Kind returns the backend kind.
func (f *Function) Kind() Kind {
	return f.kind
}

// Get samples the field on the ground plane. Coordinates are divided by the
// descriptor's scale, so larger scales give broader features.
func (f *Function) Get(x, z float32) float32 {
	return float32(f.source.Noise2D(float64(x)/f.scale, float64(z)/f.scale))
}

// Get3 samples the 3D variant of the field.
func (f *Function) Get3(x, y, z float32) float32 {
	return float32(f.source.Noise3D(float64(x)/f.scale, float64(y)/f.scale, float64(z)/f.scale))
}
