// Package noise provides deterministic 2D/3D scalar fields built from a closed
// set of base generators crossed with fractal combinators.
package noise

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Noise construction errors.
var (
	ErrUnknownNoiseKind = errors.New("unknown noise kind")
	ErrInvalidOctaves   = errors.New("octave count out of range")
)

// Base is a single-octave noise generator.
type Base uint8

// Base generators.
const (
	Perlin Base = iota
	PerlinSurflet
	OpenSimplex
	SuperSimplex
	Simplex
	Value
	Worley
)

var baseNames = [...]string{
	Perlin:        "perlin",
	PerlinSurflet: "perlin_surflet",
	OpenSimplex:   "open_simplex",
	SuperSimplex:  "super_simplex",
	Simplex:       "simplex",
	Value:         "value",
	Worley:        "worley",
}

// String returns the descriptor name.
func (b Base) String() string {
	if int(b) < len(baseNames) {
		return baseNames[b]
	}
	return fmt.Sprintf("Unknown(%d)", b)
}

// Fractal is an octave-summing strategy layered over a Base.
type Fractal uint8

// Fractal combinators. Plain means a single octave of the base.
const (
	Plain Fractal = iota
	Fbm
	BasicMulti
	Billow
	RidgedMulti
	HybridMulti
)

var fractalNames = [...]string{
	Plain:       "",
	Fbm:         "fbm",
	BasicMulti:  "basic_multi",
	Billow:      "billow",
	RidgedMulti: "ridged_multi",
	HybridMulti: "hybrid_multi",
}

// String returns the descriptor prefix ("" for Plain).
func (f Fractal) String() string {
	if int(f) < len(fractalNames) {
		return fractalNames[f]
	}
	return fmt.Sprintf("Unknown(%d)", f)
}

// Kind selects one backend.
type Kind struct {
	Base    Base
	Fractal Fractal
}

// String returns names like "perlin" or "ridged_multi_open_simplex".
func (k Kind) String() string {
	if k.Fractal == Plain {
		return k.Base.String()
	}
	return k.Fractal.String() + "_" + k.Base.String()
}

// Kinds returns every supported kind, plain bases first.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(baseNames)*len(fractalNames))
	for f := range fractalNames {
		for b := range baseNames {
			kinds = append(kinds, Kind{Base: Base(b), Fractal: Fractal(f)})
		}
	}
	return kinds
}

// ParseKind resolves a descriptor name.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if k.String() == name {
			return k, nil
		}
	}
	return Kind{}, fmt.Errorf("%w: %q", ErrUnknownNoiseKind, name)
}

// UnmarshalYAML parses the kind name so unknown kinds fail at load time.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseKind(name)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalYAML writes the kind name.
func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}
