package terrain

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-terrain/pkg/area"
	"github.com/Faultbox/midgard-terrain/pkg/easing"
	"github.com/Faultbox/midgard-terrain/pkg/noise"
)

// Descriptor errors.
var (
	ErrInvalidPlane    = errors.New("invalid plane descriptor")
	ErrInvalidModifier = errors.New("invalid modifier descriptor")
	ErrInvalidLocation = errors.New("invalid wander location")
)

// PlaneDescriptor is the author-facing definition of a plane.
type PlaneDescriptor struct {
	Label         string               `yaml:"label"`
	Location      [3]float32           `yaml:"location"`
	Width         float32              `yaml:"width"`
	Length        float32              `yaml:"length"`
	SubdivisionsX int                  `yaml:"subdivisions_x"`
	SubdivisionsZ int                  `yaml:"subdivisions_z"`
	Active        bool                 `yaml:"active"`
	Modifiers     []ModifierDescriptor `yaml:"modifiers"`
	Colors        HeightColorRamp      `yaml:"colors"`
}

// ModifierDescriptor holds exactly one modifier variant.
type ModifierDescriptor struct {
	Value        *ValueDescriptor        `yaml:"value,omitempty"`
	Terraces     *TerracesDescriptor     `yaml:"terraces,omitempty"`
	Noise        *NoiseDescriptor        `yaml:"noise,omitempty"`
	Smoothing    *SmoothingDescriptor    `yaml:"smoothing,omitempty"`
	Wave         *WaveDescriptor         `yaml:"wave,omitempty"`
	TargetWander *TargetWanderDescriptor `yaml:"target_wander,omitempty"`
}

// ValueKind selects how a Value modifier combines with the current height.
type ValueKind string

// Value kinds.
const (
	ValueConstant ValueKind = "constant" // height = value
	ValueDelta    ValueKind = "delta"    // height += value
	ValueScale    ValueKind = "scale"    // height *= value
)

// ValueDescriptor sets, offsets or scales heights.
type ValueDescriptor struct {
	Kind    ValueKind          `yaml:"kind"`
	Value   float32            `yaml:"value"`
	Falloff *FalloffDescriptor `yaml:"falloff,omitempty"`
	Area    *area.Descriptor   `yaml:"area,omitempty"`
}

// FalloffDescriptor attenuates a value by inverse distance from a point, or
// from the line where Axis equals Coordinate. The attenuation factor is
// easing(1 / (1 + distance*rate)).
type FalloffDescriptor struct {
	Point      *[2]float32   `yaml:"point,omitempty"`
	Axis       string        `yaml:"axis,omitempty"`
	Coordinate float32       `yaml:"coordinate,omitempty"`
	Rate       float32       `yaml:"rate,omitempty"`
	Easing     easing.Easing `yaml:"easing,omitempty"`
}

// Terrace clamps heights in [From, To) to Height.
type Terrace struct {
	From   float32 `yaml:"from"`
	To     float32 `yaml:"to"`
	Height float32 `yaml:"height"`
}

// TerracesDescriptor quantizes heights into bands.
type TerracesDescriptor struct {
	Terraces []Terrace        `yaml:"terraces"`
	Area     *area.Descriptor `yaml:"area,omitempty"`
}

// NoiseDescriptor modulates heights by an eased noise field.
type NoiseDescriptor struct {
	Noise         noise.Descriptor `yaml:"noise"`
	Easing        easing.Easing    `yaml:"easing,omitempty"`
	ResetHeight   *float32         `yaml:"reset_height,omitempty"`
	PlaneRelative bool             `yaml:"plane_relative,omitempty"`
	Area          *area.Descriptor `yaml:"area,omitempty"`
}

// SmoothingMethod selects a smoothing algorithm.
type SmoothingMethod string

// Smoothing methods.
const (
	SmoothLogNormalize    SmoothingMethod = "log_normalize"
	SmoothDistanceToPoint SmoothingMethod = "distance_to_point"
)

// SmoothingDescriptor flattens heights within an area. Point is plane-local
// unless the area is global.
type SmoothingDescriptor struct {
	Method       SmoothingMethod  `yaml:"method"`
	Point        [2]float32       `yaml:"point,omitempty"`
	TargetHeight float32          `yaml:"target_height,omitempty"`
	Area         *area.Descriptor `yaml:"area,omitempty"`
}

// WaveDescriptor displaces vertices laterally by noise.
type WaveDescriptor struct {
	Noise         noise.Descriptor `yaml:"noise"`
	ScaleX        float32          `yaml:"scale_x"`
	ScaleZ        float32          `yaml:"scale_z"`
	PlaneRelative bool             `yaml:"plane_relative,omitempty"`
	Area          *area.Descriptor `yaml:"area,omitempty"`
}

// LocationDescriptor is either a fixed plane-local point or a random point
// on one edge of the plane (north = -Z, south = +Z, west = -X, east = +X).
type LocationDescriptor struct {
	Point *[2]float32 `yaml:"point,omitempty"`
	Edge  string      `yaml:"edge,omitempty"`
}

// WanderStyle selects how each step's bearing is drawn.
type WanderStyle string

// Wander styles.
const (
	WanderEmu      WanderStyle = "emu"
	WanderWanderer WanderStyle = "wanderer"
)

// TargetWanderDescriptor raises a corridor along a random walk from Source
// to Target.
type TargetWanderDescriptor struct {
	Source      LocationDescriptor `yaml:"source"`
	Target      LocationDescriptor `yaml:"target"`
	StepLength  float32            `yaml:"step_length"`
	MaxSteps    int                `yaml:"max_steps"`
	Width       float32            `yaml:"width"`
	Height      float32            `yaml:"height"`
	Style       WanderStyle        `yaml:"style"`
	DegreeRange float64            `yaml:"degree_range,omitempty"`
	Seed        *int64             `yaml:"seed,omitempty"`
	Easing      easing.Easing      `yaml:"easing,omitempty"`
}

// DefaultPlaneDescriptor returns an active 10x10 plane with no modifiers.
func DefaultPlaneDescriptor() PlaneDescriptor {
	return PlaneDescriptor{
		Label:  "plane",
		Width:  10,
		Length: 10,
		Active: true,
	}
}

// DecodePlane parses a YAML plane descriptor over the defaults and validates it.
func DecodePlane(data []byte) (PlaneDescriptor, error) {
	d := DefaultPlaneDescriptor()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return PlaneDescriptor{}, err
	}
	if err := d.Validate(); err != nil {
		return PlaneDescriptor{}, err
	}
	return d, nil
}

// LoadPlane reads and decodes a plane descriptor file.
func LoadPlane(path string) (PlaneDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PlaneDescriptor{}, err
	}
	d, err := DecodePlane(data)
	if err != nil {
		return PlaneDescriptor{}, fmt.Errorf("loading plane from %s: %w", path, err)
	}
	return d, nil
}

// Validate checks the descriptor without baking it.
func (d PlaneDescriptor) Validate() error {
	if d.Width <= 0 || d.Length <= 0 {
		return fmt.Errorf("%w: width and length must be positive (got %vx%v)", ErrInvalidPlane, d.Width, d.Length)
	}
	if d.SubdivisionsX < 0 || d.SubdivisionsZ < 0 {
		return fmt.Errorf("%w: negative subdivisions", ErrInvalidPlane)
	}
	for i, m := range d.Modifiers {
		if err := m.validate(); err != nil {
			return fmt.Errorf("modifier %d: %w", i, err)
		}
	}
	return nil
}

// Kind returns the variant name, or "" if the descriptor is empty.
func (m ModifierDescriptor) Kind() string {
	switch {
	case m.Value != nil:
		return "value"
	case m.Terraces != nil:
		return "terraces"
	case m.Noise != nil:
		return "noise"
	case m.Smoothing != nil:
		return "smoothing"
	case m.Wave != nil:
		return "wave"
	case m.TargetWander != nil:
		return "target_wander"
	}
	return ""
}

func (m ModifierDescriptor) validate() error {
	set := 0
	for _, present := range []bool{
		m.Value != nil, m.Terraces != nil, m.Noise != nil,
		m.Smoothing != nil, m.Wave != nil, m.TargetWander != nil,
	} {
		if present {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("%w: expected exactly one variant, got %d", ErrInvalidModifier, set)
	}

	switch {
	case m.Value != nil:
		switch m.Value.Kind {
		case "", ValueConstant, ValueDelta, ValueScale:
		default:
			return fmt.Errorf("%w: unknown value kind %q", ErrInvalidModifier, m.Value.Kind)
		}
		if f := m.Value.Falloff; f != nil && f.Point == nil && f.Axis != "x" && f.Axis != "z" {
			return fmt.Errorf("%w: falloff needs a point or an x/z axis", ErrInvalidModifier)
		}
	case m.Smoothing != nil:
		switch m.Smoothing.Method {
		case SmoothLogNormalize, SmoothDistanceToPoint:
		default:
			return fmt.Errorf("%w: unknown smoothing method %q", ErrInvalidModifier, m.Smoothing.Method)
		}
	case m.TargetWander != nil:
		w := m.TargetWander
		if w.StepLength <= 0 {
			return fmt.Errorf("%w: step_length must be positive", ErrInvalidModifier)
		}
		if w.MaxSteps < 0 {
			return fmt.Errorf("%w: max_steps must not be negative", ErrInvalidModifier)
		}
		switch w.Style {
		case WanderEmu, WanderWanderer:
		default:
			return fmt.Errorf("%w: unknown wander style %q", ErrInvalidModifier, w.Style)
		}
		if err := w.Source.validate(); err != nil {
			return fmt.Errorf("source: %w", err)
		}
		if err := w.Target.validate(); err != nil {
			return fmt.Errorf("target: %w", err)
		}
	}
	return nil
}

func (l LocationDescriptor) validate() error {
	if l.Point != nil {
		if l.Edge != "" {
			return fmt.Errorf("%w: point and edge are exclusive", ErrInvalidLocation)
		}
		return nil
	}
	switch l.Edge {
	case "north", "south", "east", "west":
		return nil
	}
	return fmt.Errorf("%w: unknown edge %q", ErrInvalidLocation, l.Edge)
}
