// Package easing provides scalar remapping curves used to shape noise and falloff values.
package easing

import (
	"errors"
	"fmt"
	"math"
)

// Easing parse errors.
var (
	ErrUnknownEasing = errors.New("unknown easing")
	ErrInvalidPower  = errors.New("invalid easing power")
)

// DefaultPower is used by absolute_value_pow when no power is given.
const DefaultPower float32 = 1

// Kind identifies an easing curve.
type Kind uint8

// Easing kinds.
const (
	Identity Kind = iota
	SmoothStart
	SmoothStop
	SmoothStep
	AbsoluteValue
	AbsoluteValuePow
)

var kindNames = map[Kind]string{
	Identity:         "identity",
	SmoothStart:      "smooth_start",
	SmoothStop:       "smooth_stop",
	SmoothStep:       "smooth_step",
	AbsoluteValue:    "absolute_value",
	AbsoluteValuePow: "absolute_value_pow",
}

// String returns the descriptor name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", k)
}

// Easing is a curve with an optional power parameter (AbsoluteValuePow only).
// The zero value is Identity.
type Easing struct {
	Kind  Kind    `yaml:"kind"`
	Power float32 `yaml:"power,omitempty"`
}

// Parse builds an Easing from its descriptor name. absolute_value_pow needs
// a finite, non-negative power so zero inputs stay finite.
func Parse(name string, power float32) (Easing, error) {
	if name == "" {
		return Easing{Kind: Identity}, nil
	}
	for k, n := range kindNames {
		if n != name {
			continue
		}
		if k != AbsoluteValuePow {
			return Easing{Kind: k}, nil
		}
		if !(power >= 0 && power <= math.MaxFloat32) {
			return Easing{}, fmt.Errorf("%w: %v", ErrInvalidPower, power)
		}
		return Easing{Kind: k, Power: power}, nil
	}
	return Easing{}, fmt.Errorf("%w: %q", ErrUnknownEasing, name)
}

// Apply remaps x.
func (e Easing) Apply(x float32) float32 {
	switch e.Kind {
	case SmoothStart:
		return x * x
	case SmoothStop:
		inv := 1 - x
		return 1 - inv*inv
	case SmoothStep:
		if x <= 0 {
			return 0
		}
		if x >= 1 {
			return 1
		}
		return x * x * (3 - 2*x)
	case AbsoluteValue:
		if x < 0 {
			return -x
		}
		return x
	case AbsoluteValuePow:
		return float32(math.Pow(math.Abs(float64(x)), float64(e.Power)))
	default:
		return x
	}
}
