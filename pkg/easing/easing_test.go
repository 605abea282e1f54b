package easing

import (
	"errors"
	"math"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name   string
		easing Easing
		in     float32
		want   float32
	}{
		{"identity", Easing{Kind: Identity}, 0.3, 0.3},
		{"smooth start", Easing{Kind: SmoothStart}, 0.5, 0.25},
		{"smooth stop", Easing{Kind: SmoothStop}, 0.5, 0.75},
		{"smooth step mid", Easing{Kind: SmoothStep}, 0.5, 0.5},
		{"smooth step below", Easing{Kind: SmoothStep}, -2, 0},
		{"smooth step above", Easing{Kind: SmoothStep}, 3, 1},
		{"absolute", Easing{Kind: AbsoluteValue}, -0.4, 0.4},
		{"absolute pow", Easing{Kind: AbsoluteValuePow, Power: 2}, -0.5, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.easing.Apply(tt.in)
			if diff := got - tt.want; diff > 1e-6 || diff < -1e-6 {
				t.Errorf("Apply(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseUnknown(t *testing.T) {
	_, err := Parse("bouncy", 0)
	if !errors.Is(err, ErrUnknownEasing) {
		t.Fatalf("expected ErrUnknownEasing, got %v", err)
	}
}

func TestParsePower(t *testing.T) {
	tests := []struct {
		name    string
		kind    string
		power   float32
		want    Easing
		wantErr error
	}{
		{"pow keeps power", "absolute_value_pow", 2.5, Easing{Kind: AbsoluteValuePow, Power: 2.5}, nil},
		{"zero power", "absolute_value_pow", 0, Easing{Kind: AbsoluteValuePow}, nil},
		{"negative power", "absolute_value_pow", -1, Easing{}, ErrInvalidPower},
		{"infinite power", "absolute_value_pow", float32(math.Inf(1)), Easing{}, ErrInvalidPower},
		{"NaN power", "absolute_value_pow", float32(math.NaN()), Easing{}, ErrInvalidPower},
		{"power ignored elsewhere", "smooth_step", -1, Easing{Kind: SmoothStep}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.kind, tt.power)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUnmarshalYAML(t *testing.T) {
	var doc struct {
		A Easing `yaml:"a"`
		B Easing `yaml:"b"`
	}
	src := "a: smooth_stop\nb:\n  kind: absolute_value_pow\n  power: 3\n"
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if doc.A.Kind != SmoothStop {
		t.Errorf("expected smooth_stop, got %s", doc.A.Kind)
	}
	if doc.B.Kind != AbsoluteValuePow || doc.B.Power != 3 {
		t.Errorf("expected absolute_value_pow^3, got %+v", doc.B)
	}
}

func TestUnmarshalYAMLPower(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		want    Easing
		wantErr error
	}{
		{"bare pow", "absolute_value_pow", Easing{Kind: AbsoluteValuePow, Power: DefaultPower}, nil},
		{"mapping without power", "kind: absolute_value_pow", Easing{Kind: AbsoluteValuePow, Power: DefaultPower}, nil},
		{"explicit zero", "{kind: absolute_value_pow, power: 0}", Easing{Kind: AbsoluteValuePow}, nil},
		{"negative power", "{kind: absolute_value_pow, power: -1}", Easing{}, ErrInvalidPower},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Easing
			err := yaml.Unmarshal([]byte(tt.src), &got)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Unmarshal() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Unmarshal() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
