package terrain

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/midgard-terrain/pkg/area"
	"github.com/Faultbox/midgard-terrain/pkg/easing"
	"github.com/Faultbox/midgard-terrain/pkg/noise"
)

func bakeFunction(d noise.Descriptor) (*noise.Function, error) {
	fn, err := noise.New(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidModifier, err)
	}
	return fn, nil
}

// noiseModifier multiplies the (optionally reset) height by an eased noise
// sample, so noise modulates rather than displaces.
type noiseModifier struct {
	fn            *noise.Function
	easing        easing.Easing
	resetHeight   *float32
	planeRelative bool
	area          area.Area
}

func bakeNoise(d *NoiseDescriptor, f frame) (*noiseModifier, error) {
	a, err := f.bakeArea(d.Area)
	if err != nil {
		return nil, err
	}
	fn, err := bakeFunction(d.Noise)
	if err != nil {
		return nil, err
	}

	m := &noiseModifier{
		fn:            fn,
		easing:        d.Easing,
		planeRelative: d.PlaneRelative,
		area:          a,
	}
	if d.ResetHeight != nil {
		h := *d.ResetHeight
		m.resetHeight = &h
	}
	return m, nil
}

func (m *noiseModifier) Kind() string { return "noise" }

func (m *noiseModifier) Apply(position, origin mgl32.Vec3) float32 {
	height := position[1]
	if !m.area.HasPoint(position) {
		return height
	}

	x, z := position[0], position[2]
	if !m.planeRelative {
		x += origin[0]
		z += origin[2]
	}

	base := height
	if m.resetHeight != nil {
		base = *m.resetHeight
	}
	return finiteOr(base*m.easing.Apply(m.fn.Get(x, z)), height)
}

// waveModifier wobbles vertices sideways. X is displaced by noise sampled
// at (z, x) and Z by noise sampled at (x, z), so the two axes decorrelate.
type waveModifier struct {
	fn            *noise.Function
	scaleX        float32
	scaleZ        float32
	planeRelative bool
	origin        mgl32.Vec3
	area          area.Area
}

func bakeWave(d *WaveDescriptor, f frame) (*waveModifier, error) {
	a, err := f.bakeArea(d.Area)
	if err != nil {
		return nil, err
	}
	fn, err := bakeFunction(d.Noise)
	if err != nil {
		return nil, err
	}
	return &waveModifier{
		fn:            fn,
		scaleX:        d.ScaleX,
		scaleZ:        d.ScaleZ,
		planeRelative: d.PlaneRelative,
		origin:        f.origin,
		area:          a,
	}, nil
}

func (m *waveModifier) Kind() string { return "wave" }

func (m *waveModifier) ApplyArea(positions []mgl32.Vec3) {
	for i, p := range positions {
		if !m.area.HasPoint(p) {
			continue
		}
		x, z := p[0], p[2]
		if !m.planeRelative {
			x += m.origin[0]
			z += m.origin[2]
		}
		positions[i][0] = p[0] + m.fn.Get(z, x)*m.scaleX
		positions[i][2] = p[2] + m.fn.Get(x, z)*m.scaleZ
	}
}
