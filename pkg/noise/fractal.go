package noise

import "math"

// Fractal defaults shared by all combinators.
const (
	DefaultOctaves     = 6
	DefaultFrequency   = 1.0
	DefaultLacunarity  = 2.0
	DefaultPersistence = 0.5
	MaxOctaves         = 32
)

// octaves holds one base source per octave; octave i is seeded seed+i so
// layers do not correlate.
type octaves struct {
	sources     []Source
	frequency   float64
	lacunarity  float64
	persistence float64
}

func newOctaves(base func(int64) Source, seed int64, count int, frequency float64) octaves {
	sources := make([]Source, count)
	for i := range sources {
		sources[i] = base(seed + int64(i))
	}
	return octaves{
		sources:     sources,
		frequency:   frequency,
		lacunarity:  DefaultLacunarity,
		persistence: DefaultPersistence,
	}
}

// sample evaluates octave i at a point already scaled by the running frequency.
type sample func(src Source, p [3]float64) float64

func sample2(src Source, p [3]float64) float64 { return src.Noise2D(p[0], p[1]) }
func sample3(src Source, p [3]float64) float64 { return src.Noise3D(p[0], p[1], p[2]) }

func scale(p [3]float64, f float64) [3]float64 {
	return [3]float64{p[0] * f, p[1] * f, p[2] * f}
}

// fbm sums octaves with geometrically decreasing amplitude.
type fbm struct{ octaves }

func (f fbm) eval(p [3]float64, s sample) float64 {
	p = scale(p, f.frequency)
	var sum, total float64
	amp := 1.0
	for _, src := range f.sources {
		sum += s(src, p) * amp
		total += amp
		amp *= f.persistence
		p = scale(p, f.lacunarity)
	}
	return sum / total
}

func (f fbm) Noise2D(x, y float64) float64 { return f.eval([3]float64{x, y}, sample2) }
func (f fbm) Noise3D(x, y, z float64) float64 { return f.eval([3]float64{x, y, z}, sample3) }

// billow folds each octave with |n| so valleys become rounded humps.
type billow struct{ octaves }

func (b billow) eval(p [3]float64, s sample) float64 {
	p = scale(p, b.frequency)
	var sum, total float64
	amp := 1.0
	for _, src := range b.sources {
		sum += (math.Abs(s(src, p))*2 - 1) * amp
		total += amp
		amp *= b.persistence
		p = scale(p, b.lacunarity)
	}
	return sum / total
}

func (b billow) Noise2D(x, y float64) float64 { return b.eval([3]float64{x, y}, sample2) }
func (b billow) Noise3D(x, y, z float64) float64 { return b.eval([3]float64{x, y, z}, sample3) }

// basicMulti scales each octave by the running result, so detail grows where
// the terrain is already high.
type basicMulti struct{ octaves }

func (b basicMulti) eval(p [3]float64, s sample) float64 {
	p = scale(p, b.frequency)
	result := s(b.sources[0], p)
	amp := 1.0
	for _, src := range b.sources[1:] {
		p = scale(p, b.lacunarity)
		amp *= b.persistence
		result += s(src, p) * amp * result
	}
	return result * 0.5
}

func (b basicMulti) Noise2D(x, y float64) float64 { return b.eval([3]float64{x, y}, sample2) }
func (b basicMulti) Noise3D(x, y, z float64) float64 { return b.eval([3]float64{x, y, z}, sample3) }

// ridgedMulti inverts |n| into sharp crests, each octave weighted by the
// previous one.
type ridgedMulti struct{ octaves }

const ridgedGain = 2.0

func (r ridgedMulti) eval(p [3]float64, s sample) float64 {
	p = scale(p, r.frequency)
	var sum, total float64
	amp, weight := 1.0, 1.0
	for _, src := range r.sources {
		signal := 1 - math.Abs(s(src, p))
		signal *= signal * weight
		weight = math.Max(0, math.Min(1, signal*ridgedGain))
		sum += signal * amp
		total += amp
		amp *= r.persistence
		p = scale(p, r.lacunarity)
	}
	return sum/total*2 - 1
}

func (r ridgedMulti) Noise2D(x, y float64) float64 { return r.eval([3]float64{x, y}, sample2) }
func (r ridgedMulti) Noise3D(x, y, z float64) float64 { return r.eval([3]float64{x, y, z}, sample3) }

// hybridMulti mixes additive and multiplicative layering: smooth valleys,
// rough peaks.
type hybridMulti struct{ octaves }

func (h hybridMulti) eval(p [3]float64, s sample) float64 {
	p = scale(p, h.frequency)
	amp := h.persistence
	result := s(h.sources[0], p) * amp
	weight := result
	for _, src := range h.sources[1:] {
		p = scale(p, h.lacunarity)
		amp *= h.persistence
		weight = math.Min(weight, 1)
		signal := s(src, p) * amp
		result += weight * signal
		weight *= signal
	}
	return result / h.persistence
}

func (h hybridMulti) Noise2D(x, y float64) float64 { return h.eval([3]float64{x, y}, sample2) }
func (h hybridMulti) Noise3D(x, y, z float64) float64 { return h.eval([3]float64{x, y, z}, sample3) }
