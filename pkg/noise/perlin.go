package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// newPerlin returns a single-octave classic Perlin source.
func newPerlin(seed int64) Source {
	return perlin.NewPerlin(2, 2, 1, seed)
}

type openSimplexSource struct {
	noise opensimplex.Noise
}

func newOpenSimplex(seed int64) Source {
	return openSimplexSource{noise: opensimplex.New(seed)}
}

func (s openSimplexSource) Noise2D(x, y float64) float64 {
	return s.noise.Eval2(x, y)
}

func (s openSimplexSource) Noise3D(x, y, z float64) float64 {
	return s.noise.Eval3(x, y, z)
}

// surflet is gradient noise where every lattice corner contributes a radially
// attenuated gradient instead of being interpolated.
type surflet struct {
	perm *permutation
}

func newPerlinSurflet(seed int64) Source {
	return surflet{perm: newPermutation(seed)}
}

func (s surflet) Noise2D(x, y float64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	ix, iy := int(x0), int(y0)
	fx, fy := x-x0, y-y0

	var sum float64
	for cy := 0; cy <= 1; cy++ {
		for cx := 0; cx <= 1; cx++ {
			dx := fx - float64(cx)
			dy := fy - float64(cy)
			a := 1 - dx*dx - dy*dy
			if a <= 0 {
				continue
			}
			a *= a
			sum += a * a * dotGrad2(s.perm.hash2(ix+cx, iy+cy), dx, dy)
		}
	}
	return sum * 2
}

func (s surflet) Noise3D(x, y, z float64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	z0 := math.Floor(z)
	ix, iy, iz := int(x0), int(y0), int(z0)
	fx, fy, fz := x-x0, y-y0, z-z0

	var sum float64
	for cz := 0; cz <= 1; cz++ {
		for cy := 0; cy <= 1; cy++ {
			for cx := 0; cx <= 1; cx++ {
				dx := fx - float64(cx)
				dy := fy - float64(cy)
				dz := fz - float64(cz)
				a := 1 - dx*dx - dy*dy - dz*dz
				if a <= 0 {
					continue
				}
				a *= a
				sum += a * a * dotGrad3(s.perm.hash3(ix+cx, iy+cy, iz+cz), dx, dy, dz)
			}
		}
	}
	return sum * 2.5
}
