package noise

import "math"

// Skew factors for the 2D and 3D simplex lattices.
const (
	skew2   = 0.36602540378443864676 // (sqrt(3)-1)/2
	unskew2 = 0.21132486540518711775 // (3-sqrt(3))/6
	skew3   = 1.0 / 3.0
	unskew3 = 1.0 / 6.0
)

// simplexKernel sums radially attenuated gradients over the simplex lattice.
// Simplex and SuperSimplex differ only in kernel radius and normalization;
// SuperSimplex's wider kernel reaches past the enclosing simplex, so the
// whole neighbourhood is visited.
type simplexKernel struct {
	perm   *permutation
	r2     float64
	norm2  float64
	r3     float64
	norm3  float64
	spread int
}

func newSimplex(seed int64) Source {
	return simplexKernel{
		perm:   newPermutation(seed),
		r2:     0.5,
		norm2:  70,
		r3:     0.6,
		norm3:  32,
		spread: 1,
	}
}

func newSuperSimplex(seed int64) Source {
	return simplexKernel{
		perm:   newPermutation(seed),
		r2:     2.0 / 3.0,
		norm2:  14,
		r3:     0.75,
		norm3:  9,
		spread: 2,
	}
}

func (s simplexKernel) Noise2D(x, y float64) float64 {
	sk := (x + y) * skew2
	i := int(math.Floor(x + sk))
	j := int(math.Floor(y + sk))

	var sum float64
	for dj := -s.spread + 1; dj <= s.spread; dj++ {
		for di := -s.spread + 1; di <= s.spread; di++ {
			li, lj := i+di, j+dj
			t := float64(li+lj) * unskew2
			dx := x - (float64(li) - t)
			dy := y - (float64(lj) - t)
			a := s.r2 - dx*dx - dy*dy
			if a <= 0 {
				continue
			}
			a *= a
			sum += a * a * dotGrad2(s.perm.hash2(li, lj), dx, dy)
		}
	}
	return sum * s.norm2
}

func (s simplexKernel) Noise3D(x, y, z float64) float64 {
	sk := (x + y + z) * skew3
	i := int(math.Floor(x + sk))
	j := int(math.Floor(y + sk))
	k := int(math.Floor(z + sk))

	var sum float64
	for dk := -s.spread + 1; dk <= s.spread; dk++ {
		for dj := -s.spread + 1; dj <= s.spread; dj++ {
			for di := -s.spread + 1; di <= s.spread; di++ {
				li, lj, lk := i+di, j+dj, k+dk
				t := float64(li+lj+lk) * unskew3
				dx := x - (float64(li) - t)
				dy := y - (float64(lj) - t)
				dz := z - (float64(lk) - t)
				a := s.r3 - dx*dx - dy*dy - dz*dz
				if a <= 0 {
					continue
				}
				a *= a
				sum += a * a * dotGrad3(s.perm.hash3(li, lj, lk), dx, dy, dz)
			}
		}
	}
	return sum * s.norm3
}
