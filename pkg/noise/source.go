package noise

import "math/rand"

// Source is a raw, unscaled noise field.
type Source interface {
	Noise2D(x, y float64) float64
	Noise3D(x, y, z float64) float64
}

// permutation is a seeded 256-entry shuffle, doubled to avoid wrapping.
type permutation [512]uint8

func newPermutation(seed int64) *permutation {
	r := rand.New(rand.NewSource(seed))
	shuffled := r.Perm(256)

	var p permutation
	for i := range p {
		p[i] = uint8(shuffled[i&255])
	}
	return &p
}

func (p *permutation) hash2(x, y int) int {
	return int(p[int(p[x&255])+(y&255)])
}

func (p *permutation) hash3(x, y, z int) int {
	return int(p[int(p[int(p[x&255])+(y&255)])+(z&255)])
}

var grad2 = [8][2]float64{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
}

var grad3 = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

func dotGrad2(h int, x, y float64) float64 {
	g := grad2[h&7]
	return g[0]*x + g[1]*y
}

func dotGrad3(h int, x, y, z float64) float64 {
	g := grad3[h%12]
	return g[0]*x + g[1]*y + g[2]*z
}

// splitmix hashes lattice coordinates without a table.
func splitmix(seed int64, coords ...int64) uint64 {
	v := uint64(seed) * 0x9E3779B97F4A7C15
	for i, c := range coords {
		v += uint64(c) << uint(i)
		v += 0x9E3779B97F4A7C15
		v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
		v = (v ^ (v >> 27)) * 0x94D049BB133111EB
		v ^= v >> 31
	}
	return v
}

// unit maps a hash to [0, 1].
func unit(h uint64) float64 {
	return float64(h&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
