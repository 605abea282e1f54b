package noise

import "math"

// valueNoise interpolates hashed lattice values.
type valueNoise struct {
	seed int64
}

func newValue(seed int64) Source {
	return valueNoise{seed: seed}
}

func (v valueNoise) lattice2(x, y int64) float64 {
	return unit(splitmix(v.seed, x, y))*2 - 1
}

func (v valueNoise) lattice3(x, y, z int64) float64 {
	return unit(splitmix(v.seed, x, y, z))*2 - 1
}

func (v valueNoise) Noise2D(x, y float64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	ix, iy := int64(x0), int64(y0)
	fx := fade(x - x0)
	fy := fade(y - y0)

	top := lerp(v.lattice2(ix, iy), v.lattice2(ix+1, iy), fx)
	bottom := lerp(v.lattice2(ix, iy+1), v.lattice2(ix+1, iy+1), fx)
	return lerp(top, bottom, fy)
}

func (v valueNoise) Noise3D(x, y, z float64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	z0 := math.Floor(z)
	ix, iy, iz := int64(x0), int64(y0), int64(z0)
	fx := fade(x - x0)
	fy := fade(y - y0)
	fz := fade(z - z0)

	plane := func(iz int64) float64 {
		top := lerp(v.lattice3(ix, iy, iz), v.lattice3(ix+1, iy, iz), fx)
		bottom := lerp(v.lattice3(ix, iy+1, iz), v.lattice3(ix+1, iy+1, iz), fx)
		return lerp(top, bottom, fy)
	}
	return lerp(plane(iz), plane(iz+1), fz)
}

// worley returns the distance to the nearest jittered feature point,
// remapped so that 0 maps to -1 and a full cell or more maps to 1.
type worley struct {
	seed int64
}

func newWorley(seed int64) Source {
	return worley{seed: seed}
}

func (w worley) Noise2D(x, y float64) float64 {
	ix := int64(math.Floor(x))
	iy := int64(math.Floor(y))

	nearest := 1.0
	for ny := int64(-1); ny <= 1; ny++ {
		for nx := int64(-1); nx <= 1; nx++ {
			cx, cy := ix+nx, iy+ny
			px := float64(cx) + unit(splitmix(w.seed, cx, cy, 0))
			py := float64(cy) + unit(splitmix(w.seed, cx, cy, 1))
			dx, dy := px-x, py-y
			nearest = math.Min(nearest, math.Sqrt(dx*dx+dy*dy))
		}
	}
	return nearest*2 - 1
}

func (w worley) Noise3D(x, y, z float64) float64 {
	ix := int64(math.Floor(x))
	iy := int64(math.Floor(y))
	iz := int64(math.Floor(z))

	nearest := 1.0
	for nz := int64(-1); nz <= 1; nz++ {
		for ny := int64(-1); ny <= 1; ny++ {
			for nx := int64(-1); nx <= 1; nx++ {
				cx, cy, cz := ix+nx, iy+ny, iz+nz
				px := float64(cx) + unit(splitmix(w.seed, cx, cy, cz, 0))
				py := float64(cy) + unit(splitmix(w.seed, cx, cy, cz, 1))
				pz := float64(cz) + unit(splitmix(w.seed, cx, cy, cz, 2))
				dx, dy, dz := px-x, py-y, pz-z
				nearest = math.Min(nearest, math.Sqrt(dx*dx+dy*dy+dz*dz))
			}
		}
	}
	return nearest*2 - 1
}
