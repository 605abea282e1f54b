package math

// Abs returns |x|.
func Abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b by t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// InverseLerp returns where v sits between lo and hi as a fraction.
// A zero-width range yields 0.
func InverseLerp(lo, hi, v float32) float32 {
	span := hi - lo
	if span == 0 {
		return 0
	}
	return (v - lo) / span
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * 0.017453292519943295
}
