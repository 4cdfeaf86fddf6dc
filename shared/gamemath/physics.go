package gamemath

// ClampFall keeps a vertical velocity from dropping below maxFall, which is
// negative in a Y-up space.
func ClampFall(vy, maxFall float64) float64 {
	if vy < maxFall {
		return maxFall
	}
	return vy
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
