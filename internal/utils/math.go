// internal/utils/math.go
package utils

// Lerp interpolates linearly between from and to.
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// InverseLerp returns where v lies between from and to, clamped to [0, 1].
func InverseLerp(from, to, v float32) float32 {
	if to == from {
		return 0
	}
	return ClampF((v-from)/(to-from), 0, 1)
}

// ClampF keeps v inside [lo, hi].
func ClampF(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
