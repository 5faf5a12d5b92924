// pkg/utils/math.go
package utils

import "math"

// Clamp ограничивает x диапазоном [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Radians переводит градусы в радианы.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// NearlyEqual сравнивает два числа с абсолютным допуском eps.
func NearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
