// internal/utils/math.go
package utils

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Epsilon is the squared length below which a vector counts as zero.
const Epsilon = 0.0001

// Add returns a + b.
func Add(a, b f64.Vec2) f64.Vec2 {
	return f64.Vec2{a[0] + b[0], a[1] + b[1]}
}

// Sub returns a - b.
func Sub(a, b f64.Vec2) f64.Vec2 {
	return f64.Vec2{a[0] - b[0], a[1] - b[1]}
}

// Scale returns v * k.
func Scale(v f64.Vec2, k float64) f64.Vec2 {
	return f64.Vec2{v[0] * k, v[1] * k}
}

// SqrLength returns |v|².
func SqrLength(v f64.Vec2) float64 {
	return v[0]*v[0] + v[1]*v[1]
}

// Length returns |v|.
func Length(v f64.Vec2) float64 {
	return math.Sqrt(SqrLength(v))
}

// Distance returns |a - b|.
func Distance(a, b f64.Vec2) float64 {
	return Length(Sub(a, b))
}

// IsZero reports whether v is shorter than the epsilon.
func IsZero(v f64.Vec2) bool {
	return SqrLength(v) < Epsilon
}

// Normalize returns v scaled to unit length, or the zero vector if v is
// (almost) zero.
func Normalize(v f64.Vec2) f64.Vec2 {
	if IsZero(v) {
		return f64.Vec2{}
	}
	l := Length(v)
	return f64.Vec2{v[0] / l, v[1] / l}
}

// NormalizeOr is Normalize with a fallback for degenerate input.
func NormalizeOr(v, fallback f64.Vec2) f64.Vec2 {
	if IsZero(v) {
		return fallback
	}
	return Normalize(v)
}

// ClampLength shortens v to at most max. max <= 0 disables the clamp.
func ClampLength(v f64.Vec2, max float64) f64.Vec2 {
	if max <= 0 {
		return v
	}
	if SqrLength(v) > max*max {
		return Scale(Normalize(v), max)
	}
	return v
}

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float64, t float64) float64 {
	return from + (to-from)*t
}

// Clamp ограничивает v диапазоном [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt ограничивает v диапазоном [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
