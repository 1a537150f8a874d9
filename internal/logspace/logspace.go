// Package logspace provides numerically stable primitives for composing
// densities in log space.
package logspace

import "math"

// Log1pExp computes log(1 + exp(x)) without overflowing exp for large x and
// without losing precision for very negative x.
func Log1pExp(x float64) float64 {
	switch {
	case x > 33.3:
		// exp(-x) is below double-precision resolution; the answer is x.
		return x
	case x > -37:
		return math.Log1p(math.Exp(x))
	default:
		// log1p(z) ~ z for tiny z.
		return math.Exp(x)
	}
}

// Logit maps p in (0, 1) onto the real line.
func Logit(p float64) float64 {
	return math.Log(p) - math.Log1p(-p)
}

// InvLogit maps a real y into (0, 1). Evaluated through the branch that keeps
// the exp argument non-positive so large |y| cannot overflow.
func InvLogit(y float64) float64 {
	if y >= 0 {
		return 1 / (1 + math.Exp(-y))
	}
	e := math.Exp(y)
	return e / (1 + e)
}

// LogInvLogit computes log(invlogit(y)) = -log(1 + exp(-y)).
func LogInvLogit(y float64) float64 { return -Log1pExp(-y) }

// LogOneMinusInvLogit computes log(1 - invlogit(y)) = -log(1 + exp(y)).
func LogOneMinusInvLogit(y float64) float64 { return -Log1pExp(y) }
