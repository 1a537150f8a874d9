package nobounds

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Unbounded re-expresses a bounded native distribution on the real line by
// composing it with a Transform covering its support. The zero value is not
// usable; build one with New or NewDensityOnly.
//
// Unbounded is stateless and safe for concurrent use as long as each call
// site supplies its own random source to the native distribution.
type Unbounded struct {
	native distuv.LogProber
	rander distuv.Rander
	t      Transform
}

// New composes a native distribution with the transform covering its support.
func New(native distuv.RandLogProber, t Transform) Unbounded {
	return Unbounded{native: native, rander: native, t: t}
}

// NewDensityOnly builds an adapter with no sampler, for natives whose law is
// improper. Rand and Sample report ErrImproperSampler.
func NewDensityOnly(native distuv.LogProber, t Transform) Unbounded {
	return Unbounded{native: native, t: t}
}

// Transform returns the bound transform primitive.
func (u Unbounded) Transform() Transform { return u.t }

// LogProb returns the log-density of the transformed variable at the
// real-line point y: the native log-density at Inverse(y) plus the
// log-Jacobian of the inverse. A native -Inf propagates rather than erroring.
func (u Unbounded) LogProb(y float64) float64 {
	x := u.t.Inverse(y)
	// An extreme y can round-trip onto the support boundary in floating
	// point; the open-support law assigns it no mass.
	if lo, hi := u.t.Support(); !(x > lo && x < hi) {
		return math.Inf(-1)
	}
	return u.native.LogProb(x) + u.t.LogJacInverse(y)
}

// Prob returns the density of the transformed variable at y.
func (u Unbounded) Prob(y float64) float64 {
	return math.Exp(u.LogProb(y))
}

// Density returns LogProb(y) when logScale is true, Prob(y) otherwise. The
// flag mirrors the host registration convention of a trailing log switch.
func (u Unbounded) Density(y float64, logScale bool) float64 {
	if logScale {
		return u.LogProb(y)
	}
	return u.Prob(y)
}

// Rand draws one variate on the transformed scale: a native draw pushed
// through the forward map.
func (u Unbounded) Rand() (float64, error) {
	if u.rander == nil {
		return 0, ErrImproperSampler
	}
	return u.t.Forward(u.rander.Rand())
}

// Sample draws n independent variates on the transformed scale.
func (u Unbounded) Sample(n int) ([]float64, error) {
	if u.rander == nil {
		return nil, ErrImproperSampler
	}
	out := make([]float64, n)
	for i := range out {
		y, err := u.t.Forward(u.rander.Rand())
		if err != nil {
			return nil, err
		}
		out[i] = y
	}
	return out, nil
}
