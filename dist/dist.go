// Package dist provides the bounded distributions of nobounds, each bound to
// the transform covering its support: Log for supports on (0, +Inf), an
// affine-rescaled Logit for interval supports.
//
// Constructors take the native parameters in their conventional order plus an
// explicit rand.Source; a nil source falls back to the native default. The
// parameterizations follow the usual statistical conventions (rate for
// Exponential/Gamma, scale for InverseGamma/Weibull, log-scale mean/sd for
// LogNormal); mapping them onto distuv's field names happens here and nowhere
// else.
package dist

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	nobounds "github.com/reoring/nobounds"
)

// LogChisq is a chi-squared distribution with df degrees of freedom,
// log-transformed onto the real line.
func LogChisq(df float64, src rand.Source) nobounds.Unbounded {
	return nobounds.New(distuv.ChiSquared{K: df, Src: src}, nobounds.Log{})
}

// LogExp is an exponential distribution with the given rate, log-transformed
// onto the real line.
func LogExp(rate float64, src rand.Source) nobounds.Unbounded {
	return nobounds.New(distuv.Exponential{Rate: rate, Src: src}, nobounds.Log{})
}

// LogGamma is a gamma distribution in the shape/rate parameterization,
// log-transformed onto the real line.
func LogGamma(shape, rate float64, src rand.Source) nobounds.Unbounded {
	return nobounds.New(distuv.Gamma{Alpha: shape, Beta: rate, Src: src}, nobounds.Log{})
}

// LogHalfflat is the improper flat law on (0, +Inf), log-transformed onto the
// real line. Only the density side exists; sampling reports
// ErrImproperSampler because a flat density over an infinite domain has no
// law to draw from.
func LogHalfflat() nobounds.Unbounded {
	return nobounds.NewDensityOnly(halfflat{}, nobounds.Log{})
}

// LogInvGamma is an inverse-gamma distribution in the shape/scale
// parameterization, log-transformed onto the real line.
func LogInvGamma(shape, scale float64, src rand.Source) nobounds.Unbounded {
	return nobounds.New(distuv.InverseGamma{Alpha: shape, Beta: scale, Src: src}, nobounds.Log{})
}

// LogLognorm is a log-normal distribution with the given mean and standard
// deviation of the logarithm, log-transformed onto the real line. The
// transformed variable is exactly Normal(meanlog, sdlog).
func LogLognorm(meanlog, sdlog float64, src rand.Source) nobounds.Unbounded {
	return nobounds.New(distuv.LogNormal{Mu: meanlog, Sigma: sdlog, Src: src}, nobounds.Log{})
}

// LogWeibull is a Weibull distribution in the shape/scale parameterization,
// log-transformed onto the real line.
func LogWeibull(shape, scale float64, src rand.Source) nobounds.Unbounded {
	return nobounds.New(distuv.Weibull{K: shape, Lambda: scale, Src: src}, nobounds.Log{})
}

// LogitBeta is a beta distribution with the given shape parameters,
// logit-transformed from (0, 1) onto the real line.
func LogitBeta(shape1, shape2 float64, src rand.Source) nobounds.Unbounded {
	return nobounds.New(distuv.Beta{Alpha: shape1, Beta: shape2, Src: src}, nobounds.LogitAffine{Lower: 0, Upper: 1})
}

// LogitUniform is a uniform distribution on (lower, upper), logit-transformed
// onto the real line. The transform bounds derive from the parameters on
// every call; nothing is cached across parameter values.
func LogitUniform(lower, upper float64, src rand.Source) nobounds.Unbounded {
	return nobounds.New(distuv.Uniform{Min: lower, Max: upper, Src: src}, nobounds.LogitAffine{Lower: lower, Upper: upper})
}
