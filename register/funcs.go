// Package register exposes the host-facing entry points of nobounds. Host
// probabilistic-programming compilers register custom distributions by a
// rigid naming and signature convention: a density d<Transform><Distribution>
// taking the point, the native parameters in a fixed order, and a trailing
// log switch, and a sampler r<Transform><Distribution> taking the draw count
// and the same parameters. The flat functions here follow that convention
// exactly (with an explicit rand.Source appended to the samplers, since
// randomness is caller-owned); Table and Lookup present the same pairs as a
// registration manifest with positional parameter vectors.
package register

import (
	"golang.org/x/exp/rand"

	"github.com/reoring/nobounds/dist"
)

// DLogChisq evaluates the density of a log-transformed chi-squared variable.
func DLogChisq(y, df float64, logp bool) float64 {
	return dist.LogChisq(df, nil).Density(y, logp)
}

// RLogChisq draws n variates of a log-transformed chi-squared variable.
func RLogChisq(n int, df float64, src rand.Source) ([]float64, error) {
	return dist.LogChisq(df, src).Sample(n)
}

// DLogExp evaluates the density of a log-transformed exponential variable.
func DLogExp(y, rate float64, logp bool) float64 {
	return dist.LogExp(rate, nil).Density(y, logp)
}

// RLogExp draws n variates of a log-transformed exponential variable.
func RLogExp(n int, rate float64, src rand.Source) ([]float64, error) {
	return dist.LogExp(rate, src).Sample(n)
}

// DLogGamma evaluates the density of a log-transformed gamma variable.
func DLogGamma(y, shape, rate float64, logp bool) float64 {
	return dist.LogGamma(shape, rate, nil).Density(y, logp)
}

// RLogGamma draws n variates of a log-transformed gamma variable.
func RLogGamma(n int, shape, rate float64, src rand.Source) ([]float64, error) {
	return dist.LogGamma(shape, rate, src).Sample(n)
}

// DLogHalfflat evaluates the density of a log-transformed half-flat variable.
func DLogHalfflat(y float64, logp bool) float64 {
	return dist.LogHalfflat().Density(y, logp)
}

// RLogHalfflat always reports ErrImproperSampler; the half-flat law is not
// normalizable and cannot be drawn from.
func RLogHalfflat(n int, src rand.Source) ([]float64, error) {
	_ = src
	return dist.LogHalfflat().Sample(n)
}

// DLogInvGamma evaluates the density of a log-transformed inverse-gamma
// variable.
func DLogInvGamma(y, shape, scale float64, logp bool) float64 {
	return dist.LogInvGamma(shape, scale, nil).Density(y, logp)
}

// RLogInvGamma draws n variates of a log-transformed inverse-gamma variable.
func RLogInvGamma(n int, shape, scale float64, src rand.Source) ([]float64, error) {
	return dist.LogInvGamma(shape, scale, src).Sample(n)
}

// DLogLognorm evaluates the density of a log-transformed log-normal variable.
func DLogLognorm(y, meanlog, sdlog float64, logp bool) float64 {
	return dist.LogLognorm(meanlog, sdlog, nil).Density(y, logp)
}

// RLogLognorm draws n variates of a log-transformed log-normal variable.
func RLogLognorm(n int, meanlog, sdlog float64, src rand.Source) ([]float64, error) {
	return dist.LogLognorm(meanlog, sdlog, src).Sample(n)
}

// DLogWeibull evaluates the density of a log-transformed Weibull variable.
func DLogWeibull(y, shape, scale float64, logp bool) float64 {
	return dist.LogWeibull(shape, scale, nil).Density(y, logp)
}

// RLogWeibull draws n variates of a log-transformed Weibull variable.
func RLogWeibull(n int, shape, scale float64, src rand.Source) ([]float64, error) {
	return dist.LogWeibull(shape, scale, src).Sample(n)
}

// DLogitBeta evaluates the density of a logit-transformed beta variable.
func DLogitBeta(y, shape1, shape2 float64, logp bool) float64 {
	return dist.LogitBeta(shape1, shape2, nil).Density(y, logp)
}

// RLogitBeta draws n variates of a logit-transformed beta variable.
func RLogitBeta(n int, shape1, shape2 float64, src rand.Source) ([]float64, error) {
	return dist.LogitBeta(shape1, shape2, src).Sample(n)
}

// DLogitUniform evaluates the density of a logit-transformed uniform
// variable. The transform bounds derive from lower and upper on every call.
func DLogitUniform(y, lower, upper float64, logp bool) float64 {
	return dist.LogitUniform(lower, upper, nil).Density(y, logp)
}

// RLogitUniform draws n variates of a logit-transformed uniform variable.
func RLogitUniform(n int, lower, upper float64, src rand.Source) ([]float64, error) {
	return dist.LogitUniform(lower, upper, src).Sample(n)
}
