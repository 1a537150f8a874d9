package nobounds

// Package nobounds provides:
//
// - Reparameterizations of bounded univariate distributions onto the whole
//   real line, so an MCMC engine can walk an unconstrained parameter space
// - Transform primitives (Log, LogitAffine) exposing the forward bijection,
//   its inverse, and the log-Jacobian of the inverse for change of variables
// - An Unbounded adapter pairing a transform with a native distribution's
//   log-density and sampler (gonum/stat/distuv)
//
// Design policy:
// - Keep only public contracts in the root package; place distributions under
//   dist/, the host-facing entry-point table under register/, numeric helpers
//   under internal/, and the CLI under cmd/nobounds.
// - Compose densities in log space end to end; linear-scale output is a single
//   exp at the exit, so extremes degrade to 0 or Inf instead of failing.
// - Randomness is owned by the caller: samplers take an explicit rand.Source
//   and never seed, cache, or share hidden state.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  u := dist.LogGamma(2, 1, src)
//  lp := u.LogProb(y)        // log-density at a real-line point
//  ys, err := u.Sample(1000) // draws on the real-line scale
//
//  e, _ := register.Lookup("LogitBeta")
//  p, err := e.DensityFn(0, []float64{1, 11}, false)
//
