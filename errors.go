package nobounds

import (
	"errors"
	"fmt"
	"math"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeDomain          = "domain"
	CodeImproperSampler = "improper_sampler"
)

// DomainError reports a forward transform invoked with a point outside the
// open native support. Boundary points count as outside; nothing is clamped.
type DomainError struct {
	Transform string  // "log" or "logit"
	Value     float64 // the offending native-scale point
	Lower     float64 // open support lower bound
	Upper     float64 // open support upper bound; +Inf for lower-bounded supports
}

// Error summarizes the violated support.
func (e *DomainError) Error() string {
	if math.IsInf(e.Upper, 1) {
		return fmt.Sprintf("nobounds: %s transform of %g outside open support (%g, +Inf)", e.Transform, e.Value, e.Lower)
	}
	return fmt.Sprintf("nobounds: %s transform of %g outside open support (%g, %g)", e.Transform, e.Value, e.Lower, e.Upper)
}

// Code returns CodeDomain.
func (e *DomainError) Code() string { return CodeDomain }

// AsDomainError extracts a *DomainError from an error using errors.As internally.
func AsDomainError(err error) (*DomainError, bool) {
	if err == nil {
		return nil, false
	}
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// ErrImproperSampler indicates sampling was requested from an improper law.
// A flat density over an infinite domain is not normalizable, so there is
// nothing to draw from; callers should supply truncation bounds in the host
// model instead.
var ErrImproperSampler = errors.New("nobounds: sampling from an improper flat density is not defined; supply truncation bounds in the host model")
