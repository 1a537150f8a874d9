package nobounds

import (
	"math"

	"github.com/reoring/nobounds/internal/logspace"
)

// Transform is a strictly monotonic bijection from an open support onto the
// whole real line. Forward rejects points outside the open support with a
// *DomainError; Inverse and LogJacInverse are total over the real line.
type Transform interface {
	// Name identifies the transform kind ("log" or "logit").
	Name() string
	// Support returns the open native support; upper may be +Inf.
	Support() (lower, upper float64)
	// Forward maps a native-scale point onto the real line.
	Forward(x float64) (float64, error)
	// Inverse maps a real-line point back into the support.
	Inverse(y float64) float64
	// LogJacInverse returns log|d/dy Inverse(y)|, the change-of-variables
	// correction added to the native log-density.
	LogJacInverse(y float64) float64
}

// Log maps (0, +Inf) onto the real line via the natural logarithm.
type Log struct{}

func (Log) Name() string { return "log" }

func (Log) Support() (float64, float64) { return 0, math.Inf(1) }

func (Log) Forward(x float64) (float64, error) {
	if !(x > 0) {
		return 0, &DomainError{Transform: "log", Value: x, Lower: 0, Upper: math.Inf(1)}
	}
	return math.Log(x), nil
}

func (Log) Inverse(y float64) float64 { return math.Exp(y) }

// d/dy exp(y) = exp(y), so the log-Jacobian is y itself.
func (Log) LogJacInverse(y float64) float64 { return y }

// LogitAffine maps the open interval (Lower, Upper) onto the real line by
// rescaling to (0, 1) and applying the logit.
type LogitAffine struct {
	Lower, Upper float64
}

func (t LogitAffine) Name() string { return "logit" }

func (t LogitAffine) Support() (float64, float64) { return t.Lower, t.Upper }

func (t LogitAffine) Forward(x float64) (float64, error) {
	w := t.width()
	if !(x > t.Lower && x < t.Upper) {
		return 0, &DomainError{Transform: "logit", Value: x, Lower: t.Lower, Upper: t.Upper}
	}
	return logspace.Logit((x - t.Lower) / w), nil
}

func (t LogitAffine) Inverse(y float64) float64 {
	return t.Lower + t.width()*logspace.InvLogit(y)
}

// LogJacInverse is log(width) + log(invlogit(y)) + log(1-invlogit(y)), each
// term in a form that stays finite for large |y|.
func (t LogitAffine) LogJacInverse(y float64) float64 {
	return math.Log(t.width()) + logspace.LogInvLogit(y) + logspace.LogOneMinusInvLogit(y)
}

func (t LogitAffine) width() float64 {
	w := t.Upper - t.Lower
	if w <= 0 || math.IsInf(w, 0) || math.IsNaN(w) {
		panic("nobounds: logit transform requires finite bounds with upper > lower")
	}
	return w
}
