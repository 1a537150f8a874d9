package dist

import "math"

// halfflat is the improper flat law on (0, +Inf): log-density zero inside the
// support, -Inf outside. It deliberately implements only distuv.LogProber.
type halfflat struct{}

func (halfflat) LogProb(x float64) float64 {
	if x <= 0 {
		return math.Inf(-1)
	}
	return 0
}
