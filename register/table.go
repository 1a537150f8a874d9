package register

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// DensityFunc evaluates a transformed density with a positional parameter
// vector in table order.
type DensityFunc func(y float64, params []float64, logp bool) (float64, error)

// SampleFunc draws n transformed variates with a positional parameter vector.
type SampleFunc func(n int, params []float64, src rand.Source) ([]float64, error)

// Entry describes one registered distribution: the manifest metadata a host
// compiler consumes plus the two callable entry points. The callable fields
// are excluded from serialization.
type Entry struct {
	Name      string   `json:"name" yaml:"name"`
	Density   string   `json:"density" yaml:"density"`
	Sampler   string   `json:"sampler" yaml:"sampler"`
	Transform string   `json:"transform" yaml:"transform"`
	Support   string   `json:"support" yaml:"support"`
	Params    []string `json:"params" yaml:"params"`

	DensityFn DensityFunc `json:"-" yaml:"-"`
	SampleFn  SampleFunc  `json:"-" yaml:"-"`
}

func arity(name string, params []float64, want int) error {
	if len(params) != want {
		return fmt.Errorf("register: %s takes %d parameter(s), got %d", name, want, len(params))
	}
	return nil
}

var table = []Entry{
	{
		Name: "LogChisq", Density: "dLogChisq", Sampler: "rLogChisq",
		Transform: "log", Support: "(0, Inf)", Params: []string{"df"},
		DensityFn: func(y float64, p []float64, logp bool) (float64, error) {
			if err := arity("LogChisq", p, 1); err != nil {
				return 0, err
			}
			return DLogChisq(y, p[0], logp), nil
		},
		SampleFn: func(n int, p []float64, src rand.Source) ([]float64, error) {
			if err := arity("LogChisq", p, 1); err != nil {
				return nil, err
			}
			return RLogChisq(n, p[0], src)
		},
	},
	{
		Name: "LogExp", Density: "dLogExp", Sampler: "rLogExp",
		Transform: "log", Support: "(0, Inf)", Params: []string{"rate"},
		DensityFn: func(y float64, p []float64, logp bool) (float64, error) {
			if err := arity("LogExp", p, 1); err != nil {
				return 0, err
			}
			return DLogExp(y, p[0], logp), nil
		},
		SampleFn: func(n int, p []float64, src rand.Source) ([]float64, error) {
			if err := arity("LogExp", p, 1); err != nil {
				return nil, err
			}
			return RLogExp(n, p[0], src)
		},
	},
	{
		Name: "LogGamma", Density: "dLogGamma", Sampler: "rLogGamma",
		Transform: "log", Support: "(0, Inf)", Params: []string{"shape", "rate"},
		DensityFn: func(y float64, p []float64, logp bool) (float64, error) {
			if err := arity("LogGamma", p, 2); err != nil {
				return 0, err
			}
			return DLogGamma(y, p[0], p[1], logp), nil
		},
		SampleFn: func(n int, p []float64, src rand.Source) ([]float64, error) {
			if err := arity("LogGamma", p, 2); err != nil {
				return nil, err
			}
			return RLogGamma(n, p[0], p[1], src)
		},
	},
	{
		Name: "LogHalfflat", Density: "dLogHalfflat", Sampler: "rLogHalfflat",
		Transform: "log", Support: "(0, Inf)", Params: nil,
		DensityFn: func(y float64, p []float64, logp bool) (float64, error) {
			if err := arity("LogHalfflat", p, 0); err != nil {
				return 0, err
			}
			return DLogHalfflat(y, logp), nil
		},
		SampleFn: func(n int, p []float64, src rand.Source) ([]float64, error) {
			if err := arity("LogHalfflat", p, 0); err != nil {
				return nil, err
			}
			return RLogHalfflat(n, src)
		},
	},
	{
		Name: "LogInvGamma", Density: "dLogInvGamma", Sampler: "rLogInvGamma",
		Transform: "log", Support: "(0, Inf)", Params: []string{"shape", "scale"},
		DensityFn: func(y float64, p []float64, logp bool) (float64, error) {
			if err := arity("LogInvGamma", p, 2); err != nil {
				return 0, err
			}
			return DLogInvGamma(y, p[0], p[1], logp), nil
		},
		SampleFn: func(n int, p []float64, src rand.Source) ([]float64, error) {
			if err := arity("LogInvGamma", p, 2); err != nil {
				return nil, err
			}
			return RLogInvGamma(n, p[0], p[1], src)
		},
	},
	{
		Name: "LogLognorm", Density: "dLogLognorm", Sampler: "rLogLognorm",
		Transform: "log", Support: "(0, Inf)", Params: []string{"meanlog", "sdlog"},
		DensityFn: func(y float64, p []float64, logp bool) (float64, error) {
			if err := arity("LogLognorm", p, 2); err != nil {
				return 0, err
			}
			return DLogLognorm(y, p[0], p[1], logp), nil
		},
		SampleFn: func(n int, p []float64, src rand.Source) ([]float64, error) {
			if err := arity("LogLognorm", p, 2); err != nil {
				return nil, err
			}
			return RLogLognorm(n, p[0], p[1], src)
		},
	},
	{
		Name: "LogWeibull", Density: "dLogWeibull", Sampler: "rLogWeibull",
		Transform: "log", Support: "(0, Inf)", Params: []string{"shape", "scale"},
		DensityFn: func(y float64, p []float64, logp bool) (float64, error) {
			if err := arity("LogWeibull", p, 2); err != nil {
				return 0, err
			}
			return DLogWeibull(y, p[0], p[1], logp), nil
		},
		SampleFn: func(n int, p []float64, src rand.Source) ([]float64, error) {
			if err := arity("LogWeibull", p, 2); err != nil {
				return nil, err
			}
			return RLogWeibull(n, p[0], p[1], src)
		},
	},
	{
		Name: "LogitBeta", Density: "dLogitBeta", Sampler: "rLogitBeta",
		Transform: "logit", Support: "(0, 1)", Params: []string{"shape1", "shape2"},
		DensityFn: func(y float64, p []float64, logp bool) (float64, error) {
			if err := arity("LogitBeta", p, 2); err != nil {
				return 0, err
			}
			return DLogitBeta(y, p[0], p[1], logp), nil
		},
		SampleFn: func(n int, p []float64, src rand.Source) ([]float64, error) {
			if err := arity("LogitBeta", p, 2); err != nil {
				return nil, err
			}
			return RLogitBeta(n, p[0], p[1], src)
		},
	},
	{
		Name: "LogitUniform", Density: "dLogitUniform", Sampler: "rLogitUniform",
		Transform: "logit", Support: "(lower, upper)", Params: []string{"lower", "upper"},
		DensityFn: func(y float64, p []float64, logp bool) (float64, error) {
			if err := arity("LogitUniform", p, 2); err != nil {
				return 0, err
			}
			return DLogitUniform(y, p[0], p[1], logp), nil
		},
		SampleFn: func(n int, p []float64, src rand.Source) ([]float64, error) {
			if err := arity("LogitUniform", p, 2); err != nil {
				return nil, err
			}
			return RLogitUniform(n, p[0], p[1], src)
		},
	},
}

// Table returns the full registration table in a stable order.
func Table() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	return out
}

// Lookup finds an entry by name (case-sensitive).
func Lookup(name string) (Entry, bool) {
	for _, e := range table {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
