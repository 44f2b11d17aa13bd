// Package cooling evaluates Newton's law of cooling in closed form.
package cooling

import "math"

const (
	FieldT0      = "T0"
	FieldAmbient = "T_env"
	FieldK       = "k"
	FieldTMax    = "t_max"
	FieldPoints  = "Points"
)

// Params are the inputs of one evaluation.
type Params struct {
	T0      float64 `yaml:"t0"`
	Ambient float64 `yaml:"t_env"`
	K       float64 `yaml:"k"`
	TMax    float64 `yaml:"t_max"`
	Points  int     `yaml:"points"`
}

// Validate checks the preconditions of Evaluate.
func (p Params) Validate() error {
	if p.Points < 2 {
		return invalid(FieldPoints, "must be > 1")
	}
	// written so that NaN fails too
	if !(p.TMax > 0) {
		return invalid(FieldTMax, "must be positive")
	}
	if math.IsInf(p.TMax, 1) {
		return invalid(FieldTMax, "must be finite")
	}
	return nil
}

// At returns the temperature at time t.
func (p Params) At(t float64) float64 {
	return p.Ambient + (p.T0-p.Ambient)*math.Exp(-p.K*t)
}

// Sample is one point of the curve.
type Sample struct {
	Time float64
	Temp float64
}

// Evaluate samples the curve at p.Points evenly spaced times in [0, p.TMax],
// both ends included.
func Evaluate(p Params) ([]Sample, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	samples := make([]Sample, p.Points)
	last := float64(p.Points - 1)
	for i := range samples {
		t := p.TMax * float64(i) / last
		samples[i] = Sample{Time: t, Temp: p.At(t)}
	}
	return samples, nil
}

// Curve is an evaluated parameter set, the unit that gets rendered and
// exported.
type Curve struct {
	Params  Params
	Samples []Sample
}

func Compute(p Params) (*Curve, error) {
	samples, err := Evaluate(p)
	if err != nil {
		return nil, err
	}
	return &Curve{Params: p, Samples: samples}, nil
}

func (c *Curve) Times() []float64 {
	out := make([]float64, len(c.Samples))
	for i, s := range c.Samples {
		out[i] = s.Time
	}
	return out
}

func (c *Curve) Temps() []float64 {
	out := make([]float64, len(c.Samples))
	for i, s := range c.Samples {
		out[i] = s.Temp
	}
	return out
}
