package cooling

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

type Direction int

const (
	Steady Direction = iota
	Cooling
	Warming
)

func (d Direction) String() string {
	switch d {
	case Cooling:
		return "cooling"
	case Warming:
		return "warming"
	default:
		return "steady"
	}
}

// Summary describes a computed curve.
type Summary struct {
	Direction Direction
	Initial   float64
	Final     float64
	Change    float64
	Min       float64
	Max       float64
	// TimeConstant and HalfLife are zero unless k > 0.
	TimeConstant float64
	HalfLife     float64
	// Closed is the fraction of the initial gap to ambient closed by t_max,
	// zero unless k > 0.
	Closed float64
}

func Summarize(c *Curve) Summary {
	p := c.Params
	temps := c.Temps()

	s := Summary{Direction: direction(p)}
	if len(temps) == 0 {
		return s
	}
	s.Initial = temps[0]
	s.Final = temps[len(temps)-1]
	s.Change = s.Final - s.Initial
	s.Min = floats.Min(temps)
	s.Max = floats.Max(temps)
	if p.K > 0 {
		s.TimeConstant = 1 / p.K
		s.HalfLife = math.Ln2 / p.K
		s.Closed = 1 - math.Exp(-p.K*p.TMax)
	}
	return s
}

func direction(p Params) Direction {
	if p.K == 0 || p.T0 == p.Ambient {
		return Steady
	}
	// a negative k runs away from ambient
	cooling := p.T0 > p.Ambient
	if p.K < 0 {
		cooling = !cooling
	}
	if cooling {
		return Cooling
	}
	return Warming
}

// Formula is the closed form with the parameters substituted.
func Formula(p Params) string {
	return fmt.Sprintf("T(t) = %s + (%.2f)e^(-%st)", FormatNumber(p.Ambient), p.T0-p.Ambient, FormatNumber(p.K))
}
