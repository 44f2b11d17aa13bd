package cooling

import (
	"math"
	"strconv"
	"strings"
)

// Fields holds the raw text of the five inputs.
type Fields struct {
	T0      string
	Ambient string
	K       string
	TMax    string
	Points  string
}

// FieldsOf renders p back into text, the inverse of ParseParams for
// well-formed input.
func FieldsOf(p Params) Fields {
	return Fields{
		T0:      FormatNumber(p.T0),
		Ambient: FormatNumber(p.Ambient),
		K:       FormatNumber(p.K),
		TMax:    FormatNumber(p.TMax),
		Points:  strconv.Itoa(p.Points),
	}
}

// ParseParams parses and validates the raw inputs. The sample count is read
// as a real number and truncated toward zero, so "100.0" is accepted.
func ParseParams(f Fields) (Params, error) {
	var (
		p   Params
		err error
	)
	if p.T0, err = parseNumber(FieldT0, f.T0); err != nil {
		return Params{}, err
	}
	if p.Ambient, err = parseNumber(FieldAmbient, f.Ambient); err != nil {
		return Params{}, err
	}
	if p.K, err = parseNumber(FieldK, f.K); err != nil {
		return Params{}, err
	}
	if p.TMax, err = parseNumber(FieldTMax, f.TMax); err != nil {
		return Params{}, err
	}
	points, err := parseNumber(FieldPoints, f.Points)
	if err != nil {
		return Params{}, err
	}
	if math.IsNaN(points) || math.IsInf(points, 0) || math.Abs(points) > math.MaxInt32 {
		return Params{}, &ParamError{Field: FieldPoints, Value: f.Points, Reason: "must be a whole number"}
	}
	p.Points = int(points)

	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

func parseNumber(field, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ParamError{Field: field, Value: raw, Reason: "must be a number", Err: err}
	}
	return v, nil
}

// FormatNumber prints v the way the input fields show it: shortest
// round-trip form, with ".0" kept on whole numbers. Large and tiny values
// use exponent notation so they stay short.
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}
