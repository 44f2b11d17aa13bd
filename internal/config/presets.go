package config

import "github.com/san-kum/thermdecay/internal/cooling"

// Scenario is a named parameter set.
type Scenario struct {
	Name           string `yaml:"name"`
	Slug           string `yaml:"slug,omitempty"`
	Description    string `yaml:"description,omitempty"`
	cooling.Params `yaml:",inline"`
}

// Presets are rotated in this order, starting from the first.
var Presets = []Scenario{
	{
		Name: "Hot Coffee in Room", Slug: "coffee",
		Description: "starts hot, moderate cooling toward room temperature",
		Params:      cooling.Params{T0: 90.0, Ambient: 25.0, K: 0.07, TMax: 60.0, Points: 100},
	},
	{
		Name: "Iced Tea Warming Up", Slug: "iced-tea",
		Description: "fridge-cold drink left out on a hot day",
		Params:      cooling.Params{T0: 4.0, Ambient: 30.0, K: 0.05, TMax: 120.0, Points: 100},
	},
	{
		Name: "Forensic: Body Cooling", Slug: "forensic",
		Description: "body temperature in a cold basement, slow insulated cooling",
		Params:      cooling.Params{T0: 37.0, Ambient: 15.0, K: 0.03, TMax: 180.0, Points: 200},
	},
	{
		Name: "Metal Quenching", Slug: "quench",
		Description: "red hot metal dropped into a water bath, very fast cooling",
		Params:      cooling.Params{T0: 800.0, Ambient: 20.0, K: 0.2, TMax: 30.0, Points: 200},
	},
}

// Lookup finds a preset by slug or by its full name.
func Lookup(name string) (Scenario, bool) {
	for _, s := range Presets {
		if s.Slug == name || s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for _, s := range Presets {
		names = append(names, s.Slug)
	}
	return names
}

// Selector hands out scenarios round-robin. The zero value is not usable;
// use NewSelector.
type Selector struct {
	scenarios []Scenario
	index     int
}

// NewSelector rotates through list, or through Presets when list is empty.
func NewSelector(list []Scenario) *Selector {
	if len(list) == 0 {
		list = Presets
	}
	return &Selector{scenarios: list}
}

// Next returns the scenario at the current position and advances.
func (s *Selector) Next() Scenario {
	sc := s.scenarios[s.index]
	s.index = (s.index + 1) % len(s.scenarios)
	return sc
}

func (s *Selector) Index() int { return s.index }

func (s *Selector) Len() int { return len(s.scenarios) }

func (s *Selector) Reset() { s.index = 0 }
