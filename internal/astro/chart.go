package astro

import (
	"fmt"
	"math"
)

// ChartType selects the divisional variant of a chart.
type ChartType string

const (
	ChartD1 ChartType = "regular"
	ChartD9 ChartType = "d9"
)

// BodyPosition is a raw sidereal position as supplied by the position
// provider: longitude normalized to [0,360) and signed angular speed
// (negative means retrograde motion).
type BodyPosition struct {
	Body      Body
	Longitude float64
	Speed     float64
}

// Chart is an immutable snapshot of one derived chart: ascendant, the
// house↔sign rotation, every placement, every aspect and the house
// strength scores.
type Chart struct {
	Type       ChartType
	Ascendant  Sign
	AscDegree  float64 // ascendant degree within its sign
	HouseSigns [12]Sign
	Placements []Placement
	Aspects    []Aspect
	Strengths  [12]HouseStrength
}

// HouseOf returns the house (1..12) occupied by the sign in this chart.
// Exactly one house matches: houses are a rotation of the sign sequence
// anchored at the ascendant.
func (c *Chart) HouseOf(s Sign) int {
	for h, sign := range c.HouseSigns {
		if sign == s {
			return h + 1
		}
	}
	return 0 // unreachable for valid charts
}

// Engine derives charts from raw positions. Safe for concurrent use.
type Engine struct {
	combustOrbs map[Body]float64
	strength    StrengthPolicy
}

// Option configures an Engine.
type Option func(*Engine)

// WithUniformOrb replaces the per-body combustion table with a single orb
// applied to every body except the Sun.
func WithUniformOrb(orb float64) Option {
	return func(e *Engine) {
		orbs := make(map[Body]float64)
		for _, b := range Bodies() {
			if b == Sun {
				continue
			}
			orbs[b] = orb
		}
		e.combustOrbs = orbs
	}
}

// WithStrengthPolicy swaps the house strength scoring constants.
func WithStrengthPolicy(p StrengthPolicy) Option {
	return func(e *Engine) {
		e.strength = p
	}
}

// NewEngine builds an engine with per-body combustion orbs and the parity
// strength policy unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		combustOrbs: defaultCombustOrbs,
		strength:    DefaultStrengthPolicy(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Build derives a complete chart from an ascendant longitude and raw body
// positions. Ketu is derived from Rahu (longitude +180°, speed 0) when
// absent from the input. Longitudes must be pre-normalized to [0,360).
func (e *Engine) Build(chartType ChartType, ascendant float64, positions []BodyPosition) (*Chart, error) {
	if ascendant < 0 || ascendant >= 360 {
		return nil, fmt.Errorf("ascendant longitude %f out of range [0,360)", ascendant)
	}

	positions, err := withKetu(positions)
	if err != nil {
		return nil, err
	}

	ascSign := SignOf(ascendant)
	chart := &Chart{
		Type:      chartType,
		Ascendant: ascSign,
		AscDegree: DegreeInSign(ascendant),
	}
	for h := 0; h < 12; h++ {
		chart.HouseSigns[h] = Sign((int(ascSign) + h) % 12)
	}

	var sunLon float64
	for _, pos := range positions {
		if pos.Body == Sun {
			sunLon = pos.Longitude
		}
	}

	chart.Placements = make([]Placement, 0, len(positions))
	for _, pos := range positions {
		if pos.Longitude < 0 || pos.Longitude >= 360 {
			return nil, fmt.Errorf("%s longitude %f out of range [0,360)", pos.Body, pos.Longitude)
		}

		pl := e.place(pos, sunLon)
		pl.House = chart.HouseOf(pl.Sign)
		chart.Placements = append(chart.Placements, pl)
		chart.Aspects = append(chart.Aspects, AspectsFrom(pl.Body, pl.House)...)
	}

	chart.Strengths = e.strength.score(chart.Placements, chart.Aspects)
	return chart, nil
}

// place derives the per-body placement: sign, degree, statuses, dignity.
func (e *Engine) place(pos BodyPosition, sunLon float64) Placement {
	pl := Placement{
		Body:      pos.Body,
		Longitude: pos.Longitude,
		Degree:    DegreeInSign(pos.Longitude),
		Sign:      SignOf(pos.Longitude),
	}

	if pos.Speed < 0 {
		pl.Status |= StatusRetrograde
	}

	if ex, ok := exaltations[pos.Body]; ok {
		switch pl.Sign {
		case ex.exaltSign:
			pl.Status |= StatusExalted
			if math.Abs(pl.Degree-ex.exaltDeg) <= peakOrb {
				pl.Status |= StatusPeak
			}
		case ex.debilSign:
			pl.Status |= StatusDebilitated
			if math.Abs(pl.Degree-ex.debilDeg) <= peakOrb {
				pl.Status |= StatusPeak
			}
		}
	}

	if pos.Body != Sun {
		if orb, ok := e.combustOrbs[pos.Body]; ok && Separation(pos.Longitude, sunLon) < orb {
			pl.Status |= StatusCombust
		}
	}

	pl.Dignity = DignityOf(pos.Body, pl.Sign)
	return pl
}

// withKetu appends the derived Ketu position unless the caller already
// supplied one.
func withKetu(positions []BodyPosition) ([]BodyPosition, error) {
	var rahu *BodyPosition
	for i := range positions {
		if positions[i].Body == Ketu {
			return positions, nil
		}
		if positions[i].Body == Rahu {
			rahu = &positions[i]
		}
	}
	if rahu == nil {
		return nil, fmt.Errorf("rahu position required to derive ketu")
	}

	out := make([]BodyPosition, len(positions), len(positions)+1)
	copy(out, positions)
	return append(out, BodyPosition{
		Body:      Ketu,
		Longitude: math.Mod(rahu.Longitude+180, 360),
		Speed:     0, // computed point, never retrograde
	}), nil
}

// Separation returns the angular distance between two longitudes, in
// [0,180].
func Separation(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}
