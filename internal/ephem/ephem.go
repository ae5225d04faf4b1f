// Package ephem supplies sidereal positions for chart computation. The
// astronomical work itself (julian-day conversion, planetary longitudes,
// house cusps) is delegated to an external Swiss Ephemeris backend; this
// package only defines the contract and the HTTP client for it.
package ephem

import (
	"context"
	"errors"
	"time"

	"kundli.app/kundli/internal/astro"
)

// ErrUnavailable marks a position backend failure. It is fatal for the
// request: no retry, no partial chart.
var ErrUnavailable = errors.New("position backend unavailable")

// PositionSet is one backend response: the sidereal ascendant longitude
// plus longitude and angular speed per tracked body. Ketu never appears
// here; the derivation engine computes it from Rahu.
type PositionSet struct {
	Ascendant float64
	Bodies    []astro.BodyPosition
}

// Provider computes sidereal positions for an instant and location.
// Implementations must return longitudes normalized to [0,360), Placidus
// ascendant, Lahiri ayanamsa.
type Provider interface {
	Positions(ctx context.Context, utc time.Time, lat, lon float64) (*PositionSet, error)
}
