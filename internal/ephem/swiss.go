package ephem

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"kundli.app/kundli/internal/astro"
)

// queriedBodies are the bodies requested from the backend, keyed by their
// wire codes. Ketu is absent on purpose.
var queriedBodies = []astro.Body{
	astro.Sun, astro.Moon, astro.Mars, astro.Mercury, astro.Jupiter,
	astro.Venus, astro.Saturn, astro.Rahu,
	astro.Uranus, astro.Neptune, astro.Pluto,
}

type swissClient struct {
	baseURL string
	http    *http.Client
}

// NewSwissClient returns a Provider backed by a Swiss Ephemeris sidecar
// service. The sidecar handles julian-day conversion, Placidus houses and
// the Lahiri ayanamsa; this client only speaks its JSON contract.
func NewSwissClient(baseURL string, timeout time.Duration) Provider {
	return &swissClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type positionsRequest struct {
	UTC         string   `json:"utc"`
	Latitude    float64  `json:"lat"`
	Longitude   float64  `json:"lon"`
	Bodies      []string `json:"bodies"`
	HouseSystem string   `json:"house_system"`
	Ayanamsa    string   `json:"ayanamsa"`
}

type positionsResponse struct {
	Ascendant float64                 `json:"ascendant"`
	Bodies    map[string]bodyPosition `json:"bodies"`
}

type bodyPosition struct {
	Longitude float64 `json:"lon"`
	Speed     float64 `json:"speed"`
}

func (c *swissClient) Positions(ctx context.Context, utc time.Time, lat, lon float64) (*PositionSet, error) {
	codes := make([]string, len(queriedBodies))
	for i, b := range queriedBodies {
		codes[i] = b.Code()
	}

	body, err := json.Marshal(positionsRequest{
		UTC:         utc.UTC().Format(time.RFC3339),
		Latitude:    lat,
		Longitude:   lon,
		Bodies:      codes,
		HouseSystem: "P",
		Ayanamsa:    "lahiri",
	})
	if err != nil {
		return nil, fmt.Errorf("encoding positions request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/positions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building positions request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: backend returned %d", ErrUnavailable, resp.StatusCode)
	}

	var decoded positionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
	}

	slog.DebugContext(ctx, "positions fetched",
		"duration_ms", time.Since(start).Milliseconds(),
		"bodies", len(decoded.Bodies))

	return c.toPositionSet(decoded)
}

func (c *swissClient) toPositionSet(resp positionsResponse) (*PositionSet, error) {
	if resp.Ascendant < 0 || resp.Ascendant >= 360 {
		return nil, fmt.Errorf("%w: ascendant %f out of range", ErrUnavailable, resp.Ascendant)
	}

	set := &PositionSet{Ascendant: resp.Ascendant}
	for _, b := range queriedBodies {
		pos, ok := resp.Bodies[b.Code()]
		if !ok {
			return nil, fmt.Errorf("%w: missing body %s", ErrUnavailable, b.Code())
		}
		if pos.Longitude < 0 || pos.Longitude >= 360 {
			return nil, fmt.Errorf("%w: %s longitude %f out of range", ErrUnavailable, b.Code(), pos.Longitude)
		}
		set.Bodies = append(set.Bodies, astro.BodyPosition{
			Body:      b,
			Longitude: pos.Longitude,
			Speed:     pos.Speed,
		})
	}
	return set, nil
}
