package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"kundli.app/kundli/common/logger"
	"kundli.app/kundli/internal/astro"
	"kundli.app/kundli/internal/ephem"
)

// ErrBadBirthDetails marks birth input that cannot be parsed into an
// instant. Handlers map it to a client error.
var ErrBadBirthDetails = errors.New("invalid birth details")

// BirthDetails is the parsed chart request: civil birth date and time,
// geographic coordinates and the UTC offset in effect at birth.
type BirthDetails struct {
	Date      string // YYYY-MM-DD
	Time      string // HH:MM or HH:MM:SS
	Lat       float64
	Lon       float64
	TZOffset  float64 // hours east of UTC, may be fractional (e.g. 5.5)
	ChartType astro.ChartType
}

type KundliService interface {
	Build(ctx context.Context, details BirthDetails) (*astro.Chart, error)
}

type kundliService struct {
	provider ephem.Provider
	engine   *astro.Engine
}

func NewKundliService(provider ephem.Provider) KundliService {
	return &kundliService{
		provider: provider,
		engine:   astro.NewEngine(),
	}
}

func (s *kundliService) Build(ctx context.Context, details BirthDetails) (*astro.Chart, error) {
	chartType := details.ChartType
	if chartType == "" {
		chartType = astro.ChartD1
	}
	if chartType != astro.ChartD1 && chartType != astro.ChartD9 {
		return nil, fmt.Errorf("%w: unknown chart type %q", ErrBadBirthDetails, details.ChartType)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		ChartType: logger.Ptr(string(chartType)),
		Component: "kundli.service.chart",
	})

	utc, err := birthInstant(details.Date, details.Time, details.TZOffset)
	if err != nil {
		slog.WarnContext(ctx, "unparseable birth details", "error", err)
		return nil, fmt.Errorf("%w: %s", ErrBadBirthDetails, err)
	}

	set, err := s.provider.Positions(ctx, utc, details.Lat, details.Lon)
	if err != nil {
		slog.ErrorContext(ctx, "position provider failed", "error", err)
		return nil, fmt.Errorf("fetching positions: %w", err)
	}

	ascendant, positions := set.Ascendant, set.Bodies
	if chartType == astro.ChartD9 {
		ascendant, positions = astro.NavamsaPositions(ascendant, positions)
	}

	chart, err := s.engine.Build(chartType, ascendant, positions)
	if err != nil {
		slog.ErrorContext(ctx, "chart derivation failed", "error", err)
		return nil, fmt.Errorf("deriving chart: %w", err)
	}

	slog.InfoContext(ctx, "chart built",
		"ascendant", chart.Ascendant.String(),
		"placements", len(chart.Placements),
		"aspects", len(chart.Aspects),
	)
	return chart, nil
}

// birthInstant converts a civil birth date, clock time and UTC offset into
// the UT instant the position provider expects.
func birthInstant(date, clock string, tzOffset float64) (time.Time, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", date, err)
	}

	t, err := time.Parse("15:04:05", clock)
	if err != nil {
		t, err = time.Parse("15:04", clock)
		if err != nil {
			return time.Time{}, fmt.Errorf("parsing time %q: %w", clock, err)
		}
	}

	civil := time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
	return civil.Add(-time.Duration(tzOffset * float64(time.Hour))), nil
}
