// Package sunshift finds the fixed UTC offset that best lines up a
// location's daylight with a desired clock-time window.
//
// A Provider supplies sunrise and sunset for each day of a year. The
// Scorer shifts those instants by a candidate Offset and sums, over the
// year, how many hours of daylight fall inside the Window. Search
// evaluates every quarter-hour offset from -12h to +12h and keeps the
// best.
//
// Two providers are available:
//   - SolverProvider, an altitude-crossing solver over a low-precision
//     solar model (about ±1 minute).
//   - NOAAProvider, the NOAA sunrise equation from go-sunrise.
//
// Either can be wrapped in a CachingProvider.
package sunshift

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/thurmanmarka/sunshift/internal/sun"
)

// Coordinates represent an observer's location.
type Coordinates struct {
	Lat       float64 // degrees, north positive
	Lon       float64 // degrees, east positive (west negative, e.g. -71 for 71°W)
	Elevation float64 // meters above sea level (reserved for future use)
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%.4f,%.4f", c.Lat, c.Lon)
}

// RiseSet holds the sunrise and following sunset of one solar day, as
// UTC instants.
type RiseSet struct {
	Rise time.Time
	Set  time.Time
}

// Daylight returns the time between rise and set.
func (rs RiseSet) Daylight() time.Duration {
	return rs.Set.Sub(rs.Rise)
}

var (
	// ErrNoRiseNoSet is returned when the Sun does not both rise and set
	// on that date at that location (polar day or polar night).
	ErrNoRiseNoSet = errors.New("sun does not rise and set on this date")

	// ErrUnknownProvider is returned by NewProvider for an unrecognised name.
	ErrUnknownProvider = errors.New("unknown provider")
)

// Provider returns the sunrise and sunset of the solar day whose local
// noon falls on the calendar date of date.
type Provider interface {
	RiseSet(loc Coordinates, date time.Time) (RiseSet, error)
}

// Provider names accepted by NewProvider.
const (
	ProviderSolver = "solver"
	ProviderNOAA   = "noaa"
)

// ProviderNames lists the names accepted by NewProvider.
func ProviderNames() []string {
	return []string{ProviderSolver, ProviderNOAA}
}

// NewProvider returns the provider registered under name.
func NewProvider(name string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ProviderSolver, "":
		return SolverProvider{}, nil
	case ProviderNOAA:
		return NOAAProvider{}, nil
	default:
		return nil, fmt.Errorf("%w %q (use %s)", ErrUnknownProvider, name, strings.Join(ProviderNames(), " or "))
	}
}

// SolverProvider bisects the Sun's altitude curve for the horizon
// crossings around local solar noon.
type SolverProvider struct{}

func (SolverProvider) RiseSet(loc Coordinates, date time.Time) (RiseSet, error) {
	rise, set, ok := sun.RiseSetForDate(loc.Lat, loc.Lon, date)
	if !ok {
		return RiseSet{}, ErrNoRiseNoSet
	}
	return RiseSet{Rise: rise, Set: set}, nil
}

// NOAAProvider uses the NOAA sunrise equation.
type NOAAProvider struct{}

func (NOAAProvider) RiseSet(loc Coordinates, date time.Time) (RiseSet, error) {
	y, m, d := date.Date()
	rise, set := sunrise.SunriseSunset(loc.Lat, loc.Lon, y, m, d)
	if rise.IsZero() || set.IsZero() || !set.After(rise) {
		return RiseSet{}, ErrNoRiseNoSet
	}
	return RiseSet{Rise: rise.UTC(), Set: set.UTC()}, nil
}

// DaylightHours returns the hours between sunrise and sunset on date.
func DaylightHours(p Provider, loc Coordinates, date time.Time) (float64, error) {
	rs, err := p.RiseSet(loc, date)
	if err != nil {
		return 0, err
	}
	return rs.Daylight().Hours(), nil
}
