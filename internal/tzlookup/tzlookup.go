// Package tzlookup maps coordinates to the civil time zone in force there.
package tzlookup

import (
	"errors"
	"fmt"
	"time"

	"github.com/bradfitz/latlong"
)

// UnknownName is reported as the zone name when no zone is found.
const UnknownName = "Unknown"

// ErrUnknownZone is returned when no time zone covers the coordinates.
var ErrUnknownZone = errors.New("could not determine timezone")

// Zone is a time zone and the UTC offset it applies at a given instant.
type Zone struct {
	Name   string  `json:"name"`
	Offset float64 `json:"offset_hours"`
	Abbrev string  `json:"abbreviation,omitempty"`
}

// ZoneName returns the IANA zone name covering (lat, lon). latlong
// reports an empty name for unmapped points such as open ocean.
func ZoneName(lat, lon float64) (string, error) {
	name := latlong.LookupZoneName(lat, lon)
	if name == "" {
		return "", fmt.Errorf("%w at %.4f,%.4f", ErrUnknownZone, lat, lon)
	}
	return name, nil
}

// Lookup returns the zone covering (lat, lon) with the offset it applies
// at instant at.
func Lookup(lat, lon float64, at time.Time) (Zone, error) {
	name, err := ZoneName(lat, lon)
	if err != nil {
		return Zone{Name: UnknownName}, err
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return Zone{Name: UnknownName}, fmt.Errorf("loading zone %q: %w", name, err)
	}
	abbrev, secs := at.In(loc).Zone()
	return Zone{
		Name:   name,
		Offset: float64(secs) / 3600,
		Abbrev: abbrev,
	}, nil
}
