// Package sun computes solar altitude and the sunrise/sunset pair of a
// solar day.
package sun

import (
	"math"
	"time"

	"github.com/thurmanmarka/sunshift/internal/solver"
	"github.com/thurmanmarka/sunshift/internal/timeutil"
)

// HorizonAltitude is the apparent altitude (degrees) of the Sun's centre
// when its upper limb touches the horizon: one solar semidiameter, 16'.
// Refraction is applied by Altitude.
const HorizonAltitude = -0.2667

const (
	samplesPerDay = 48 // every 30 minutes
	tolerance     = 15 * time.Second
)

// Altitude returns the Sun's apparent altitude in degrees at (lat, lon)
// at instant t: the geometric altitude lifted by atmospheric refraction.
func Altitude(lat, lon float64, t time.Time) float64 {
	geom := geometricAltitude(lat, lon, t)
	return geom + timeutil.ApproxRefraction(geom)
}

func geometricAltitude(lat, lon float64, t time.Time) float64 {
	eq := Position(t)

	dec := timeutil.Deg2Rad(eq.Dec)
	phi := timeutil.Deg2Rad(lat)
	lst := timeutil.Deg2Rad(timeutil.Normalize360(timeutil.GMST(t) + lon))
	h := timeutil.NormalizePi(lst - timeutil.Deg2Rad(eq.RA))

	sinAlt := math.Sin(phi)*math.Sin(dec) + math.Cos(phi)*math.Cos(dec)*math.Cos(h)
	return timeutil.Rad2Deg(math.Asin(sinAlt))
}

// RiseSetForDate returns sunrise and the following sunset, in UTC, for
// the solar day whose mean local noon falls on the calendar date of
// date. The day is searched over the 24 hours centred on that noon, so
// sunsets after UTC midnight still belong to the date they end.
func RiseSetForDate(lat, lon float64, date time.Time) (riseUTC, setUTC time.Time, ok bool) {
	return EventsForDate(lat, lon, date, HorizonAltitude)
}

// EventsForDate is RiseSetForDate for an arbitrary target altitude.
func EventsForDate(lat, lon float64, date time.Time, targetAlt float64) (riseUTC, setUTC time.Time, ok bool) {
	noon := timeutil.MeanSolarNoon(date, lon)
	b := solver.Bracket{
		Start: noon.Add(-12 * time.Hour),
		End:   noon.Add(12 * time.Hour),
		Steps: samplesPerDay + 1,
		Tol:   tolerance,
	}
	alt := func(t time.Time) float64 {
		return Altitude(lat, lon, t)
	}

	rise, set := solver.FindRiseSet(alt, b, targetAlt)
	if !rise.OK || !set.OK {
		return time.Time{}, time.Time{}, false
	}
	return rise.Time.UTC(), set.Time.UTC(), true
}
