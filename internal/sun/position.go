package sun

import (
	"math"
	"time"

	"github.com/thurmanmarka/sunshift/internal/timeutil"
)

// Equatorial holds geocentric equatorial coordinates in degrees.
type Equatorial struct {
	RA  float64 // right ascension, degrees [0, 360)
	Dec float64 // declination, degrees
}

// Position returns the Sun's approximate geocentric RA/Dec at t, using
// the low-precision almanac model (arcminute-level accuracy):
//
//	g   = mean anomaly
//	q   = mean longitude
//	L   = ecliptic longitude (q plus equation of centre)
//	eps = obliquity of the ecliptic
func Position(t time.Time) Equatorial {
	d := timeutil.DaysSinceJ2000(t)

	g := timeutil.Deg2Rad(357.529 + 0.98560028*d)
	q := timeutil.Deg2Rad(280.459 + 0.98564736*d)
	L := q + timeutil.Deg2Rad(1.915)*math.Sin(g) + timeutil.Deg2Rad(0.020)*math.Sin(2*g)
	eps := timeutil.Deg2Rad(23.439 - 0.00000036*d)

	sinL := math.Sin(L)
	ra := math.Atan2(math.Cos(eps)*sinL, math.Cos(L))
	if ra < 0 {
		ra += 2 * math.Pi
	}

	return Equatorial{
		RA:  timeutil.Rad2Deg(ra),
		Dec: timeutil.Rad2Deg(math.Asin(math.Sin(eps) * sinL)),
	}
}
