// Package timeutil holds the small time and angle helpers shared by the
// solar model and the offset scorer.
package timeutil

import (
	"math"
	"time"
)

// j2000 is the J2000.0 epoch: 2000-01-01 12:00:00 UTC.
var j2000 = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

// DaysSinceJ2000 returns the number of (UTC) days since the J2000.0 epoch.
//
// UTC is used in place of TT; the ~69s difference is well below the
// accuracy of the low-precision solar model.
func DaysSinceJ2000(t time.Time) float64 {
	return t.UTC().Sub(j2000).Hours() / 24.0
}

// GMST returns the Greenwich mean sidereal time in degrees [0, 360).
func GMST(t time.Time) float64 {
	return Normalize360(280.46061837 + 360.98564736629*DaysSinceJ2000(t))
}

// UTCDate returns midnight UTC of the calendar date of t, taking the
// year/month/day fields as seen in t's own location.
func UTCDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MeanSolarNoon returns the approximate UTC instant of local mean solar
// noon at longitude lon (degrees, east positive) on the calendar date.
func MeanSolarNoon(date time.Time, lon float64) time.Time {
	return UTCDate(date).Add(12 * time.Hour).Add(-Hours(lon / 15.0))
}

// Hours converts fractional hours to a duration, rounded to the nearest
// second.
func Hours(h float64) time.Duration {
	return time.Duration(math.Round(h*3600)) * time.Second
}

func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180.0
}

func Rad2Deg(r float64) float64 {
	return r * 180.0 / math.Pi
}

func Normalize360(d float64) float64 {
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}

// NormalizePi wraps an angle in radians to (-π, π].
func NormalizePi(r float64) float64 {
	for r > math.Pi {
		r -= 2 * math.Pi
	}
	for r <= -math.Pi {
		r += 2 * math.Pi
	}
	return r
}

// ApproxRefraction returns the atmospheric refraction in degrees to add
// to a geometric altitude altDeg, using Saemundsson's formula:
//
//	R (arcmin) ≈ 1.02 / tan(alt + 10.3 / (alt + 5.11))
//
// Altitudes below -1° return 0.
func ApproxRefraction(altDeg float64) float64 {
	if altDeg < -1.0 {
		return 0
	}
	alt := math.Max(altDeg, -0.5)

	t := math.Tan(Deg2Rad(alt + 10.3/(alt+5.11)))
	if t == 0 {
		return 0
	}
	return 1.02 / t / 60.0
}
