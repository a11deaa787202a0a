// Package solver finds the instants where an altitude curve crosses a
// target altitude.
package solver

import (
	"time"
)

// AltitudeFunc returns altitude in degrees at time t (topocentric).
type AltitudeFunc func(t time.Time) float64

// EventType describes whether we are looking for a rising or setting event.
type EventType int

const (
	// CrossingUp means altitude is increasing through the target value (rise).
	CrossingUp EventType = iota
	// CrossingDown means altitude is decreasing through the target value (set).
	CrossingDown
)

// Bracket is the time interval searched and the sampling used to locate
// a crossing before it is refined by bisection.
type Bracket struct {
	Start, End time.Time
	Steps      int           // samples across [Start, End]
	Tol        time.Duration // bisection stops once the interval is this small
}

// Result holds the output of an altitude event search.
type Result struct {
	Time time.Time
	OK   bool
}

// FindAltitudeEvent searches b for the first instant where f crosses
// targetDeg in the direction of eventType. It samples the bracket to
// find a sign change in (f - targetDeg) and then bisects.
func FindAltitudeEvent(f AltitudeFunc, b Bracket, targetDeg float64, eventType EventType) Result {
	if !b.Start.Before(b.End) {
		return Result{}
	}
	steps := max(b.Steps, 2)
	interval := b.End.Sub(b.Start) / time.Duration(steps-1)

	prevT := b.Start
	prevAlt := f(prevT) - targetDeg
	for i := 1; i < steps; i++ {
		t := b.Start.Add(time.Duration(i) * interval)
		if t.After(b.End) {
			t = b.End
		}
		alt := f(t) - targetDeg
		if hasCrossing(prevAlt, alt, eventType) {
			return bisect(f, prevT, t, targetDeg, eventType, b.Tol)
		}
		prevT, prevAlt = t, alt
	}
	return Result{}
}

// FindRiseSet locates the first upward crossing in b and the first
// downward crossing after it. set is only searched for once rise is
// found, so a successful pair always has rise before set.
func FindRiseSet(f AltitudeFunc, b Bracket, targetDeg float64) (rise, set Result) {
	rise = FindAltitudeEvent(f, b, targetDeg, CrossingUp)
	if !rise.OK {
		return rise, Result{}
	}
	after := b
	after.Start = rise.Time
	set = FindAltitudeEvent(f, after, targetDeg, CrossingDown)
	return rise, set
}

func hasCrossing(a1, a2 float64, eventType EventType) bool {
	switch eventType {
	case CrossingUp:
		return a1 < 0 && a2 >= 0
	case CrossingDown:
		return a1 > 0 && a2 <= 0
	default:
		return a1*a2 <= 0
	}
}

func bisect(f AltitudeFunc, a, b time.Time, targetDeg float64, eventType EventType, tol time.Duration) Result {
	altA := f(a) - targetDeg
	altB := f(b) - targetDeg
	if !hasCrossing(altA, altB, eventType) {
		return Result{}
	}
	if tol <= 0 {
		tol = time.Second
	}

	for b.Sub(a) > tol {
		mid := a.Add(b.Sub(a) / 2)
		altM := f(mid) - targetDeg
		if hasCrossing(altA, altM, eventType) {
			b = mid
		} else {
			a, altA = mid, altM
		}
	}

	return Result{
		Time: a.Add(b.Sub(a) / 2),
		OK:   true,
	}
}
