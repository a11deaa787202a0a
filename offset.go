package sunshift

import (
	"fmt"
	"math"
	"time"
)

// Offset is a constant number of hours added to UTC, modelling a
// hypothetical fixed civil time rule.
type Offset float64

// Search bounds and granularity.
const (
	MinOffset  Offset = -12
	MaxOffset  Offset = 12
	OffsetStep Offset = 0.25
)

// Offsets returns every candidate offset from MinOffset to MaxOffset in
// OffsetStep increments, ascending: 97 values.
func Offsets() []Offset {
	n := int((MaxOffset-MinOffset)/OffsetStep) + 1
	out := make([]Offset, n)
	for i := range out {
		out[i] = MinOffset + Offset(i)*OffsetStep
	}
	return out
}

// Hours returns the offset as fractional hours.
func (o Offset) Hours() float64 {
	return float64(o)
}

func (o Offset) Duration() time.Duration {
	return time.Duration(math.Round(float64(o) * float64(time.Hour)))
}

// Location returns a fixed zone whose clock reads UTC plus o.
func (o Offset) Location() *time.Location {
	return time.FixedZone(o.ZoneName(), int(o.Duration()/time.Second))
}

// ZoneName formats o as "UTC+05:30" style.
func (o Offset) ZoneName() string {
	sign := '+'
	mins := int(math.Round(float64(o) * 60))
	if mins < 0 {
		sign = '-'
		mins = -mins
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, mins/60, mins%60)
}

// String formats o as signed hours with two decimals, e.g. "-4.75".
func (o Offset) String() string {
	return fmt.Sprintf("%+.2f", float64(o))
}
