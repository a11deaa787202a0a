package sunshift

import (
	"time"

	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/solstice"

	"github.com/thurmanmarka/sunshift/internal/timeutil"
)

// KeyDate is a named calendar date, at midnight UTC.
type KeyDate struct {
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}

// DayTimes is the sunrise and sunset of a key date on the clock of a
// given offset.
type DayTimes struct {
	KeyDate
	Sunrise time.Time `json:"sunrise"`
	Sunset  time.Time `json:"sunset"`
}

func jdeToDate(jde float64) time.Time {
	y, m, d := julian.JDToCalendar(jde)
	return time.Date(y, time.Month(m), int(d), 0, 0, 0, 0, time.UTC)
}

// JuneSolstice returns the date of the June solstice in year.
func JuneSolstice(year int) time.Time {
	return jdeToDate(solstice.June(year))
}

// DecemberSolstice returns the date of the December solstice in year.
func DecemberSolstice(year int) time.Time {
	return jdeToDate(solstice.December(year))
}

// MarchEquinox returns the date of the March equinox in year.
func MarchEquinox(year int) time.Time {
	return jdeToDate(solstice.March(year))
}

// SeptemberEquinox returns the date of the September equinox in year.
func SeptemberEquinox(year int) time.Time {
	return jdeToDate(solstice.September(year))
}

// KeyDates returns the dates reported alongside a search: the December
// solstice, the June solstice and today.
func KeyDates(year int, now time.Time) []KeyDate {
	return []KeyDate{
		{Name: "December solstice", Date: DecemberSolstice(year)},
		{Name: "June solstice", Date: JuneSolstice(year)},
		{Name: "Today", Date: timeutil.UTCDate(now.UTC())},
	}
}

// SeasonDates returns the year's equinoxes and solstices in calendar order.
func SeasonDates(year int) []KeyDate {
	return []KeyDate{
		{Name: "March equinox", Date: MarchEquinox(year)},
		{Name: "June solstice", Date: JuneSolstice(year)},
		{Name: "September equinox", Date: SeptemberEquinox(year)},
		{Name: "December solstice", Date: DecemberSolstice(year)},
	}
}

// LocalTimes returns sunrise and sunset for date at loc, expressed on
// the clock of offset o.
func LocalTimes(p Provider, loc Coordinates, kd KeyDate, o Offset) (DayTimes, error) {
	rs, err := p.RiseSet(loc, kd.Date)
	if err != nil {
		return DayTimes{}, err
	}
	zone := o.Location()
	return DayTimes{
		KeyDate: kd,
		Sunrise: rs.Rise.In(zone),
		Sunset:  rs.Set.In(zone),
	}, nil
}

// LocalTimesFor applies LocalTimes to each key date.
func LocalTimesFor(p Provider, loc Coordinates, dates []KeyDate, o Offset) ([]DayTimes, error) {
	out := make([]DayTimes, 0, len(dates))
	for _, kd := range dates {
		dt, err := LocalTimes(p, loc, kd, o)
		if err != nil {
			return nil, err
		}
		out = append(out, dt)
	}
	return out, nil
}
