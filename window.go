package sunshift

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockTime is a time of day in minutes after midnight.
type ClockTime int

// ParseClockTime parses a 24-hour "HH:MM" time of day.
func ParseClockTime(s string) (ClockTime, error) {
	hs, ms, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(ms)
	if err != nil || len(ms) != 2 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return ClockTime(h*60 + m), nil
}

// NewClockTime returns the ClockTime for hour:minute.
func NewClockTime(hour, minute int) ClockTime {
	return ClockTime(hour*60 + minute)
}

func (c ClockTime) Hour() int   { return int(c) / 60 }
func (c ClockTime) Minute() int { return int(c) % 60 }

// Duration returns the time elapsed since midnight.
func (c ClockTime) Duration() time.Duration {
	return time.Duration(c) * time.Minute
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// Window is the clock-time interval within which daylight is wanted.
// A window with Start >= End is empty.
type Window struct {
	Start ClockTime // desired sunrise
	End   ClockTime // desired sunset
}

// ParseWindow parses the desired sunrise and sunset clock times.
func ParseWindow(sunrise, sunset string) (Window, error) {
	start, err := ParseClockTime(sunrise)
	if err != nil {
		return Window{}, fmt.Errorf("desired sunrise: %w", err)
	}
	end, err := ParseClockTime(sunset)
	if err != nil {
		return Window{}, fmt.Errorf("desired sunset: %w", err)
	}
	return Window{Start: start, End: end}, nil
}

// Empty reports whether the window contains no time.
func (w Window) Empty() bool {
	return w.Start >= w.End
}

// Length returns the window length, zero for an empty window.
func (w Window) Length() time.Duration {
	if w.Empty() {
		return 0
	}
	return (w.End - w.Start).Duration()
}

// On returns the window's bounds on the UTC calendar date of day.
func (w Window) On(day time.Time) (start, end time.Time) {
	y, m, d := day.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return midnight.Add(w.Start.Duration()), midnight.Add(w.End.Duration())
}

func (w Window) String() string {
	return w.Start.String() + "-" + w.End.String()
}
