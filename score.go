package sunshift

import (
	"fmt"
	"log/slog"
	"time"
)

// DaysPerYear is the number of days scored, starting at January 1. Leap
// years are scored over the same 365 days.
const DaysPerYear = 365

// DailyRecord holds a date and the UTC sunrise and sunset of its solar day.
type DailyRecord struct {
	Date    time.Time // midnight UTC
	Sunrise time.Time
	Sunset  time.Time
}

// Year returns DaysPerYear records for the given year at loc. The first
// provider error stops the walk and is returned with its date.
func Year(p Provider, loc Coordinates, year int) ([]DailyRecord, error) {
	first := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	records := make([]DailyRecord, 0, DaysPerYear)
	for day := range DaysPerYear {
		date := first.AddDate(0, 0, day)
		rs, err := p.RiseSet(loc, date)
		if err != nil {
			return nil, fmt.Errorf("%s at %s: %w", date.Format(time.DateOnly), loc, err)
		}
		records = append(records, DailyRecord{Date: date, Sunrise: rs.Rise, Sunset: rs.Set})
	}
	return records, nil
}

// Overlap returns the hours of the record's daylight, shifted by o,
// that fall inside w on the record's date.
func (r DailyRecord) Overlap(w Window, o Offset) float64 {
	shift := o.Duration()
	start, end := w.On(r.Date)
	lo := latest(r.Sunrise.Add(shift), start)
	hi := earliest(r.Sunset.Add(shift), end)
	if !hi.After(lo) {
		return 0
	}
	return hi.Sub(lo).Hours()
}

// ScoreRecords returns the total hours of daylight inside w across
// records when every sunrise and sunset is shifted by o.
func ScoreRecords(records []DailyRecord, w Window, o Offset) float64 {
	total := 0.0
	for _, r := range records {
		total += r.Overlap(w, o)
	}
	return total
}

// MaxScore is the upper bound of any score for w: every day's daylight
// covering the whole window.
func MaxScore(w Window) float64 {
	return DaysPerYear * w.Length().Hours()
}

// Scorer scores offsets for one location, window and year. The year's
// sunrise and sunset records are computed on first use and shared by
// every subsequent Score call.
type Scorer struct {
	provider Provider
	loc      Coordinates
	window   Window
	year     int
	logger   *slog.Logger

	records []DailyRecord
}

// ScorerOption configures a Scorer.
type ScorerOption func(*Scorer)

// WithLogger sets the logger used for progress output.
func WithLogger(logger *slog.Logger) ScorerOption {
	return func(s *Scorer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewScorer(p Provider, loc Coordinates, w Window, year int, opts ...ScorerOption) *Scorer {
	s := &Scorer{
		provider: p,
		loc:      loc,
		window:   w,
		year:     year,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scorer) Location() Coordinates { return s.loc }
func (s *Scorer) Window() Window        { return s.window }
func (s *Scorer) Year() int             { return s.year }

// Records returns the year's daily records, computing them once.
func (s *Scorer) Records() ([]DailyRecord, error) {
	if s.records != nil {
		return s.records, nil
	}
	start := time.Now()
	records, err := Year(s.provider, s.loc, s.year)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("computed daily records", "location", s.loc, "year", s.year, "days", len(records), "elapsed", time.Since(start))
	s.records = records
	return records, nil
}

// Score returns the total annual overlap, in hours, between daylight
// shifted by o and the desired window.
func (s *Scorer) Score(o Offset) (float64, error) {
	records, err := s.Records()
	if err != nil {
		return 0, err
	}
	score := ScoreRecords(records, s.window, o)
	s.logger.Debug("scored offset", "offset", o, "hours", score)
	return score, nil
}

func latest(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earliest(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
