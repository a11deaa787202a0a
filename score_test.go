package sunshift_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/thurmanmarka/sunshift"
)

// fixedProvider rises and sets at the same UTC clock times every day.
type fixedProvider struct {
	rise, set time.Duration // after midnight UTC of the date
	failOn    time.Month
}

var errProvider = errors.New("provider failure")

func (f fixedProvider) RiseSet(_ sunshift.Coordinates, date time.Time) (sunshift.RiseSet, error) {
	y, m, d := date.Date()
	if f.failOn != 0 && m == f.failOn {
		return sunshift.RiseSet{}, errProvider
	}
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return sunshift.RiseSet{Rise: midnight.Add(f.rise), Set: midnight.Add(f.set)}, nil
}

func mustWindow(t *testing.T, sunrise, sunset string) sunshift.Window {
	t.Helper()
	w, err := sunshift.ParseWindow(sunrise, sunset)
	if err != nil {
		t.Fatalf("ParseWindow(%q, %q): %v", sunrise, sunset, err)
	}
	return w
}

func TestYear(t *testing.T) {
	p := fixedProvider{rise: 11 * time.Hour, set: 23 * time.Hour}
	for _, year := range []int{2025, 2024} {
		records, err := sunshift.Year(p, boston, year)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := len(records), sunshift.DaysPerYear; got != want {
			t.Errorf("%d: got %d records, want %d", year, got, want)
		}
		if got, want := records[0].Date, time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
			t.Errorf("%d: first date %v, want %v", year, got, want)
		}
	}

	_, err := sunshift.Year(fixedProvider{rise: time.Hour, set: 2 * time.Hour, failOn: time.March}, boston, 2025)
	if !errors.Is(err, errProvider) {
		t.Errorf("got %v, want provider error", err)
	}
}

func TestDailyRecordOverlap(t *testing.T) {
	date := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	rec := sunshift.DailyRecord{
		Date:    date,
		Sunrise: date.Add(11 * time.Hour),
		Sunset:  date.Add(23 * time.Hour),
	}
	w := mustWindow(t, "06:00", "19:15")

	for _, tc := range []struct {
		offset sunshift.Offset
		want   float64
	}{
		{-5, 12},     // 06:00-18:00, fully inside
		{-4, 12},     // 07:00-19:00
		{-3, 11.25},  // 08:00-20:00, clipped at 19:15
		{-6, 11},     // 05:00-17:00, clipped at 06:00
		{-12, 5},     // 23:00 prev day to 11:00
		{-17.5, 0},   // 17:30 prev day to 05:30, before the window
		{8.25, 0},    // starts at 19:15, zero-width overlap
		{0, 8.25},    // 11:00-19:15
		{0.25, 8.00}, // 11:15-19:15
	} {
		if got := rec.Overlap(w, tc.offset); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("offset %v: got %v, want %v", tc.offset, got, tc.want)
		}
	}
}

func TestScorer(t *testing.T) {
	p := fixedProvider{rise: 11 * time.Hour, set: 23 * time.Hour}
	w := mustWindow(t, "06:00", "19:15")
	s := sunshift.NewScorer(p, boston, w, 2025)

	score, err := s.Score(-5)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := score, 365*12.0; math.Abs(got-want) > 1e-6 {
		t.Errorf("Score(-5) = %v, want %v", got, want)
	}

	records, err := s.Records()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := sunshift.ScoreRecords(records, w, -5), score; got != want {
		t.Errorf("ScoreRecords = %v, want %v", got, want)
	}
}

func TestScorer_ProviderError(t *testing.T) {
	p := fixedProvider{rise: 11 * time.Hour, set: 23 * time.Hour, failOn: time.July}
	s := sunshift.NewScorer(p, boston, mustWindow(t, "06:00", "19:15"), 2025)
	if _, err := s.Score(0); !errors.Is(err, errProvider) {
		t.Errorf("got %v, want provider error", err)
	}
	if _, err := sunshift.Search(s); !errors.Is(err, errProvider) {
		t.Errorf("Search: got %v, want provider error", err)
	}
}

func TestScoreProperties(t *testing.T) {
	w := mustWindow(t, "06:00", "19:15")
	s := sunshift.NewScorer(sunshift.NewCachingProvider(sunshift.NOAAProvider{}, 400), boston, w, 2025)
	upper := sunshift.MaxScore(w)

	for _, o := range sunshift.Offsets() {
		a, err := s.Score(o)
		if err != nil {
			t.Fatal(err)
		}
		b, err := s.Score(o)
		if err != nil {
			t.Fatal(err)
		}
		if a != b {
			t.Errorf("offset %v: score not deterministic: %v != %v", o, a, b)
		}
		if a < 0 || a > upper {
			t.Errorf("offset %v: score %v outside [0, %v]", o, a, upper)
		}
	}

	// A fresh scorer computes the same values.
	again := sunshift.NewScorer(sunshift.NOAAProvider{}, boston, w, 2025)
	for _, o := range []sunshift.Offset{-12, -4.75, 0, 3.5, 12} {
		a, _ := s.Score(o)
		b, err := again.Score(o)
		if err != nil {
			t.Fatal(err)
		}
		if a != b {
			t.Errorf("offset %v: %v != %v across scorers", o, a, b)
		}
	}
}

func TestScoreEmptyWindow(t *testing.T) {
	for _, tc := range [][2]string{{"19:15", "06:00"}, {"12:00", "12:00"}} {
		w := mustWindow(t, tc[0], tc[1])
		if !w.Empty() {
			t.Fatalf("%v: not empty", w)
		}
		s := sunshift.NewScorer(sunshift.NewCachingProvider(sunshift.NOAAProvider{}, 400), boston, w, 2025)
		for _, o := range sunshift.Offsets() {
			score, err := s.Score(o)
			if err != nil {
				t.Fatal(err)
			}
			if score != 0 {
				t.Errorf("%v offset %v: score %v, want 0", w, o, score)
			}
		}
	}
}
