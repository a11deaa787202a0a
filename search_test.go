package sunshift_test

import (
	"math"
	"testing"
	"time"

	"github.com/thurmanmarka/sunshift"
)

func TestOffsets(t *testing.T) {
	offsets := sunshift.Offsets()
	if got, want := len(offsets), 97; got != want {
		t.Fatalf("got %d offsets, want %d", got, want)
	}
	if offsets[0] != -12 || offsets[len(offsets)-1] != 12 {
		t.Errorf("range = [%v, %v], want [-12, 12]", offsets[0], offsets[len(offsets)-1])
	}
	for i := 1; i < len(offsets); i++ {
		if d := offsets[i] - offsets[i-1]; d != 0.25 {
			t.Fatalf("step %d: %v", i, d)
		}
	}
}

func TestOffsetFormatting(t *testing.T) {
	for _, tc := range []struct {
		o          sunshift.Offset
		str, zone  string
		duration   time.Duration
		wallAtNoon string
	}{
		{-5, "-5.00", "UTC-05:00", -5 * time.Hour, "07:00"},
		{5.75, "+5.75", "UTC+05:45", 5*time.Hour + 45*time.Minute, "17:45"},
		{0, "+0.00", "UTC+00:00", 0, "12:00"},
		{-0.25, "-0.25", "UTC-00:15", -15 * time.Minute, "11:45"},
	} {
		if got := tc.o.String(); got != tc.str {
			t.Errorf("String() = %q, want %q", got, tc.str)
		}
		if got := tc.o.ZoneName(); got != tc.zone {
			t.Errorf("ZoneName() = %q, want %q", got, tc.zone)
		}
		if got := tc.o.Duration(); got != tc.duration {
			t.Errorf("Duration() = %v, want %v", got, tc.duration)
		}
		noon := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
		if got := noon.In(tc.o.Location()).Format("15:04"); got != tc.wallAtNoon {
			t.Errorf("%v: noon UTC reads %s, want %s", tc.o, got, tc.wallAtNoon)
		}
	}
}

func TestSearch(t *testing.T) {
	// Rise 11:00 and set 23:00 UTC against 06:00-19:15: offsets -5
	// through -3.75 all give 12h a day; the first of them wins.
	p := fixedProvider{rise: 11 * time.Hour, set: 23 * time.Hour}
	s := sunshift.NewScorer(p, boston, mustWindow(t, "06:00", "19:15"), 2025)

	res, err := sunshift.Search(s)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := res.Best, sunshift.Offset(-5); got != want {
		t.Errorf("Best = %v, want %v", got, want)
	}
	if got, want := res.Score, 365*12.0; math.Abs(got-want) > 1e-6 {
		t.Errorf("Score = %v, want %v", got, want)
	}
	if got, want := len(res.Scores), 97; got != want {
		t.Errorf("len(Scores) = %d, want %d", got, want)
	}
	for _, sc := range res.Scores {
		if sc.Score > res.Score {
			t.Errorf("offset %v scored %v above best %v", sc.Offset, sc.Score, res.Score)
		}
	}
}

func TestSearch_TiesKeepFirst(t *testing.T) {
	// Every offset scores zero on an empty window; the first wins.
	p := fixedProvider{rise: 11 * time.Hour, set: 23 * time.Hour}
	s := sunshift.NewScorer(p, boston, mustWindow(t, "19:15", "06:00"), 2025)
	res, err := sunshift.Search(s)
	if err != nil {
		t.Fatal(err)
	}
	if res.Best != sunshift.MinOffset || res.Score != 0 {
		t.Errorf("got best %v score %v, want %v and 0", res.Best, res.Score, sunshift.MinOffset)
	}
}

func TestSearch_Boston(t *testing.T) {
	w := mustWindow(t, "06:00", "19:15")
	for pname, p := range providers() {
		s := sunshift.NewScorer(p, boston, w, 2025)
		res, err := sunshift.Search(s)
		if err != nil {
			t.Fatalf("%s: %v", pname, err)
		}
		if res.Best < sunshift.MinOffset || res.Best > sunshift.MaxOffset {
			t.Errorf("%s: best %v out of range", pname, res.Best)
		}
		// Eastern time territory.
		if res.Best < -6 || res.Best > -3 {
			t.Errorf("%s: best offset %v, want within [-6, -3]", pname, res.Best)
		}
		if res.Score <= 0 || res.Score > sunshift.MaxScore(w) {
			t.Errorf("%s: score %v out of (0, %v]", pname, res.Score, sunshift.MaxScore(w))
		}
	}
}
