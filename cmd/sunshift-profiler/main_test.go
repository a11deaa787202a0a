package main

import (
	"bytes"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseReferenceCSV(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatal(err)
	}
	in := `date,rise,set
2025-06-21,05:07,20:25
2025-06-22,05:07:30,20:25:10
bad-date,05:00,20:00
2025-06-23,05:08
2025-06-24,5am,20:25
`
	samples, skipped, err := parseReferenceCSV(strings.NewReader(in), ny, discard())
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 2 {
		t.Fatalf("got %d samples, want 2", len(samples))
	}
	if skipped != 3 {
		t.Errorf("skipped = %d, want 3", skipped)
	}
	s := samples[0]
	if want := time.Date(2025, time.June, 21, 9, 7, 0, 0, time.UTC); !s.ref.Rise.Equal(want) {
		t.Errorf("rise = %v, want %v", s.ref.Rise, want)
	}
	if want := time.Date(2025, time.June, 22, 0, 25, 0, 0, time.UTC); !s.ref.Set.Equal(want) {
		t.Errorf("set = %v, want %v", s.ref.Set, want)
	}
	if got := samples[1].ref.Set.Second(); got != 10 {
		t.Errorf("seconds = %d, want 10", got)
	}
}

func TestParseReferenceCSV_SunsetAfterMidnight(t *testing.T) {
	// Tromsø in late May, local clock.
	oslo, err := time.LoadLocation("Europe/Oslo")
	if err != nil {
		t.Fatal(err)
	}
	samples, _, err := parseReferenceCSV(strings.NewReader("2025-05-15,02:10,00:30\n"), oslo, discard())
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 1 {
		t.Fatalf("got %d samples", len(samples))
	}
	if got := samples[0].ref.Set.Sub(samples[0].ref.Rise); got != 22*time.Hour+20*time.Minute {
		t.Errorf("daylight = %v", got)
	}
}

func TestParseReferenceCSV_Empty(t *testing.T) {
	if _, _, err := parseReferenceCSV(strings.NewReader(""), time.UTC, discard()); err == nil {
		t.Error("expected an error for empty input")
	}
}

func TestStats(t *testing.T) {
	var s stats
	if !math.IsNaN(s.mean()) {
		t.Error("mean of nothing should be NaN")
	}
	for _, v := range []float64{2, -1, math.NaN(), 5} {
		s.add(v)
	}
	if s.count != 3 || s.min != -1 || s.max != 5 || s.mean() != 2 {
		t.Errorf("stats = %+v mean %v", s, s.mean())
	}

	var buf bytes.Buffer
	s.print(&buf, "Rise error (minutes)", "avg")
	if !strings.Contains(buf.String(), "count: 3") || !strings.Contains(buf.String(), "avg:   2.000") {
		t.Errorf("print output:\n%s", buf.String())
	}
}

func TestRun_ProviderReference(t *testing.T) {
	var buf bytes.Buffer
	opts := options{
		lat: 33.4484, lon: -112.0740,
		tzName:    "America/Phoenix",
		provider:  "solver",
		reference: "noaa",
		year:      2025,
	}
	if err := run(&buf, opts); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Provider:  SOLVER", "Reference: noaa provider", "Rows:      365 (processed), 0 skipped"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRun_CSVSkippedRows(t *testing.T) {
	dir := t.TempDir()
	ref := filepath.Join(dir, "phoenix.csv")
	csvData := `date,rise,set
2025-06-21,05:19,19:42
2025-06-22,nope,19:42
2025-06-23
2025-06-24,05:20,19:43
`
	if err := os.WriteFile(ref, []byte(csvData), 0o644); err != nil {
		t.Fatal(err)
	}
	outCSV := filepath.Join(dir, "errors.csv")

	var buf bytes.Buffer
	opts := options{
		lat: 33.4484, lon: -112.0740,
		tzName:   "America/Phoenix",
		provider: "solver",
		refCSV:   ref,
		outCSV:   outCSV,
	}
	if err := run(&buf, opts); err != nil {
		t.Fatal(err)
	}
	if want := "Rows:      2 (processed), 2 skipped"; !strings.Contains(buf.String(), want) {
		t.Errorf("output missing %q:\n%s", want, buf.String())
	}
	rows, err := os.ReadFile(outCSV)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(rows), "\n"); got != 3 {
		t.Errorf("outcsv has %d lines, want header plus 2 rows:\n%s", got, rows)
	}
}
