// Command sunshift-profiler measures a sunrise/sunset provider against a
// reference: either a CSV ephemeris or another provider over a year.
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/cobra"

	"github.com/thurmanmarka/sunshift"
)

type stats struct {
	count int
	sum   float64
	min   float64
	max   float64
}

func (s *stats) add(v float64) {
	if math.IsNaN(v) {
		return
	}
	if s.count == 0 {
		s.min, s.max = v, v
	} else {
		s.min = math.Min(s.min, v)
		s.max = math.Max(s.max, v)
	}
	s.sum += v
	s.count++
}

func (s *stats) mean() float64 {
	if s.count == 0 {
		return math.NaN()
	}
	return s.sum / float64(s.count)
}

func (s *stats) print(w io.Writer, title, avgLabel string) {
	fmt.Fprintf(w, "\n%s:\n", title)
	fmt.Fprintf(w, "  count: %d\n", s.count)
	fmt.Fprintf(w, "  min:   %.3f\n", s.min)
	fmt.Fprintf(w, "  max:   %.3f\n", s.max)
	fmt.Fprintf(w, "  %-5s  %.3f\n", avgLabel+":", s.mean())
}

// errorStats accumulates absolute and signed (ours - ref) errors in
// minutes for rise and set.
type errorStats struct {
	rise, set             stats
	riseSigned, setSigned stats
}

func (e *errorStats) add(got, ref sunshift.RiseSet) (riseSigned, setSigned float64) {
	riseSigned = diffMinutesSigned(got.Rise, ref.Rise)
	setSigned = diffMinutesSigned(got.Set, ref.Set)
	e.rise.add(math.Abs(riseSigned))
	e.set.add(math.Abs(setSigned))
	e.riseSigned.add(riseSigned)
	e.setSigned.add(setSigned)
	return riseSigned, setSigned
}

func diffMinutesSigned(a, b time.Time) float64 {
	if a.IsZero() || b.IsZero() {
		return math.NaN()
	}
	return a.Sub(b).Minutes()
}

type sample struct {
	date time.Time
	ref  sunshift.RiseSet
}

type options struct {
	lat, lon  float64
	tzName    string
	provider  string
	reference string
	refCSV    string
	year      int
	outCSV    string
	verbose   bool
}

func main() {
	var opts options
	cmd := &cobra.Command{
		Use:   "sunshift-profiler",
		Short: "Compare a sunrise/sunset provider against a reference",
		Long: `sunshift-profiler compares the chosen provider against either a reference CSV
ephemeris (--refcsv) or a second provider (--reference) over every day of a year.

CSV format:

  date,rise,set
  2025-01-01,07:32,17:12

rise/set are local HH:MM (24-hour) in the zone given by --tz.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&opts.lat, "lat", 0, "latitude in degrees (north positive)")
	f.Float64Var(&opts.lon, "lon", 0, "longitude in degrees (east positive, west negative)")
	f.StringVar(&opts.tzName, "tz", "UTC", "IANA time zone of the reference CSV")
	f.StringVar(&opts.provider, "provider", sunshift.ProviderSolver, "provider under test: solver or noaa")
	f.StringVar(&opts.reference, "reference", sunshift.ProviderNOAA, "reference provider when no --refcsv is given")
	f.StringVar(&opts.refCSV, "refcsv", "", "path to reference ephemeris CSV file (date,rise,set)")
	f.IntVar(&opts.year, "year", time.Now().Year(), "year to compare against the reference provider")
	f.StringVar(&opts.outCSV, "outcsv", "", "optional path to write per-row error CSV")
	f.BoolVar(&opts.verbose, "verbose", false, "log per-day errors instead of only summary")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w io.Writer, opts options) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	provider, err := sunshift.NewProvider(opts.provider)
	if err != nil {
		return err
	}
	loc, err := time.LoadLocation(opts.tzName)
	if err != nil {
		return fmt.Errorf("failed to load timezone %q: %w", opts.tzName, err)
	}
	if opts.lat == 0 && opts.lon == 0 {
		logger.Warn("lat=0 lon=0 (Gulf of Guinea); did you mean to set --lat/--lon?")
	}
	coords := sunshift.Coordinates{Lat: opts.lat, Lon: opts.lon}

	var (
		samples    []sample
		refSkipped int
		refDesc    string
	)
	if opts.refCSV != "" {
		samples, refSkipped, err = readReferenceCSV(opts.refCSV, loc, logger)
		refDesc = opts.refCSV
	} else {
		samples, refSkipped, err = providerSamples(opts.reference, coords, opts.year, logger)
		refDesc = opts.reference + " provider"
	}
	if err != nil {
		return err
	}

	var out *csv.Writer
	if opts.outCSV != "" {
		f, err := os.Create(opts.outCSV)
		if err != nil {
			return fmt.Errorf("failed to create outcsv %q: %w", opts.outCSV, err)
		}
		defer f.Close()
		out = csv.NewWriter(f)
		defer out.Flush()
		if err := out.Write([]string{"date", "provider", "rise_err", "set_err", "rise_signed", "set_signed"}); err != nil {
			return fmt.Errorf("failed to write outcsv header: %w", err)
		}
	}

	var (
		es      errorStats
		skipped int
	)
	for _, s := range samples {
		got, err := provider.RiseSet(coords, s.date)
		if err != nil {
			logger.Warn("provider error, skipping", "date", s.date.Format(time.DateOnly), "error", err)
			skipped++
			continue
		}
		riseSigned, setSigned := es.add(got, s.ref)

		if opts.verbose {
			fmt.Fprintf(w, "%s: rise err=%.2f min (got=%s ref=%s), set err=%.2f min (got=%s ref=%s)\n",
				s.date.Format(time.DateOnly),
				riseSigned, got.Rise.In(loc).Format("15:04"), s.ref.Rise.In(loc).Format("15:04"),
				setSigned, got.Set.In(loc).Format("15:04"), s.ref.Set.In(loc).Format("15:04"))
		}
		if out != nil {
			rec := []string{
				s.date.Format(time.DateOnly),
				opts.provider,
				fmt.Sprintf("%.6f", math.Abs(riseSigned)),
				fmt.Sprintf("%.6f", math.Abs(setSigned)),
				fmt.Sprintf("%.6f", riseSigned),
				fmt.Sprintf("%.6f", setSigned),
			}
			if err := out.Write(rec); err != nil {
				logger.Warn("failed to write outcsv row", "date", s.date.Format(time.DateOnly), "error", err)
			}
		}
	}

	fmt.Fprintln(w, "=== sunshift profiler summary ===")
	fmt.Fprintf(w, "Provider:  %s\n", strings.ToUpper(opts.provider))
	fmt.Fprintf(w, "Reference: %s\n", refDesc)
	fmt.Fprintf(w, "Lat/Lon:   %.4f / %.4f\n", opts.lat, opts.lon)
	fmt.Fprintf(w, "TZ:        %s\n", loc)
	fmt.Fprintf(w, "Rows:      %d (processed), %d skipped\n", len(samples)-skipped, skipped+refSkipped)

	if es.rise.count == 0 {
		fmt.Fprintln(w, "No valid rows to compute stats.")
		return nil
	}
	es.rise.print(w, "Rise error (minutes)", "avg")
	es.set.print(w, "Set error (minutes)", "avg")
	es.riseSigned.print(w, "Rise signed error (minutes, ours - ref)", "mean")
	es.setSigned.print(w, "Set signed error (minutes, ours - ref)", "mean")
	return nil
}

// providerSamples returns the reference provider's results for every day
// of year and the number of days it could not compute.
func providerSamples(name string, coords sunshift.Coordinates, year int, logger *slog.Logger) ([]sample, int, error) {
	ref, err := sunshift.NewProvider(name)
	if err != nil {
		return nil, 0, fmt.Errorf("reference: %w", err)
	}
	first := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	samples := make([]sample, 0, sunshift.DaysPerYear)
	skipped := 0
	for day := range sunshift.DaysPerYear {
		date := first.AddDate(0, 0, day)
		rs, err := ref.RiseSet(coords, date)
		if err != nil {
			logger.Warn("reference error, skipping", "date", date.Format(time.DateOnly), "error", err)
			skipped++
			continue
		}
		samples = append(samples, sample{date: date, ref: rs})
	}
	return samples, skipped, nil
}

func readReferenceCSV(path string, loc *time.Location, logger *slog.Logger) ([]sample, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open refcsv %q: %w", path, err)
	}
	defer f.Close()
	return parseReferenceCSV(f, loc, logger)
}

// parseReferenceCSV reads date,rise,set rows. Malformed rows are logged
// and counted in skipped.
func parseReferenceCSV(r io.Reader, loc *time.Location, logger *slog.Logger) (samples []sample, skipped int, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, 0, fmt.Errorf("empty CSV file")
	}

	start := 0
	if len(records[0]) >= 1 && strings.EqualFold(strings.TrimSpace(records[0][0]), "date") {
		start = 1
	}

	for i := start; i < len(records); i++ {
		row := records[i]
		if len(row) < 3 {
			logger.Warn("expected at least 3 columns (date,rise,set), skipping", "row", i+1, "columns", len(row))
			skipped++
			continue
		}
		dateS := strings.TrimSpace(row[0])
		date, err := time.ParseInLocation(time.DateOnly, dateS, loc)
		if err != nil {
			logger.Warn("invalid date, skipping", "row", i+1, "date", dateS, "error", err)
			skipped++
			continue
		}
		rise, err := parseLocalTime(date, strings.TrimSpace(row[1]), loc)
		if err != nil {
			logger.Warn("invalid rise time, skipping", "row", i+1, "error", err)
			skipped++
			continue
		}
		set, err := parseLocalTime(date, strings.TrimSpace(row[2]), loc)
		if err != nil {
			logger.Warn("invalid set time, skipping", "row", i+1, "error", err)
			skipped++
			continue
		}
		if !set.After(rise) {
			// Sunset past local midnight belongs to the same solar day.
			set = set.AddDate(0, 0, 1)
		}
		samples = append(samples, sample{date: date, ref: sunshift.RiseSet{Rise: rise.UTC(), Set: set.UTC()}})
	}
	return samples, skipped, nil
}

func parseLocalTime(date time.Time, hhmm string, loc *time.Location) (time.Time, error) {
	layout := "15:04"
	if strings.Count(hhmm, ":") == 2 {
		layout = "15:04:05"
	}
	parsed, err := time.ParseInLocation(layout, hhmm, loc)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), parsed.Second(), 0, loc), nil
}
