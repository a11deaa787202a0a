// Command sunshift reports the fixed UTC offset that best fits a desired
// daylight window at a location.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thurmanmarka/sunshift"
	"github.com/thurmanmarka/sunshift/internal/config"
	"github.com/thurmanmarka/sunshift/internal/report"
	"github.com/thurmanmarka/sunshift/internal/tzlookup"
)

// Enough for a year of days plus the key dates of the next one.
const cacheDays = 2 * sunshift.DaysPerYear

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sunshift",
		Short: "Find the UTC offset that best fits your daylight",
		Long: `sunshift scores every UTC offset from -12h to +12h in 15 minute steps by how
many hours of daylight, over a year, fall inside a desired window (for example
sunrise by 06:00 and sunset no earlier than 19:15), and reports the best one.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := prepare(cmd)
			if err != nil {
				return err
			}
			return run.analyze(false)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringP("config", "c", "", "config file path")
	pf.BoolP("verbose", "v", false, "verbose output")
	pf.Float64("lat", 42.3555, "latitude in degrees (north positive)")
	pf.Float64("lon", -71.0565, "longitude in degrees (east positive, west negative)")
	pf.String("sunrise", "06:00", "desired sunrise, HH:MM")
	pf.String("sunset", "19:15", "desired sunset, HH:MM")
	pf.Int("year", 0, "year to score (default current year)")
	pf.String("provider", sunshift.ProviderSolver, "sunrise/sunset provider: solver or noaa")
	pf.Bool("json", false, "output result as JSON")
	pf.Bool("no-color", false, "disable colored output")

	rootCmd.AddCommand(scoresCmd())
	rootCmd.AddCommand(dayCmd())
	return rootCmd
}

func scoresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scores",
		Short: "Show the score of every offset",
		Long:  "Score all 97 candidate offsets and print them as a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := prepare(cmd)
			if err != nil {
				return err
			}
			if run.cfg.Output.JSON {
				return run.analyze(true)
			}
			res, err := sunshift.Search(run.scorer)
			if err != nil {
				return err
			}
			report.ScoresTable(cmd.OutOrStdout(), res, run.window)
			return nil
		},
	}
}

func dayCmd() *cobra.Command {
	var (
		dateS  string
		offset float64
	)
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show sunrise and sunset for a date",
		Long:  "Show sunrise and sunset on one date, plus the year's solstices and equinoxes, at the best (or a given) offset",
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := prepare(cmd)
			if err != nil {
				return err
			}

			date := time.Now().UTC()
			if dateS != "" {
				date, err = time.ParseInLocation(time.DateOnly, dateS, time.UTC)
				if err != nil {
					return fmt.Errorf("invalid --date %q: %w", dateS, err)
				}
			}

			var o sunshift.Offset
			if cmd.Flags().Changed("offset") {
				o = sunshift.Offset(offset)
				if o < sunshift.MinOffset || o > sunshift.MaxOffset {
					return fmt.Errorf("offset %v out of range [%v, %v]", offset, sunshift.MinOffset, sunshift.MaxOffset)
				}
			} else {
				res, err := sunshift.Search(run.scorer)
				if err != nil {
					return err
				}
				o = res.Best
			}

			dates := append([]sunshift.KeyDate{{Name: "Requested", Date: date}}, sunshift.SeasonDates(date.Year())...)
			days, err := sunshift.LocalTimesFor(run.provider, run.loc, dates, o)
			if err != nil {
				return err
			}
			report.DaysTable(cmd.OutOrStdout(), days, o)
			return nil
		},
	}
	cmd.Flags().StringVar(&dateS, "date", "", "date in YYYY-MM-DD (default today, UTC)")
	cmd.Flags().Float64Var(&offset, "offset", 0, "UTC offset in hours (default: best offset)")
	return cmd
}

type runner struct {
	cmd      *cobra.Command
	cfg      *config.Config
	logger   *slog.Logger
	loc      sunshift.Coordinates
	window   sunshift.Window
	year     int
	provider *sunshift.CachingProvider
	scorer   *sunshift.Scorer
}

func prepare(cmd *cobra.Command) (*runner, error) {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	level := slog.LevelWarn
	if cfg.Output.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))

	if cfg.Output.NoColor || cfg.Output.JSON {
		color.NoColor = true
	}

	window, err := cfg.DesiredWindow()
	if err != nil {
		return nil, err
	}
	base, err := sunshift.NewProvider(cfg.Provider)
	if err != nil {
		return nil, err
	}
	year := cfg.Year
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	loc := cfg.Coordinates()
	if loc.Lat == 0 && loc.Lon == 0 {
		logger.Warn("lat=0 lon=0 (Gulf of Guinea); use --lat and --lon to set a real location")
	}
	logger.Debug("configuration", "location", loc, "window", window, "year", year, "provider", cfg.Provider)

	provider := sunshift.NewCachingProvider(base, cacheDays)
	return &runner{
		cmd:      cmd,
		cfg:      cfg,
		logger:   logger,
		loc:      loc,
		window:   window,
		year:     year,
		provider: provider,
		scorer:   sunshift.NewScorer(provider, loc, window, year, sunshift.WithLogger(logger)),
	}, nil
}

// analyze runs the search and prints the full report.
func (r *runner) analyze(withScores bool) error {
	res, err := sunshift.Search(r.scorer)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	zone, zerr := tzlookup.Lookup(r.loc.Lat, r.loc.Lon, now)
	if zerr != nil {
		r.logger.Debug("timezone lookup failed", "error", zerr)
	}
	r.logger.Debug("search finished", "best", res.Best, "cached_days", r.provider.Len())

	days, err := sunshift.LocalTimesFor(r.provider, r.loc, sunshift.KeyDates(r.year, now), res.Best)
	if err != nil {
		return err
	}

	a := report.Analysis{
		Location: r.loc,
		Window:   r.window,
		Year:     r.year,
		Provider: r.cfg.Provider,
		Result:   res,
		Zone:     zone,
		ZoneOK:   zerr == nil,
		KeyDates: days,
	}
	out := r.cmd.OutOrStdout()
	if r.cfg.Output.JSON {
		return report.JSON(out, a, withScores)
	}
	return report.Text(out, a)
}
