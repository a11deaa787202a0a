// Package report renders search results for the terminal and as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/thurmanmarka/sunshift"
	"github.com/thurmanmarka/sunshift/internal/tzlookup"
)

const (
	rule      = "------------------------------"
	separator = "---"
	dateFmt   = "January 02, 2006"
	clockFmt  = "15:04"
)

// Analysis is everything the report needs from one search.
type Analysis struct {
	Location sunshift.Coordinates
	Window   sunshift.Window
	Year     int
	Provider string
	Result   sunshift.Result
	Zone     tzlookup.Zone
	ZoneOK   bool
	KeyDates []sunshift.DayTimes
}

// Text writes the human-readable report.
func Text(w io.Writer, a Analysis) error {
	var b strings.Builder
	bold := color.New(color.Bold).SprintFunc()
	good := color.New(color.FgGreen, color.Bold).SprintFunc()
	warn := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintf(&b, "\n%s\n\n", rule)
	fmt.Fprintf(&b, "Desired Sunrise Time: %s\n", a.Window.Start)
	fmt.Fprintf(&b, "Desired Sunset Time: %s\n", a.Window.End)
	fmt.Fprintf(&b, "Location: Latitude %v, Longitude %v\n", a.Location.Lat, a.Location.Lon)
	fmt.Fprintf(&b, "\n%s\n\n", separator)

	fmt.Fprintf(&b, "Best offset: %s hours\n", good(a.Result.Best.String()))
	fmt.Fprintf(&b, "Total sunlight hours in desired window: %s\n", bold(fmt.Sprintf("%.1f", a.Result.Score)))
	if a.ZoneOK {
		fmt.Fprintf(&b, "Current offset (%s): %+.2f hours\n", a.Zone.Name, a.Zone.Offset)
		fmt.Fprintf(&b, "Difference (Best - Current): %+.2f hours\n", a.Result.Best.Hours()-a.Zone.Offset)
	} else {
		fmt.Fprintf(&b, "Current offset: %s\n", warn("Could not determine timezone for this location"))
	}
	fmt.Fprintf(&b, "\n%s\n\n", separator)

	for _, d := range a.KeyDates {
		fmt.Fprintf(&b, "%s: Sunrise at %s, Sunset at %s\n",
			d.Date.Format(dateFmt), d.Sunrise.Format(clockFmt), d.Sunset.Format(clockFmt))
	}
	fmt.Fprintf(&b, "\n%s\n\n", rule)

	_, err := io.WriteString(w, b.String())
	return err
}

type jsonDay struct {
	Name    string `json:"name"`
	Date    string `json:"date"` // YYYY-MM-DD
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

type jsonOutput struct {
	Latitude       float64                `json:"latitude"`
	Longitude      float64                `json:"longitude"`
	DesiredSunrise string                 `json:"desired_sunrise"`
	DesiredSunset  string                 `json:"desired_sunset"`
	Year           int                    `json:"year"`
	Provider       string                 `json:"provider"`
	BestOffset     float64                `json:"best_offset_hours"`
	Score          float64                `json:"sunlight_hours"`
	Timezone       string                 `json:"timezone"`
	CurrentOffset  *float64               `json:"current_offset_hours,omitempty"`
	Difference     *float64               `json:"difference_hours,omitempty"`
	KeyDates       []jsonDay              `json:"key_dates"`
	Scores         []sunshift.OffsetScore `json:"scores,omitempty"`
}

// JSON writes the analysis as indented JSON. Per-offset scores are
// included when withScores is set.
func JSON(w io.Writer, a Analysis, withScores bool) error {
	out := jsonOutput{
		Latitude:       a.Location.Lat,
		Longitude:      a.Location.Lon,
		DesiredSunrise: a.Window.Start.String(),
		DesiredSunset:  a.Window.End.String(),
		Year:           a.Year,
		Provider:       a.Provider,
		BestOffset:     a.Result.Best.Hours(),
		Score:          a.Result.Score,
		Timezone:       tzlookup.UnknownName,
		KeyDates:       make([]jsonDay, 0, len(a.KeyDates)),
	}
	if a.ZoneOK {
		cur := a.Zone.Offset
		diff := a.Result.Best.Hours() - cur
		out.Timezone = a.Zone.Name
		out.CurrentOffset = &cur
		out.Difference = &diff
	}
	for _, d := range a.KeyDates {
		out.KeyDates = append(out.KeyDates, jsonDay{
			Name:    d.Name,
			Date:    d.Date.Format(time.DateOnly),
			Sunrise: d.Sunrise.Format(clockFmt),
			Sunset:  d.Sunset.Format(clockFmt),
		})
	}
	if withScores {
		out.Scores = a.Result.Scores
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.Style().Options.SeparateRows = false
	t.Style().Title.Align = text.AlignCenter
	return t
}

// ScoresTable writes every evaluated offset with its score, the share of
// the maximum possible score, and a marker on the best offset.
func ScoresTable(w io.Writer, res sunshift.Result, win sunshift.Window) {
	t := newTable(w)
	t.SetTitle("Sunlight hours in %s by UTC offset", win)
	t.AppendHeader(table.Row{"Offset", "Zone", "Hours", "Of max", ""})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	maxScore := sunshift.MaxScore(win)
	best := color.New(color.FgGreen, color.Bold).SprintFunc()
	for _, s := range res.Scores {
		share := 0.0
		if maxScore > 0 {
			share = s.Score / maxScore * 100
		}
		marker := ""
		hours := fmt.Sprintf("%.1f", s.Score)
		if s.Offset == res.Best {
			marker = best("best")
			hours = best(hours)
		}
		t.AppendRow(table.Row{s.Offset.String(), s.Offset.ZoneName(), hours, fmt.Sprintf("%.1f%%", share), marker})
	}
	t.Render()
}

// DaysTable writes sunrise, sunset and daylight length for each day on
// the clock of offset o.
func DaysTable(w io.Writer, days []sunshift.DayTimes, o sunshift.Offset) {
	t := newTable(w)
	t.SetTitle("Sun times at %s", o.ZoneName())
	t.AppendHeader(table.Row{"", "Date", "Sunrise", "Sunset", "Daylight"})
	for _, d := range days {
		daylight := d.Sunset.Sub(d.Sunrise).Round(time.Minute)
		t.AppendRow(table.Row{
			d.Name,
			d.Date.Format(dateFmt),
			d.Sunrise.Format(clockFmt),
			d.Sunset.Format(clockFmt),
			fmt.Sprintf("%dh%02dm", int(daylight.Hours()), int(daylight.Minutes())%60),
		})
	}
	t.Render()
}
