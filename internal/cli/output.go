package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pfrederiksen/dhaka-daily/internal/almanac"
	"github.com/pfrederiksen/dhaka-daily/internal/calendar"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatICS  OutputFormat = "ics"
)

// OutputResult contains data to be output
type OutputResult struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Record      *almanac.Record `json:"record"`
	Timeline    []TimelineEntry `json:"timeline"`
}

func newOutputResult(rec *almanac.Record, now time.Time) *OutputResult {
	return &OutputResult{
		GeneratedAt: now.UTC(),
		Record:      rec,
		Timeline:    buildTimeline(rec),
	}
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	case FormatICS:
		_, err := io.WriteString(w, GenerateICS(result))
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	rec := result.Record

	fmt.Fprintf(w, "Date:     %s (%s)\n", rec.Date.Format("2006-01-02"), rec.Weekday)
	fmt.Fprintf(w, "Place:    %s\n", rec.Place)
	fmt.Fprintf(w, "Bengali:  %s\n", rec.Bengali)
	fmt.Fprintf(w, "Hijri:    %s\n", rec.Hijri)
	fmt.Fprintf(w, "Season:   %s\n", rec.Season)

	if verbose {
		fmt.Fprintf(w, "          %s, %s\n", calendar.WeekdayName(rec.Weekday), calendar.GregorianDate(rec.Date))
		fmt.Fprintf(w, "          %s বঙ্গাব্দ\n", rec.Bengali.Bengali())
		fmt.Fprintf(w, "          %s হিজরি\n", rec.Hijri.Bengali())
		fmt.Fprintf(w, "          %s %s\n", rec.Season.Emoji(), rec.Season.Bengali())
	}

	fmt.Fprintln(w)
	for _, e := range result.Timeline {
		if e.Until.IsZero() {
			fmt.Fprintf(w, "  %s  %s\n", e.At.Format("15:04"), e.Name)
			continue
		}
		fmt.Fprintf(w, "  %s  %-8s until %s\n", e.At.Format("15:04"), e.Name, e.Until.Format("15:04"))
	}

	return nil
}
