package cli

import (
	"sort"
	"time"

	"github.com/pfrederiksen/dhaka-daily/internal/almanac"
)

// TimelineEntry is one moment of the day: a sun event or the start of a prayer.
type TimelineEntry struct {
	Name  string    `json:"name"`
	At    time.Time `json:"at"`
	Until time.Time `json:"until,omitzero"`
}

// buildTimeline lists the record's times in chronological order. Entries that
// share a minute (Maghrib starts at sunset) keep their listed order.
func buildTimeline(rec *almanac.Record) []TimelineEntry {
	t := rec.Times
	entries := []TimelineEntry{
		{Name: "Fajr", At: t.Fajr.Start, Until: t.Fajr.End},
		{Name: "Sunrise", At: t.Sunrise},
		{Name: "Dhuhr", At: t.Dhuhr.Start, Until: t.Dhuhr.End},
		{Name: "Asr", At: t.Asr.Start, Until: t.Asr.End},
		{Name: "Sunset", At: t.Sunset},
		{Name: "Maghrib", At: t.Maghrib.Start, Until: t.Maghrib.End},
		{Name: "Isha", At: t.Isha.Start, Until: t.Isha.End},
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].At.Before(entries[j].At)
	})
	return entries
}
