package almanac

import (
	"fmt"
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006", // day first, as written in Bangladesh
	"Jan 2 2006",
	"2 Jan 2006",
}

// ParseDate parses a --date override as a civil date in zone. The returned time
// is noon on that date so that zone offsets never move it to a neighbouring day.
// Supports formats: "2024-04-14", "14/04/2024", "Apr 14 2024", "14 Apr 2024"
func ParseDate(text string, zone *time.Location) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}
	if zone == nil {
		zone = time.UTC
	}

	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, text, zone)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, zone), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q (use YYYY-MM-DD)", text)
}
