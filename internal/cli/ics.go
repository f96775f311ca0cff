package cli

import (
	"fmt"
	"strings"
	"time"
)

// GenerateICS renders the day's prayer windows as an iCalendar (.ics) file,
// one VEVENT per prayer, so the schedule can be imported into a calendar app.
func GenerateICS(result *OutputResult) string {
	rec := result.Record
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//dhaka-daily//prayer times//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")

	day := rec.Date.Format("20060102")
	for _, e := range result.Timeline {
		if e.Until.IsZero() {
			continue
		}
		ics.WriteString("BEGIN:VEVENT\r\n")
		ics.WriteString(fmt.Sprintf("UID:%s-%s@dhaka-daily\r\n", day, strings.ToLower(e.Name)))
		ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", formatICSTime(result.GeneratedAt)))
		ics.WriteString(fmt.Sprintf("DTSTART:%s\r\n", formatICSTime(e.At)))
		ics.WriteString(fmt.Sprintf("DTEND:%s\r\n", formatICSTime(e.Until)))
		ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(e.Name)))

		description := fmt.Sprintf("%s\n%s\n%s", rec.Bengali, rec.Hijri, rec.Season)
		ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(description)))
		ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICS(rec.Place)))

		// Free, so the windows do not block the whole day.
		ics.WriteString("TRANSP:TRANSPARENT\r\n")
		ics.WriteString("END:VEVENT\r\n")
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	// RFC 5545 section 3.3.11
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
