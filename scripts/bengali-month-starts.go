package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pfrederiksen/dhaka-daily/internal/calendar"
)

// Prints the Gregorian date on which every Bengali month starts in a given
// year, under both calendar revisions, for checking against the printed
// Bangla Academy calendar.
func main() {
	year := time.Now().Year()
	if len(os.Args) > 1 {
		y, err := strconv.Atoi(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid year %q\n", os.Args[1])
			os.Exit(1)
		}
		year = y
	}

	fmt.Printf("Bengali month starts in %d\n\n", year)
	fmt.Printf("%-10s  %-10s  %-10s\n", "Month", "1987", "2019")

	starts := map[calendar.Revision]map[calendar.BengaliMonth]time.Time{
		calendar.Revision1987: {},
		calendar.Revision2019: {},
	}
	day := time.Date(year, time.January, 1, 12, 0, 0, 0, time.UTC)
	for day.Year() == year {
		for rev, found := range starts {
			if d := calendar.ToBengaliRevision(day, rev); d.Day == 1 {
				found[d.Month] = day
			}
		}
		day = day.AddDate(0, 0, 1)
	}

	for m := calendar.Boishakh; m <= calendar.Chaitra; m++ {
		fmt.Printf("%-10s  %-10s  %-10s\n", m,
			starts[calendar.Revision1987][m].Format("Jan 02"),
			starts[calendar.Revision2019][m].Format("Jan 02"))
	}
}
