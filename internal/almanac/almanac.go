package almanac

import (
	"fmt"
	"time"

	"github.com/pfrederiksen/dhaka-daily/internal/calendar"
	"github.com/pfrederiksen/dhaka-daily/internal/solar"
)

// Options controls where and how the record is computed.
type Options struct {
	Location solar.Location
	// Label names the location in the message footer (e.g. "ঢাকা").
	Label    string
	Method   solar.Method
	Revision calendar.Revision
	Hijri    calendar.HijriOptions
}

// Record is everything the daily message reports.
type Record struct {
	Date    time.Time            `json:"date"` // local midnight of the civil day
	Weekday time.Weekday         `json:"-"`
	Place   string               `json:"place"`
	Bengali calendar.BengaliDate `json:"bengali"`
	Hijri   calendar.HijriDate   `json:"hijri"`
	Season  calendar.Season      `json:"season"`
	Times   solar.Times          `json:"times"`
}

// Build computes the record for the civil day that contains now in the
// location's time zone.
func Build(now time.Time, opts Options) (*Record, error) {
	if err := opts.Location.Validate(); err != nil {
		return nil, fmt.Errorf("invalid location: %w", err)
	}

	local := now.In(opts.Location.Zone)
	year, month, day := local.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, opts.Location.Zone)

	bengali := calendar.ToBengaliRevision(local, opts.Revision)

	hijri, err := calendar.ToHijri(local, opts.Hijri)
	if err != nil {
		return nil, fmt.Errorf("computing hijri date: %w", err)
	}

	times, err := solar.Compute(local, opts.Location, opts.Method)
	if err != nil {
		return nil, fmt.Errorf("computing prayer times: %w", err)
	}

	place := opts.Label
	if place == "" {
		place = opts.Location.Name
	}

	return &Record{
		Date:    midnight,
		Weekday: midnight.Weekday(),
		Place:   place,
		Bengali: bengali,
		Hijri:   hijri,
		Season:  calendar.SeasonOf(bengali.Month),
		Times:   times,
	}, nil
}
