package solar

import (
	"errors"
	"fmt"
	"time"

	"github.com/nathan-osman/go-sunrise"
)

var (
	// ErrNoSunrise is returned on polar days and nights.
	ErrNoSunrise = errors.New("sun does not rise or set on this day")
	// ErrAngleUnreachable is returned when the sun never sinks to the Fajr or Isha angle.
	ErrAngleUnreachable = errors.New("sun does not reach the twilight angle on this day")
)

// Location is a point on Earth and the zone its clocks use.
type Location struct {
	Name      string
	Latitude  float64
	Longitude float64
	Zone      *time.Location
}

// Validate checks coordinate ranges and that a zone is set.
func (l Location) Validate() error {
	if l.Latitude < -90 || l.Latitude > 90 {
		return fmt.Errorf("latitude %.4f out of range", l.Latitude)
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return fmt.Errorf("longitude %.4f out of range", l.Longitude)
	}
	if l.Zone == nil {
		return errors.New("location has no time zone")
	}
	return nil
}

// Window is the span in which a prayer may be offered.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Times holds one day's sun and prayer times, all in the location's zone.
type Times struct {
	Sunrise time.Time `json:"sunrise"`
	Sunset  time.Time `json:"sunset"`
	Fajr    Window    `json:"fajr"`
	Dhuhr   Window    `json:"dhuhr"`
	Asr     Window    `json:"asr"`
	Maghrib Window    `json:"maghrib"`
	Isha    Window    `json:"isha"`
}

// Compute returns the times for the civil date of day as seen in loc.Zone.
func Compute(day time.Time, loc Location, m Method) (Times, error) {
	if err := loc.Validate(); err != nil {
		return Times{}, err
	}
	year, month, d := day.In(loc.Zone).Date()

	today, err := computeDay(year, month, d, loc, m)
	if err != nil {
		return Times{}, fmt.Errorf("computing times for %04d-%02d-%02d: %w", year, month, d, err)
	}
	next := time.Date(year, month, d+1, 0, 0, 0, 0, time.UTC)
	tomorrow, err := computeDay(next.Year(), next.Month(), next.Day(), loc, m)
	if err != nil {
		return Times{}, fmt.Errorf("computing times for %s: %w", next.Format("2006-01-02"), err)
	}

	// Isha lasts until the Islamic midnight, halfway between sunset and the next Fajr.
	midnight := today.sunset.Add(tomorrow.fajr.Sub(today.sunset) / 2)

	t := Times{
		Sunrise: today.sunrise,
		Sunset:  today.sunset,
		Fajr:    Window{Start: today.fajr, End: today.sunrise},
		Dhuhr:   Window{Start: today.dhuhr, End: today.asr},
		Asr:     Window{Start: today.asr, End: today.maghrib},
		Maghrib: Window{Start: today.maghrib, End: today.isha},
		Isha:    Window{Start: today.isha, End: midnight.Round(time.Minute)},
	}
	return t, nil
}

type dayTimes struct {
	sunrise time.Time
	sunset  time.Time
	fajr    time.Time
	dhuhr   time.Time
	asr     time.Time
	maghrib time.Time
	isha    time.Time
}

func computeDay(year int, month time.Month, day int, loc Location, m Method) (dayTimes, error) {
	rise, set := sunrise.SunriseSunset(loc.Latitude, loc.Longitude, year, month, day)
	if rise.IsZero() || set.IsZero() {
		return dayTimes{}, ErrNoSunrise
	}

	jd := julianDay(year, month, day)
	decl, eqt := sunPosition(jd + 0.5 - loc.Longitude/360)
	noon := 12 - loc.Longitude/15 - eqt

	fajrHA, ok := hourAngle(-m.FajrAngle, loc.Latitude, decl)
	if !ok {
		return dayTimes{}, fmt.Errorf("fajr at %.1f°: %w", m.FajrAngle, ErrAngleUnreachable)
	}
	asrHA, ok := hourAngle(asrAltitude(asrFactor(m), loc.Latitude, decl), loc.Latitude, decl)
	if !ok {
		return dayTimes{}, fmt.Errorf("asr: %w", ErrAngleUnreachable)
	}

	base := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	at := func(hours float64, adjust int) time.Time {
		t := base.Add(time.Duration(hours * float64(time.Hour)))
		return t.Add(time.Duration(adjust) * time.Minute).Round(time.Minute).In(loc.Zone)
	}

	dt := dayTimes{
		sunrise: rise.Round(time.Minute).In(loc.Zone),
		sunset:  set.Round(time.Minute).In(loc.Zone),
		fajr:    at(noon-fajrHA, m.Adjust.Fajr),
		dhuhr:   at(noon, m.Adjust.Dhuhr),
		asr:     at(noon+asrHA, m.Adjust.Asr),
	}
	dt.maghrib = set.Add(time.Duration(m.Adjust.Maghrib) * time.Minute).Round(time.Minute).In(loc.Zone)

	if m.IshaInterval > 0 {
		dt.isha = dt.maghrib.Add(time.Duration(m.IshaInterval+m.Adjust.Isha) * time.Minute)
	} else {
		ishaHA, ok := hourAngle(-m.IshaAngle, loc.Latitude, decl)
		if !ok {
			return dayTimes{}, fmt.Errorf("isha at %.1f°: %w", m.IshaAngle, ErrAngleUnreachable)
		}
		dt.isha = at(noon+ishaHA, m.Adjust.Isha)
	}
	return dt, nil
}

func asrFactor(m Method) float64 {
	if m.AsrFactor <= 0 {
		return AsrShafi
	}
	return m.AsrFactor
}
