package calendar

import (
	"fmt"
	"strings"
	"time"
)

// BengaliMonth is a month of the Bengali solar calendar, Boishakh being 1.
type BengaliMonth int

const (
	Boishakh BengaliMonth = iota + 1
	Joishtho
	Asharh
	Shrabon
	Bhadro
	Ashwin
	Kartik
	Agrahayan
	Poush
	Magh
	Falgun
	Chaitra
)

var bengaliMonthNames = [12]string{
	"Boishakh", "Joishtho", "Asharh", "Shrabon", "Bhadro", "Ashwin",
	"Kartik", "Agrahayan", "Poush", "Magh", "Falgun", "Chaitra",
}

var bengaliMonthNative = [12]string{
	"বৈশাখ", "জ্যৈষ্ঠ", "আষাঢ়", "শ্রাবণ", "ভাদ্র", "আশ্বিন",
	"কার্তিক", "অগ্রহায়ণ", "পৌষ", "মাঘ", "ফাল্গুন", "চৈত্র",
}

// Valid reports whether m is one of the twelve months.
func (m BengaliMonth) Valid() bool {
	return m >= Boishakh && m <= Chaitra
}

// String returns the romanized month name.
func (m BengaliMonth) String() string {
	if !m.Valid() {
		return fmt.Sprintf("BengaliMonth(%d)", int(m))
	}
	return bengaliMonthNames[m-1]
}

// Bengali returns the month name in Bengali script.
func (m BengaliMonth) Bengali() string {
	if !m.Valid() {
		return ""
	}
	return bengaliMonthNative[m-1]
}

// Next returns the month that follows m, wrapping Chaitra to Boishakh.
func (m BengaliMonth) Next() BengaliMonth {
	return m%12 + 1
}

// ParseBengaliMonth accepts a romanized name, case-insensitively.
func ParseBengaliMonth(s string) (BengaliMonth, error) {
	for i, name := range bengaliMonthNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return BengaliMonth(i + 1), nil
		}
	}
	return 0, fmt.Errorf("unknown bengali month %q", s)
}

// Revision selects which Bangladesh reform of the calendar is used.
type Revision string

const (
	// Revision1987: Boishakh to Bhadro have 31 days, the rest 30, Falgun 31 in leap years.
	Revision1987 Revision = "1987"
	// Revision2019: Boishakh to Ashwin have 31 days, Falgun 29 (30 in leap years), the rest 30.
	Revision2019 Revision = "2019"
)

// ParseRevision accepts "1987" or "2019"; the empty string selects Revision1987.
func ParseRevision(s string) (Revision, error) {
	switch Revision(strings.TrimSpace(s)) {
	case "", Revision1987:
		return Revision1987, nil
	case Revision2019:
		return Revision2019, nil
	default:
		return "", fmt.Errorf("unknown bengali calendar revision %q (want 1987 or 2019)", s)
	}
}

// monthSplit describes one Gregorian month. Days up to and including split belong to
// before (day + beforeShift); later days belong to after (day + afterShift).
type monthSplit struct {
	split       int
	before      BengaliMonth
	beforeShift int
	after       BengaliMonth
	afterShift  int
	// leapDay adds one to beforeShift in Gregorian leap years (Falgun's extra day).
	leapDay bool
}

var splits1987 = [12]monthSplit{
	{split: 13, before: Poush, beforeShift: 17, after: Magh, afterShift: -13},
	{split: 12, before: Magh, beforeShift: 18, after: Falgun, afterShift: -12},
	{split: 14, before: Falgun, beforeShift: 16, after: Chaitra, afterShift: -14, leapDay: true},
	{split: 13, before: Chaitra, beforeShift: 17, after: Boishakh, afterShift: -13},
	{split: 14, before: Boishakh, beforeShift: 17, after: Joishtho, afterShift: -14},
	{split: 14, before: Joishtho, beforeShift: 17, after: Asharh, afterShift: -14},
	{split: 15, before: Asharh, beforeShift: 16, after: Shrabon, afterShift: -15},
	{split: 15, before: Shrabon, beforeShift: 16, after: Bhadro, afterShift: -15},
	{split: 15, before: Bhadro, beforeShift: 16, after: Ashwin, afterShift: -15},
	{split: 15, before: Ashwin, beforeShift: 15, after: Kartik, afterShift: -15},
	{split: 14, before: Kartik, beforeShift: 16, after: Agrahayan, afterShift: -14},
	{split: 14, before: Agrahayan, beforeShift: 16, after: Poush, afterShift: -14},
}

var splits2019 = [12]monthSplit{
	{split: 14, before: Poush, beforeShift: 16, after: Magh, afterShift: -14},
	{split: 13, before: Magh, beforeShift: 17, after: Falgun, afterShift: -13},
	{split: 14, before: Falgun, beforeShift: 15, after: Chaitra, afterShift: -14, leapDay: true},
	{split: 13, before: Chaitra, beforeShift: 17, after: Boishakh, afterShift: -13},
	{split: 14, before: Boishakh, beforeShift: 17, after: Joishtho, afterShift: -14},
	{split: 14, before: Joishtho, beforeShift: 17, after: Asharh, afterShift: -14},
	{split: 15, before: Asharh, beforeShift: 16, after: Shrabon, afterShift: -15},
	{split: 15, before: Shrabon, beforeShift: 16, after: Bhadro, afterShift: -15},
	{split: 15, before: Bhadro, beforeShift: 16, after: Ashwin, afterShift: -15},
	{split: 16, before: Ashwin, beforeShift: 15, after: Kartik, afterShift: -16},
	{split: 15, before: Kartik, beforeShift: 15, after: Agrahayan, afterShift: -15},
	{split: 15, before: Agrahayan, beforeShift: 15, after: Poush, afterShift: -15},
}

func splitsFor(rev Revision) *[12]monthSplit {
	if rev == Revision2019 {
		return &splits2019
	}
	return &splits1987
}

// BengaliDate is a date of the Bengali solar calendar (Bangabda).
type BengaliDate struct {
	Day   int          `json:"day"`
	Month BengaliMonth `json:"month"`
	Year  int          `json:"year"`
}

// String renders the date with romanized month and ASCII digits, e.g. "1 Boishakh 1431".
func (d BengaliDate) String() string {
	return fmt.Sprintf("%d %s %d", d.Day, d.Month, d.Year)
}

// Bengali renders the date in Bengali script, e.g. "১ বৈশাখ ১৪৩১".
func (d BengaliDate) Bengali() string {
	return Number(d.Day) + " " + d.Month.Bengali() + " " + Number(d.Year)
}

// ToBengali converts the civil date of t (in t's location) using Revision1987.
func ToBengali(t time.Time) BengaliDate {
	return ToBengaliRevision(t, Revision1987)
}

// ToBengaliRevision converts the civil date of t (in t's location) using rev.
func ToBengaliRevision(t time.Time, rev Revision) BengaliDate {
	year, month, day := t.Date()
	s := splitsFor(rev)[month-1]

	var d BengaliDate
	if day <= s.split {
		d.Month = s.before
		d.Day = day + s.beforeShift
		if s.leapDay && isLeap(year) {
			d.Day++
		}
	} else {
		d.Month = s.after
		d.Day = day + s.afterShift
	}

	d.Year = year - 594
	if t.YearDay() >= newYearDay(year) {
		d.Year = year - 593
	}
	return d
}

// newYearDay is the Gregorian day-of-year of Pohela Boishakh (14 April).
func newYearDay(year int) int {
	if isLeap(year) {
		return 105
	}
	return 104
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// MarshalText encodes the month by its romanized name.
func (m BengaliMonth) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid bengali month %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText decodes a romanized month name.
func (m *BengaliMonth) UnmarshalText(text []byte) error {
	parsed, err := ParseBengaliMonth(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
