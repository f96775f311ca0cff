package calendar

import (
	"fmt"
	"strings"
	"time"

	hijri "github.com/hablullah/go-hijri"
)

// HijriMonth is a month of the Islamic lunar calendar, Muharram being 1.
type HijriMonth int

const (
	Muharram HijriMonth = iota + 1
	Safar
	RabiAlAwwal
	RabiAlThani
	JumadaAlAwwal
	JumadaAlThani
	Rajab
	Shaban
	Ramadan
	Shawwal
	DhuAlQadah
	DhuAlHijjah
)

var hijriMonthNames = [12]string{
	"Muharram", "Safar", "Rabi al-Awwal", "Rabi al-Thani", "Jumada al-Awwal", "Jumada al-Thani",
	"Rajab", "Shaban", "Ramadan", "Shawwal", "Dhu al-Qadah", "Dhu al-Hijjah",
}

var hijriMonthNative = [12]string{
	"মুহাররম", "সফর", "রবিউল আউয়াল", "রবিউস সানি", "জমাদিউল আউয়াল", "জমাদিউস সানি",
	"রজব", "শাবান", "রমজান", "শাওয়াল", "জিলকদ", "জিলহজ",
}

// Valid reports whether m is one of the twelve months.
func (m HijriMonth) Valid() bool {
	return m >= Muharram && m <= DhuAlHijjah
}

func (m HijriMonth) String() string {
	if !m.Valid() {
		return fmt.Sprintf("HijriMonth(%d)", int(m))
	}
	return hijriMonthNames[m-1]
}

// Bengali returns the month name in Bengali script.
func (m HijriMonth) Bengali() string {
	if !m.Valid() {
		return ""
	}
	return hijriMonthNative[m-1]
}

// MarshalText encodes the month by its romanized name.
func (m HijriMonth) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid hijri month %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText decodes a romanized month name.
func (m *HijriMonth) UnmarshalText(text []byte) error {
	for i, name := range hijriMonthNames {
		if strings.EqualFold(name, strings.TrimSpace(string(text))) {
			*m = HijriMonth(i + 1)
			return nil
		}
	}
	return fmt.Errorf("unknown hijri month %q", string(text))
}

// HijriDate is a date of the Islamic calendar.
type HijriDate struct {
	Day   int        `json:"day"`
	Month HijriMonth `json:"month"`
	Year  int        `json:"year"`
}

func (d HijriDate) String() string {
	return fmt.Sprintf("%d %s %d", d.Day, d.Month, d.Year)
}

// Bengali renders the date in Bengali script, e.g. "১ মুহাররম ১৪৪৬".
func (d HijriDate) Bengali() string {
	return Number(d.Day) + " " + d.Month.Bengali() + " " + Number(d.Year)
}

// HijriMethod selects how Hijri dates are computed.
type HijriMethod string

const (
	// HijriUmmAlQura uses the Saudi Umm al-Qura table, falling back to the
	// arithmetic calendar outside the table's range (1937-2077).
	HijriUmmAlQura HijriMethod = "umalqura"
	// HijriArithmetic uses the tabular 30-year cycle calendar.
	HijriArithmetic HijriMethod = "arithmetic"
)

// ParseHijriMethod accepts "umalqura" or "arithmetic"; the empty string selects umalqura.
func ParseHijriMethod(s string) (HijriMethod, error) {
	switch HijriMethod(strings.ToLower(strings.TrimSpace(s))) {
	case "", HijriUmmAlQura:
		return HijriUmmAlQura, nil
	case HijriArithmetic:
		return HijriArithmetic, nil
	default:
		return "", fmt.Errorf("unknown hijri method %q (want umalqura or arithmetic)", s)
	}
}

// HijriOptions tunes ToHijri.
type HijriOptions struct {
	Method HijriMethod
	// AdjustDays shifts the civil date before lookup, e.g. -1 when the local
	// moon sighting runs a day behind Makkah.
	AdjustDays int
}

// ToHijri converts the civil date of t (in t's location) to a Hijri date.
func ToHijri(t time.Time, opts HijriOptions) (HijriDate, error) {
	year, month, day := t.Date()
	civil := time.Date(year, month, day+opts.AdjustDays, 12, 0, 0, 0, time.UTC)

	if opts.Method != HijriArithmetic {
		uq, err := hijri.CreateUmmAlQuraDate(civil)
		if err == nil {
			return HijriDate{Day: int(uq.Day), Month: HijriMonth(uq.Month), Year: int(uq.Year)}, nil
		}
	}

	h, err := hijri.CreateHijriDate(civil, hijri.Default)
	if err != nil {
		return HijriDate{}, fmt.Errorf("converting %s to hijri: %w", civil.Format("2006-01-02"), err)
	}
	return HijriDate{Day: int(h.Day), Month: HijriMonth(h.Month), Year: int(h.Year)}, nil
}
