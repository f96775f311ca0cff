package calendar

import "time"

var weekdayNames = [7]string{
	"রবিবার", "সোমবার", "মঙ্গলবার", "বুধবার", "বৃহস্পতিবার", "শুক্রবার", "শনিবার",
}

var gregorianMonthNames = [12]string{
	"জানুয়ারি", "ফেব্রুয়ারি", "মার্চ", "এপ্রিল", "মে", "জুন",
	"জুলাই", "আগস্ট", "সেপ্টেম্বর", "অক্টোবর", "নভেম্বর", "ডিসেম্বর",
}

// WeekdayName returns the Bengali name of a weekday.
func WeekdayName(d time.Weekday) string {
	return weekdayNames[int(d)%7]
}

// GregorianMonthName returns the Bengali name of a Gregorian month.
func GregorianMonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return gregorianMonthNames[m-1]
}

// GregorianDate renders t as "day month year" in Bengali, e.g. "১৪ এপ্রিল ২০২৪".
func GregorianDate(t time.Time) string {
	return Number(t.Day()) + " " + GregorianMonthName(t.Month()) + " " + Number(t.Year())
}

// ClockTime renders t as a 12-hour clock with Bengali digits followed by the
// Bengali part-of-day word, e.g. "০৫:৪২ সকাল".
func ClockTime(t time.Time) string {
	h := t.Hour() % 12
	if h == 0 {
		h = 12
	}
	return Padded(h) + ":" + Padded(t.Minute()) + " " + partOfDay(t.Hour())
}

// partOfDay follows the boundaries of the common bn locale meridiem.
func partOfDay(hour int) string {
	switch {
	case hour < 4:
		return "রাত"
	case hour < 10:
		return "সকাল"
	case hour < 17:
		return "দুপুর"
	case hour < 20:
		return "বিকাল"
	default:
		return "রাত"
	}
}
