// Package calendar converts Gregorian dates into the Bengali solar calendar and the
// Hijri lunar calendar, and renders numbers with native Bengali digits.
//
// The Bengali conversion is table driven: every Gregorian month has a split day that
// separates the tail of one Bengali month from the head of the next, plus the offsets
// that turn the Gregorian day-of-month into the Bengali one. Two Bangladesh revisions
// are supported (1987 and 2019), 1987 being the default.
//
// Hijri dates come from the Umm al-Qura table with a tabular fallback. They are a
// best-effort approximation; local moon sighting can differ by a day, which callers
// correct with HijriOptions.AdjustDays.
package calendar
