// Package almanac builds the day's record: the civil date in three calendars,
// the Bengali season and the sun and prayer times for one location.
package almanac
