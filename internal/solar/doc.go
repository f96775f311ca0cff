// Package solar computes sunrise, sunset and the five daily prayer times for a
// location and civil day.
//
// Sunrise and sunset come from go-sunrise. Prayer times follow the usual
// solar-angle rules: Dhuhr at solar noon, Fajr and Isha when the sun is a fixed
// angle below the horizon, Asr when an object's shadow reaches its length times
// the Asr factor plus the noon shadow, Maghrib at sunset.
package solar
