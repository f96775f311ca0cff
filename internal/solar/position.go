package solar

import (
	"math"
	"time"
)

// julianDay returns the Julian day number at 00:00 UTC of the given civil date.
func julianDay(year int, month time.Month, day int) float64 {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return float64(t.Unix())/86400 + 2440587.5
}

// sunPosition returns the sun's declination in degrees and the equation of time
// in hours for Julian day jd. Accuracy is well under a minute of time for
// dates within a few centuries of J2000.
func sunPosition(jd float64) (decl, eqt float64) {
	d := jd - 2451545.0

	g := fixAngle(357.529 + 0.98560028*d)
	q := fixAngle(280.459 + 0.98564736*d)
	l := fixAngle(q + 1.915*dsin(g) + 0.020*dsin(2*g))
	e := 23.439 - 0.00000036*d

	ra := fixHour(darctan2(dcos(e)*dsin(l), dcos(l)) / 15)
	eqt = q/15 - ra
	switch {
	case eqt > 12:
		eqt -= 24
	case eqt < -12:
		eqt += 24
	}
	decl = darcsin(dsin(e) * dsin(l))
	return decl, eqt
}

// hourAngle returns the hours between solar noon and the moment the sun reaches
// altitude alt (degrees, negative below the horizon). ok is false when the sun
// never reaches that altitude on this day.
func hourAngle(alt, lat, decl float64) (hours float64, ok bool) {
	c := (dsin(alt) - dsin(lat)*dsin(decl)) / (dcos(lat) * dcos(decl))
	if c < -1 || c > 1 || math.IsNaN(c) {
		return 0, false
	}
	return darccos(c) / 15, true
}

// asrAltitude is the sun altitude at which shadows reach factor times an
// object's height plus its noon shadow.
func asrAltitude(factor, lat, decl float64) float64 {
	return darccot(factor + dtan(math.Abs(lat-decl)))
}

const deg = math.Pi / 180

func dsin(d float64) float64 {
	return math.Sin(d * deg)
}

func dcos(d float64) float64 {
	return math.Cos(d * deg)
}

func dtan(d float64) float64 {
	return math.Tan(d * deg)
}

func darcsin(x float64) float64 {
	return math.Asin(x) / deg
}

func darccos(x float64) float64 {
	return math.Acos(x) / deg
}

func darccot(x float64) float64 {
	return math.Atan(1/x) / deg
}

func darctan2(y, x float64) float64 {
	return math.Atan2(y, x) / deg
}

func fixAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

func fixHour(h float64) float64 {
	h = math.Mod(h, 24)
	if h < 0 {
		h += 24
	}
	return h
}
