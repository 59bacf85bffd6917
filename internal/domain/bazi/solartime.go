package bazi

import (
	"math"
	"time"
)

// localTime is a wall clock instant paired with the effective UTC offset in
// whole hours.
type localTime struct {
	date          civilDate
	hour          int
	minute        int
	zoneOffsetHrs int
}

// effectiveZoneOffset resolves the UTC offset in whole hours. A valid IANA
// identifier wins; otherwise the offset is estimated from the longitude at 15
// degrees per hour.
func effectiveZoneOffset(timezone string, longitude float64, date civilDate) int {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err == nil {
			t := time.Date(date.year, time.Month(date.month), date.day, 12, 0, 0, 0, loc)
			_, offsetSec := t.Zone()
			return int(math.Round(float64(offsetSec) / 3600.0))
		}
	}
	return int(math.Round(longitude / 15.0))
}

// equationOfTimeMinutes returns the equation-of-time correction for a day of
// year using the standard harmonic approximation (accurate to about a
// minute).
func equationOfTimeMinutes(dayOfYear int) float64 {
	b := 2 * math.Pi * float64(dayOfYear-81) / 364.0
	return 229.18 * (0.000075 +
		0.001868*math.Cos(b) - 0.032077*math.Sin(b) -
		0.014615*math.Cos(2*b) - 0.040849*math.Sin(2*b))
}

func dayOfYear(d civilDate) int {
	return julianDayNumber(d.year, d.month, d.day) - julianDayNumber(d.year, 1, 1) + 1
}

// toTrueSolar corrects a wall clock time for the longitude offset from the
// zone meridian and for the equation of time. Only the resulting time of day
// matters; the date may roll over the correction without affecting the hour
// branch selection.
func toTrueSolar(lt localTime, longitude float64) (hour, minute int) {
	lstm := 15.0 * float64(lt.zoneOffsetHrs)
	longitudeCorrection := 4.0 * (longitude - lstm)
	eot := equationOfTimeMinutes(dayOfYear(lt.date))

	total := int(math.Floor(float64(lt.hour*60+lt.minute) + longitudeCorrection + eot))
	total = ((total % 1440) + 1440) % 1440
	return total / 60, total % 60
}
