// Package bazi implements the Four Pillars (八字) calendrical calculator: the
// sexagenary year/month/day/hour pillars of a birth instant, the weighted
// five element distribution, the day master strength classification and the
// derived favorable elements.
//
// The package is pure and side effect free. Every computation is local to
// the call, so a Calculator is safe for concurrent use; its only state is
// the solar term source chosen at construction.
package bazi

import (
	"fmt"

	apperrors "github.com/octa-app/fengshui-backend/pkg/errors"
)

// Calculator computes natal charts. The zero value is not usable; construct
// with NewCalculator.
type Calculator struct {
	terms TermSource
}

// Option customizes a Calculator.
type Option func(*Calculator)

// WithTermSource substitutes the solar term strategy, typically a
// TableTermSource backed by precomputed ephemeris dates.
func WithTermSource(src TermSource) Option {
	return func(c *Calculator) {
		if src != nil {
			c.terms = src
		}
	}
}

// NewCalculator builds a Calculator using the approximate solar term
// estimator unless overridden.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{terms: approxTermSource{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compute derives the full chart for a birth input. The hour pillar is
// populated only when both hour and longitude are provided; a partial
// combination silently omits it. The only error condition is invalid date or
// time components.
func (c *Calculator) Compute(in BirthInput) (Chart, error) {
	if err := validateInput(in); err != nil {
		return Chart{}, err
	}
	date := civilDate{year: in.Year, month: in.Month, day: in.Day}

	year := c.yearPillar(date)
	month := c.monthPillar(date, year.Stem)
	day := dayPillar(date)

	chart := Chart{
		YearPillar:  year,
		MonthPillar: month,
		DayPillar:   day,
		DayMaster:   day.Stem,
	}

	if in.Hour != nil && in.Longitude != nil {
		minute := 0
		if in.Minute != nil {
			minute = *in.Minute
		}
		lt := localTime{
			date:          date,
			hour:          *in.Hour,
			minute:        minute,
			zoneOffsetHrs: effectiveZoneOffset(in.Timezone, *in.Longitude, date),
		}
		solarHour, solarMinute := toTrueSolar(lt, *in.Longitude)
		chart.HourPillar = hourPillar(day.Stem, solarHour, solarMinute)
	}

	chart.Elements = scoreDistribution(chart)
	return chart, nil
}

func validateInput(in BirthInput) error {
	if in.Month < 1 || in.Month > 12 {
		return invalidDate(fmt.Sprintf("month %d out of range", in.Month))
	}
	if in.Day < 1 || in.Day > daysInMonth(in.Year, in.Month) {
		return invalidDate(fmt.Sprintf("day %d out of range for %d-%02d", in.Day, in.Year, in.Month))
	}
	if in.Hour != nil && (*in.Hour < 0 || *in.Hour > 23) {
		return invalidDate(fmt.Sprintf("hour %d out of range", *in.Hour))
	}
	if in.Minute != nil && (*in.Minute < 0 || *in.Minute > 59) {
		return invalidDate(fmt.Sprintf("minute %d out of range", *in.Minute))
	}
	return nil
}

func invalidDate(detail string) error {
	return apperrors.Wrap("invalid_date", "invalid birth date components: "+detail, nil)
}

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	}
	return 0
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
