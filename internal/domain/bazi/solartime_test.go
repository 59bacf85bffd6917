package bazi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEffectiveZoneOffset(t *testing.T) {
	date := civilDate{1990, 11, 3}

	// IANA identifier wins over the longitude estimate.
	require.Equal(t, 8, effectiveZoneOffset("Asia/Shanghai", 0, date))
	require.Equal(t, 9, effectiveZoneOffset("Asia/Tokyo", 116.4, date))

	// The offset is sampled on the birth date itself, so historical DST is
	// honored: China observed UTC+9 in the summers of 1986-1991.
	require.Equal(t, 9, effectiveZoneOffset("Asia/Shanghai", 0, civilDate{1990, 5, 15}))

	// Unknown or empty names fall back to 15 degrees per hour.
	require.Equal(t, 8, effectiveZoneOffset("Not/AZone", 116.4, date))
	require.Equal(t, 8, effectiveZoneOffset("", 121.47, date))
	require.Equal(t, -5, effectiveZoneOffset("", -74.0, date))
}

func TestEquationOfTimeMinutes(t *testing.T) {
	// Fixed points of the harmonic approximation, preserved as-is from the
	// production calculator.
	tests := []struct {
		date civilDate
		want float64
	}{
		{civilDate{1990, 2, 11}, 13.317},
		{civilDate{1990, 5, 15}, -13.623},
		{civilDate{1990, 11, 3}, -4.754},
		{civilDate{1993, 11, 11}, -2.884},
	}
	for _, tt := range tests {
		got := equationOfTimeMinutes(dayOfYear(tt.date))
		require.InDelta(t, tt.want, got, 0.001, "date %v", tt.date)
	}

	// The correction stays within a plausible band across a full year.
	for doy := 1; doy <= 365; doy++ {
		v := equationOfTimeMinutes(doy)
		require.Less(t, math.Abs(v), 20.0, "day %d", doy)
	}
}

func TestToTrueSolar(t *testing.T) {
	// Beijing, 1990-05-15 14:30 CST at longitude 116.4: the meridian deficit
	// of 3.6 degrees costs about 14 minutes and the equation of time takes
	// another 14 off.
	got := func(h, m int) (int, int) {
		return toTrueSolar(localTime{
			date: civilDate{1990, 5, 15}, hour: h, minute: m, zoneOffsetHrs: 8,
		}, 116.4)
	}

	h, m := got(14, 30)
	require.Equal(t, 14, h)
	require.Equal(t, 1, m)

	// Shanghai sits east of the zone meridian, pushing the clock forward.
	h, m = toTrueSolar(localTime{
		date: civilDate{1993, 11, 11}, hour: 23, minute: 30, zoneOffsetHrs: 8,
	}, 121.47)
	require.Equal(t, 23, h)
	require.Equal(t, 32, m)
}

func TestToTrueSolarWrapsMidnight(t *testing.T) {
	// A correction past midnight wraps; only the time of day survives.
	h, m := toTrueSolar(localTime{
		date: civilDate{1993, 11, 11}, hour: 23, minute: 58, zoneOffsetHrs: 8,
	}, 121.47)
	require.Equal(t, 0, h)
	require.GreaterOrEqual(t, m, 0)
	require.Less(t, m, 60)
}

func TestDayOfYear(t *testing.T) {
	require.Equal(t, 1, dayOfYear(civilDate{1990, 1, 1}))
	require.Equal(t, 365, dayOfYear(civilDate{1990, 12, 31}))
	require.Equal(t, 366, dayOfYear(civilDate{2024, 12, 31}))
	require.Equal(t, 60, dayOfYear(civilDate{2024, 2, 29}))
}
