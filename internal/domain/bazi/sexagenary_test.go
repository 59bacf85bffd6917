package bazi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestYearPillarAroundStartOfSpring(t *testing.T) {
	calc := NewCalculator()

	// 1984 opens a cycle: dates after that year's Start of Spring belong to
	// the 甲子 year.
	after := calc.yearPillar(civilDate{1984, 2, 5})
	require.Equal(t, "甲", after.Stem)
	require.Equal(t, "子", after.Branch)
	require.Equal(t, ElementWood, after.Element)

	// Before the boundary the previous year still rules.
	before := calc.yearPillar(civilDate{1984, 1, 1})
	require.Equal(t, "癸", before.Stem)
	require.Equal(t, "亥", before.Branch)
}

func TestYearPillarSixtyYearPeriod(t *testing.T) {
	calc := NewCalculator()
	for _, d := range []civilDate{{1990, 5, 15}, {1955, 7, 1}, {2003, 12, 24}} {
		base := calc.yearPillar(d)
		shifted := calc.yearPillar(civilDate{d.year + 60, d.month, d.day})
		require.Equal(t, base, shifted, "year pillar must repeat after 60 years for %v", d)
	}
}

func TestDayPillarAnchor(t *testing.T) {
	// The calibrated +2 offset puts the cycle-opening 甲子 day on 1984-01-31.
	jiazi := dayPillar(civilDate{1984, 1, 31})
	require.Equal(t, "甲", jiazi.Stem)
	require.Equal(t, "子", jiazi.Branch)

	// The anchor date itself sits two steps into the cycle.
	anchor := dayPillar(civilDate{1984, 2, 2})
	require.Equal(t, "丙", anchor.Stem)
	require.Equal(t, "寅", anchor.Branch)
}

func TestDayPillarKnownDates(t *testing.T) {
	cases := []struct {
		date         civilDate
		stem, branch string
	}{
		{civilDate{1990, 5, 15}, "庚", "辰"},
		{civilDate{2000, 1, 1}, "戊", "午"},
		{civilDate{1993, 11, 11}, "丙", "申"},
	}
	for _, tc := range cases {
		p := dayPillar(tc.date)
		require.Equal(t, tc.stem, p.Stem, "stem for %v", tc.date)
		require.Equal(t, tc.branch, p.Branch, "branch for %v", tc.date)
	}
}

func TestDayPillarSixtyDayPeriod(t *testing.T) {
	// Walk two months forward in JDN space; the pillar must repeat exactly.
	dates := []civilDate{{1990, 5, 15}, {1999, 12, 31}, {2024, 2, 29}}
	for _, d := range dates {
		base := dayPillar(d)
		shifted := dayPillar(addDays(d, 60))
		require.Equal(t, base, shifted, "day pillar must repeat after 60 days for %v", d)
	}
}

// addDays advances a civil date via JDN round trip, used only by tests.
func addDays(d civilDate, days int) civilDate {
	target := julianDayNumber(d.year, d.month, d.day) + days
	// Linear scan is plenty for test-sized offsets.
	cur := d
	for julianDayNumber(cur.year, cur.month, cur.day) < target {
		cur.day++
		if cur.day > daysInMonth(cur.year, cur.month) {
			cur.day = 1
			cur.month++
			if cur.month > 12 {
				cur.month = 1
				cur.year++
			}
		}
	}
	return cur
}

func TestJulianDayNumber(t *testing.T) {
	// 2000-01-01 is JDN 2451545.
	require.Equal(t, 2451545, julianDayNumber(2000, 1, 1))
	// JDN is strictly increasing across a year boundary.
	require.Equal(t, julianDayNumber(1999, 12, 31)+1, julianDayNumber(2000, 1, 1))
}
