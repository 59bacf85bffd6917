package bazi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMonthPillarKnownDates(t *testing.T) {
	c := NewCalculator()

	tests := []struct {
		name     string
		date     civilDate
		yearStem string
		want     string
	}{
		{"mid solar month", civilDate{1990, 5, 15}, "庚", "辛巳"},
		{"before start of spring uses previous solar year", civilDate{1984, 1, 1}, "癸", "甲子"},
		{"first solar month", civilDate{2024, 2, 10}, "甲", "丙寅"},
		{"late december", civilDate{1993, 11, 11}, "癸", "壬戌"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := c.monthPillar(tt.date, tt.yearStem)
			require.Equal(t, tt.want, p.Stem+p.Branch)
		})
	}
}

func TestMonthPillarBoundaryDayStartsNewMonth(t *testing.T) {
	c := NewCalculator()

	// Lixia 1990 falls on May 13; the boundary day itself already belongs
	// to the new solar month.
	on := c.monthPillar(civilDate{1990, 5, 13}, "庚")
	require.Equal(t, "巳", on.Branch)

	before := c.monthPillar(civilDate{1990, 5, 12}, "庚")
	require.Equal(t, "辰", before.Branch)
}

func TestMonthPillarStemFollowsYearStem(t *testing.T) {
	c := NewCalculator()

	// Years sharing a stem group share the stem of their first solar month.
	date := civilDate{2024, 2, 10}
	tests := []struct {
		yearStem string
		want     string
	}{
		{"甲", "丙"}, {"己", "丙"},
		{"乙", "戊"}, {"庚", "戊"},
		{"丙", "庚"}, {"辛", "庚"},
		{"丁", "壬"}, {"壬", "壬"},
		{"戊", "甲"}, {"癸", "甲"},
	}
	for _, tt := range tests {
		p := c.monthPillar(date, tt.yearStem)
		require.Equal(t, tt.want, p.Stem, "year stem %s", tt.yearStem)
	}
}

func TestMonthPillarElementMatchesStem(t *testing.T) {
	c := NewCalculator()
	p := c.monthPillar(civilDate{1990, 5, 15}, "庚")
	require.Equal(t, stemElement[p.Stem], p.Element)
}
