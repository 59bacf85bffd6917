package bazi

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/octa-app/fengshui-backend/pkg/errors"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestComputeWithoutBirthTime(t *testing.T) {
	c := NewCalculator()

	chart, err := c.Compute(BirthInput{Year: 1990, Month: 5, Day: 15})
	require.NoError(t, err)

	require.Equal(t, "庚午", chart.YearPillar.Stem+chart.YearPillar.Branch)
	require.Equal(t, "辛巳", chart.MonthPillar.Stem+chart.MonthPillar.Branch)
	require.Equal(t, "庚辰", chart.DayPillar.Stem+chart.DayPillar.Branch)
	require.True(t, chart.HourPillar.IsZero())
	require.Equal(t, "庚", chart.DayMaster)

	require.InDelta(t, 44.22, chart.Elements.Metal, 0.001)
	require.InDelta(t, 3.11, chart.Elements.Wood, 0.001)
}

func TestComputeWithBirthTime(t *testing.T) {
	c := NewCalculator()

	chart, err := c.Compute(BirthInput{
		Year: 1990, Month: 5, Day: 15,
		Hour: intPtr(14), Minute: intPtr(30),
		Timezone:  "Asia/Shanghai",
		Longitude: floatPtr(116.4),
	})
	require.NoError(t, err)

	require.Equal(t, "癸未", chart.HourPillar.Stem+chart.HourPillar.Branch)
	require.InDelta(t, 34.23, chart.Elements.Metal, 0.001)
	require.InDelta(t, 13.21, chart.Elements.Water, 0.001)
}

func TestComputeLateNightStaysOnCivilDay(t *testing.T) {
	// 23:30 true solar time lands in the rat hour, but the day pillar still
	// belongs to the civil date of birth.
	c := NewCalculator()

	chart, err := c.Compute(BirthInput{
		Year: 1993, Month: 11, Day: 11,
		Hour: intPtr(23), Minute: intPtr(30),
		Timezone:  "Asia/Shanghai",
		Longitude: floatPtr(121.47),
	})
	require.NoError(t, err)

	require.Equal(t, "癸酉", chart.YearPillar.Stem+chart.YearPillar.Branch)
	require.Equal(t, "壬戌", chart.MonthPillar.Stem+chart.MonthPillar.Branch)
	require.Equal(t, "丙申", chart.DayPillar.Stem+chart.DayPillar.Branch)
	require.Equal(t, "戊子", chart.HourPillar.Stem+chart.HourPillar.Branch)
}

func TestComputeHourRequiresLongitude(t *testing.T) {
	c := NewCalculator()

	// Hour without longitude: the hour pillar is omitted, not an error.
	chart, err := c.Compute(BirthInput{
		Year: 1990, Month: 5, Day: 15, Hour: intPtr(14),
	})
	require.NoError(t, err)
	require.True(t, chart.HourPillar.IsZero())

	// Longitude without hour likewise.
	chart, err = c.Compute(BirthInput{
		Year: 1990, Month: 5, Day: 15, Longitude: floatPtr(116.4),
	})
	require.NoError(t, err)
	require.True(t, chart.HourPillar.IsZero())
}

func TestComputeMinuteDefaultsToZero(t *testing.T) {
	c := NewCalculator()

	explicit, err := c.Compute(BirthInput{
		Year: 1990, Month: 5, Day: 15,
		Hour: intPtr(14), Minute: intPtr(0),
		Timezone: "Asia/Shanghai", Longitude: floatPtr(116.4),
	})
	require.NoError(t, err)

	implicit, err := c.Compute(BirthInput{
		Year: 1990, Month: 5, Day: 15,
		Hour: intPtr(14),
		Timezone: "Asia/Shanghai", Longitude: floatPtr(116.4),
	})
	require.NoError(t, err)
	require.Equal(t, explicit, implicit)
}

func TestComputeInvalidInput(t *testing.T) {
	c := NewCalculator()

	tests := []struct {
		name string
		in   BirthInput
	}{
		{"month zero", BirthInput{Year: 1990, Month: 0, Day: 1}},
		{"month thirteen", BirthInput{Year: 1990, Month: 13, Day: 1}},
		{"day zero", BirthInput{Year: 1990, Month: 5, Day: 0}},
		{"day overflow", BirthInput{Year: 1990, Month: 4, Day: 31}},
		{"feb 29 non leap", BirthInput{Year: 1990, Month: 2, Day: 29}},
		{"feb 30 century", BirthInput{Year: 1900, Month: 2, Day: 29}},
		{"hour overflow", BirthInput{Year: 1990, Month: 5, Day: 15, Hour: intPtr(24)}},
		{"negative minute", BirthInput{Year: 1990, Month: 5, Day: 15, Hour: intPtr(10), Minute: intPtr(-1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Compute(tt.in)
			require.Error(t, err)
			require.True(t, apperrors.IsCode(err, "invalid_date"))
		})
	}

	// Leap day on a leap year is fine.
	_, err := c.Compute(BirthInput{Year: 2024, Month: 2, Day: 29})
	require.NoError(t, err)
	_, err = c.Compute(BirthInput{Year: 2000, Month: 2, Day: 29})
	require.NoError(t, err)
}

func TestComputeWithTableTermSource(t *testing.T) {
	// An injected ephemeris table that moves Lixia past the birth date
	// shifts the month pillar back one solar month.
	src := NewTableTermSource(map[int][]TermDate{
		1990: {
			{TermLichun, 2, 4}, {TermJingzhe, 3, 6}, {TermQingming, 4, 5},
			{TermLixia, 5, 16}, {TermMangzhong, 6, 6}, {TermXiaoshu, 7, 7},
			{TermLiqiu, 8, 8}, {TermBailu, 9, 8}, {TermHanlu, 10, 9},
			{TermLidong, 11, 8}, {TermDaxue, 12, 7}, {TermXiaohan, 1, 5},
		},
	})
	c := NewCalculator(WithTermSource(src))

	chart, err := c.Compute(BirthInput{Year: 1990, Month: 5, Day: 15})
	require.NoError(t, err)
	require.Equal(t, "庚辰", chart.MonthPillar.Stem+chart.MonthPillar.Branch)
}
