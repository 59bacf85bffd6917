package bazi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func chartFromPillars(year, month, day, hour string) Chart {
	mk := func(s string) Pillar {
		if s == "" {
			return Pillar{}
		}
		runes := []rune(s)
		stem, branch := string(runes[0]), string(runes[1])
		return Pillar{Stem: stem, Branch: branch, Element: stemElement[stem]}
	}
	c := Chart{
		YearPillar:  mk(year),
		MonthPillar: mk(month),
		DayPillar:   mk(day),
		HourPillar:  mk(hour),
	}
	c.DayMaster = c.DayPillar.Stem
	return c
}

func TestScoreDistributionThreePillars(t *testing.T) {
	// 1990-05-15 without birth time: metal dominates from the 庚 stems and
	// the 辰/巳 hidden stems, wood is nearly absent.
	chart := chartFromPillars("庚午", "辛巳", "庚辰", "")
	dist := scoreDistribution(chart)

	require.InDelta(t, 3.11, dist.Wood, 0.001)
	require.InDelta(t, 29.6, dist.Fire, 0.001)
	require.InDelta(t, 20.09, dist.Earth, 0.001)
	require.InDelta(t, 44.22, dist.Metal, 0.001)
	require.InDelta(t, 2.98, dist.Water, 0.001)
}

func TestScoreDistributionFourPillars(t *testing.T) {
	chart := chartFromPillars("庚午", "辛巳", "庚辰", "癸未")
	dist := scoreDistribution(chart)

	require.InDelta(t, 4.42, dist.Wood, 0.001)
	require.InDelta(t, 25.52, dist.Fire, 0.001)
	require.InDelta(t, 22.62, dist.Earth, 0.001)
	require.InDelta(t, 34.23, dist.Metal, 0.001)
	require.InDelta(t, 13.21, dist.Water, 0.001)
}

func TestScoreDistributionSumsToHundred(t *testing.T) {
	charts := []Chart{
		chartFromPillars("庚午", "辛巳", "庚辰", ""),
		chartFromPillars("庚午", "辛巳", "庚辰", "癸未"),
		chartFromPillars("癸酉", "壬戌", "丙申", "戊子"),
		chartFromPillars("甲辰", "丙寅", "戊戌", ""),
	}
	for _, chart := range charts {
		dist := scoreDistribution(chart)
		sum := dist.Wood + dist.Fire + dist.Earth + dist.Metal + dist.Water
		require.InDelta(t, 100.0, sum, 0.05)

		for _, v := range []float64{dist.Wood, dist.Fire, dist.Earth, dist.Metal, dist.Water} {
			require.GreaterOrEqual(t, v, 0.0)
			require.LessOrEqual(t, v, 100.0)
		}
	}
}

func TestScoreDistributionEmptyChart(t *testing.T) {
	// A zero chart must not divide by zero.
	dist := scoreDistribution(Chart{})
	require.Equal(t, Distribution{}, dist)
}

func TestSeasonalBoostModulatesHiddenStems(t *testing.T) {
	// Fire hidden in 午 counts for more under a summer month branch than
	// under a winter one.
	summer := scoreDistribution(chartFromPillars("庚午", "辛巳", "庚辰", ""))
	winter := scoreDistribution(chartFromPillars("庚午", "辛亥", "庚辰", ""))
	require.Greater(t, summer.Fire, winter.Fire)
}
