package bazi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalyzeLuckyElementsStrong(t *testing.T) {
	chart := chartFromPillars("庚午", "辛巳", "庚辰", "")
	profile := AnalyzeLuckyElements(chart, StrengthAssessment{Score: 87.1, Label: StrengthStrong})

	require.Equal(t, []string{ElementWood, ElementWater}, profile.Favorable)
	require.Equal(t, []string{ElementMetal, ElementEarth}, profile.Unfavorable)
}

func TestAnalyzeLuckyElementsWeak(t *testing.T) {
	chart := chartFromPillars("癸酉", "壬戌", "丙申", "戊子")
	profile := AnalyzeLuckyElements(chart, StrengthAssessment{Score: 47.3, Label: StrengthWeak})

	require.Equal(t, []string{ElementFire, ElementWood}, profile.Favorable)
	require.Equal(t, []string{ElementEarth, ElementWater}, profile.Unfavorable)
}

func TestAnalyzeLuckyElementsDisjoint(t *testing.T) {
	// For every day master and both labels the favorable and unfavorable
	// sets never overlap and never repeat.
	for _, stem := range stems {
		for _, label := range []string{StrengthStrong, StrengthWeak} {
			chart := Chart{DayMaster: stem}
			profile := AnalyzeLuckyElements(chart, StrengthAssessment{Label: label})

			require.Len(t, profile.Favorable, 2, "stem %s label %s", stem, label)
			require.Len(t, profile.Unfavorable, 2, "stem %s label %s", stem, label)

			seen := map[string]struct{}{}
			for _, e := range append(profile.Favorable, profile.Unfavorable...) {
				_, dup := seen[e]
				require.False(t, dup, "stem %s label %s repeats %s", stem, label, e)
				seen[e] = struct{}{}
			}
		}
	}
}

func TestLuckyDirections(t *testing.T) {
	dirs := LuckyDirections([]string{ElementWood, ElementWater})
	require.Equal(t, []string{"east", "southeast", "north"}, dirs)

	// Duplicated elements do not duplicate directions.
	require.Equal(t, dirs, LuckyDirections([]string{ElementWood, ElementWater, ElementWood}))
}

func TestLuckyColors(t *testing.T) {
	colors := LuckyColors([]string{ElementFire})
	require.NotEmpty(t, colors)
	for _, c := range colors {
		require.NotEmpty(t, c)
	}

	require.Empty(t, LuckyColors(nil))
}

func TestDedupKeepOrder(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, dedupKeepOrder([]string{"a", "b", "a", "", "c", "b"}))
	require.Empty(t, dedupKeepOrder(nil))
}
