package bazi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateStrengthKnownCharts(t *testing.T) {
	tests := []struct {
		name      string
		chart     Chart
		wantScore float64
		wantLabel string
	}{
		{
			name:      "metal day master in metal season",
			chart:     chartFromPillars("庚午", "辛巳", "庚辰", ""),
			wantScore: 87.1,
			wantLabel: StrengthStrong,
		},
		{
			name:      "metal day master with hour pillar",
			chart:     chartFromPillars("庚午", "辛巳", "庚辰", "癸未"),
			wantScore: 85.8,
			wantLabel: StrengthStrong,
		},
		{
			name:      "fire day master in autumn",
			chart:     chartFromPillars("癸酉", "壬戌", "丙申", "戊子"),
			wantScore: 47.3,
			wantLabel: StrengthWeak,
		},
		{
			name:      "earth day master in early spring",
			chart:     chartFromPillars("甲辰", "丙寅", "戊戌", ""),
			wantScore: 78.3,
			wantLabel: StrengthStrong,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateStrength(tt.chart)
			require.InDelta(t, tt.wantScore, got.Score, 0.001)
			require.Equal(t, tt.wantLabel, got.Label)
		})
	}
}

func TestEvaluateStrengthScoreBounds(t *testing.T) {
	// Every stem as day master over the twelve month branches stays inside
	// the clamped range.
	for _, dayStem := range stems {
		for _, monthBranch := range branches {
			chart := Chart{
				YearPillar:  Pillar{Stem: "甲", Branch: "子"},
				MonthPillar: Pillar{Stem: "丙", Branch: monthBranch},
				DayPillar:   Pillar{Stem: dayStem, Branch: "午"},
				HourPillar:  Pillar{Stem: "庚", Branch: "申"},
				DayMaster:   dayStem,
			}
			got := EvaluateStrength(chart)
			require.GreaterOrEqual(t, got.Score, 0.0)
			require.LessOrEqual(t, got.Score, 100.0)
			if got.Score >= 55.0 {
				require.Equal(t, StrengthStrong, got.Label)
			} else {
				require.Equal(t, StrengthWeak, got.Label)
			}
		}
	}
}

func TestEvaluateStrengthHourPillarOptional(t *testing.T) {
	withHour := EvaluateStrength(chartFromPillars("庚午", "辛巳", "庚辰", "癸未"))
	withoutHour := EvaluateStrength(chartFromPillars("庚午", "辛巳", "庚辰", ""))
	// The water hour stem drains the metal day master slightly.
	require.Less(t, withHour.Score, withoutHour.Score)
}
