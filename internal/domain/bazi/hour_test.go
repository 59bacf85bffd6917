package bazi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHourBranchSlots(t *testing.T) {
	tests := []struct {
		hour, minute int
		want         string
	}{
		{23, 0, "子"}, {23, 59, "子"}, {0, 0, "子"}, {0, 59, "子"},
		{1, 0, "丑"}, {2, 59, "丑"},
		{3, 0, "寅"}, {4, 59, "寅"},
		{5, 0, "卯"},
		{7, 0, "辰"},
		{9, 0, "巳"},
		{11, 0, "午"}, {12, 30, "午"},
		{13, 0, "未"}, {14, 1, "未"},
		{15, 0, "申"},
		{17, 0, "酉"},
		{19, 0, "戌"},
		{21, 0, "亥"}, {22, 59, "亥"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, hourBranch(tt.hour, tt.minute),
			"%02d:%02d", tt.hour, tt.minute)
	}
}

func TestHourPillarStemRule(t *testing.T) {
	// 庚 day at 14:01 true solar time sits in the 未 slot; pairing the day
	// stem with the branch yields 癸未.
	p := hourPillar("庚", 14, 1)
	require.Equal(t, "癸", p.Stem)
	require.Equal(t, "未", p.Branch)
	require.Equal(t, ElementWater, p.Element)

	// 丙 day just past 23:00 wraps into the rat hour of the same day pillar.
	p = hourPillar("丙", 23, 32)
	require.Equal(t, "戊", p.Stem)
	require.Equal(t, "子", p.Branch)
	require.Equal(t, ElementEarth, p.Element)

	// A 甲 day starts its hour cycle at 甲子.
	p = hourPillar("甲", 0, 0)
	require.Equal(t, "甲子", p.Stem+p.Branch)
}

func TestHourPillarCycleCoversAllStems(t *testing.T) {
	// Across the twelve slots of one day the stems advance by one each slot,
	// wrapping the ten-stem cycle.
	seen := map[string]int{}
	for slot := 0; slot < 12; slot++ {
		hour := (23 + slot*2) % 24
		p := hourPillar("甲", hour, 30)
		seen[p.Stem]++
	}
	require.Len(t, seen, 10)
}
