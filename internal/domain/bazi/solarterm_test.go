package bazi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApproxTermDates1990(t *testing.T) {
	table := approxTermSource{}.Dates(1990)
	require.Len(t, table, 12)

	expected := map[Term]civilDate{
		TermLichun:    {1990, 2, 3},
		TermJingzhe:   {1990, 3, 9},
		TermQingming:  {1990, 4, 20},
		TermLixia:     {1990, 5, 13},
		TermMangzhong: {1990, 6, 13},
		TermXiaoshu:   {1990, 7, 15},
		TermLiqiu:     {1990, 8, 16},
		TermBailu:     {1990, 9, 16},
		TermHanlu:     {1990, 10, 17},
		TermLidong:    {1990, 11, 15},
		TermDaxue:     {1990, 12, 14},
		TermXiaohan:   {1990, 1, 10},
	}
	require.Equal(t, expected, map[Term]civilDate(table))
}

func TestApproxTermDatesPre1900(t *testing.T) {
	// The floor division must behave for years before the 1900 epoch too.
	table := approxTermSource{}.Dates(1890)
	for term, d := range table {
		require.Equal(t, 1890, d.year, "term %s", term)
		require.GreaterOrEqual(t, d.day, 1, "term %s", term)
		require.LessOrEqual(t, d.day, 31, "term %s", term)
	}
}

func TestTableTermSourceOverride(t *testing.T) {
	// Precomputed dates are served verbatim, even when they disagree with
	// the approximation.
	src := NewTableTermSource(map[int][]TermDate{
		1990: {
			{TermLichun, 2, 4}, {TermJingzhe, 3, 6}, {TermQingming, 4, 5},
			{TermLixia, 5, 6}, {TermMangzhong, 6, 6}, {TermXiaoshu, 7, 7},
			{TermLiqiu, 8, 8}, {TermBailu, 9, 8}, {TermHanlu, 10, 9},
			{TermLidong, 11, 8}, {TermDaxue, 12, 7}, {TermXiaohan, 1, 5},
		},
	})

	got := src.Dates(1990)
	require.Equal(t, civilDate{1990, 2, 4}, got[TermLichun])
	require.Equal(t, civilDate{1990, 4, 5}, got[TermQingming])

	// Uncovered years fall back to the approximation.
	require.Equal(t, approxTermSource{}.Dates(1991), src.Dates(1991))
}

func TestTableTermSourceIncompleteYearFallsBack(t *testing.T) {
	src := NewTableTermSource(map[int][]TermDate{
		1990: {{TermLichun, 2, 4}},
	})
	require.Equal(t, approxTermSource{}.Dates(1990), src.Dates(1990))
}

func TestParseTerm(t *testing.T) {
	term, ok := ParseTerm("lichun")
	require.True(t, ok)
	require.Equal(t, TermLichun, term)

	_, ok = ParseTerm("solstice")
	require.False(t, ok)
}
