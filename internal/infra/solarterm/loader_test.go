package solarterm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/octa-app/fengshui-backend/internal/domain/bazi"
)

const sampleTable = `
years:
  1990:
    lichun: 02-04
    jingzhe: 03-06
    qingming: 04-05
    lixia: 05-16
    mangzhong: 06-06
    xiaoshu: 07-07
    liqiu: 08-08
    bailu: 09-08
    hanlu: 10-08
    lidong: 11-08
    daxue: 12-07
    xiaohan: 01-06
`

func TestParseFeedsCalculator(t *testing.T) {
	src, err := Parse([]byte(sampleTable))
	require.NoError(t, err)

	calc := bazi.NewCalculator(bazi.WithTermSource(src))
	chart, err := calc.Compute(bazi.BirthInput{Year: 1990, Month: 5, Day: 15})
	require.NoError(t, err)
	// The table pushes Lixia past May 15, so the month stays in the
	// previous solar month.
	require.Equal(t, "庚", chart.MonthPillar.Stem)
	require.Equal(t, "辰", chart.MonthPillar.Branch)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "terms.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTable), 0o644))

	src, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, src)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestParseRejectsIncompleteYear(t *testing.T) {
	// A typo'd year must fail loudly instead of silently degrading to the
	// approximation.
	_, err := Parse([]byte("years:\n  1990:\n    lichun: 02-04\n    jingzhe: 03-06\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "year 1990")
	require.Contains(t, err.Error(), "missing terms")
	require.Contains(t, err.Error(), "qingming")
	require.Contains(t, err.Error(), "xiaohan")
	require.NotContains(t, err.Error(), "jingzhe")
}

func TestParseRejectsBadContent(t *testing.T) {
	_, err := Parse([]byte("years:\n  1990:\n    nosuchterm: 02-04\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown term")

	_, err = Parse([]byte("years:\n  1990:\n    lichun: fourth\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad date")

	_, err = Parse([]byte("years:\n  1990:\n    lichun: 13-04\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "out of range")

	_, err = Parse([]byte("years: ["))
	require.Error(t, err)
}
