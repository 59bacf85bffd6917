package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/octa-app/fengshui-backend/internal/domain/bazi"
	"github.com/octa-app/fengshui-backend/internal/domain/profile"
)

func TestBuildAnalysisPromptSkipsAbsentHourPillar(t *testing.T) {
	chart, err := bazi.NewCalculator().Compute(bazi.BirthInput{Year: 1990, Month: 5, Day: 15})
	require.NoError(t, err)

	p := profile.Profile{Chart: chart, LuckyElements: []string{bazi.ElementWood}}
	prompt := buildAnalysisPrompt(p, LanguageZH)

	require.Contains(t, prompt, "庚午 辛巳 庚辰")
	require.NotContains(t, prompt, "庚午 辛巳 庚辰 ")
	require.Contains(t, prompt, "44.22")
}

func TestSuggestedItemsFollowLuckyElements(t *testing.T) {
	items := suggestedItems([]string{bazi.ElementWood, bazi.ElementWater})
	require.Contains(t, items, "植物")
	require.Contains(t, items, "水晶")
	require.Empty(t, suggestedItems(nil))
}
