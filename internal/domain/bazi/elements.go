package bazi

import "math"

// Branch position weights for the distribution scoring. The month branch
// commands the season and weighs the most.
const (
	stemWeight        = 1.0
	yearBranchWeight  = 1.0
	monthBranchWeight = 1.5
	dayBranchWeight   = 1.2
	hourBranchWeight  = 1.0
)

// scoreDistribution accumulates weighted element scores from the visible
// stems and the branches' hidden stems, modulated by the seasonal strength of
// the month branch, and normalizes the result to percentages.
func scoreDistribution(chart Chart) Distribution {
	scores := map[string]float64{
		ElementWood: 0, ElementFire: 0, ElementEarth: 0, ElementMetal: 0, ElementWater: 0,
	}
	monthBranch := chart.MonthPillar.Branch

	addStem := func(stem string) {
		if stem == "" {
			return
		}
		if e := stemElement[stem]; e != "" {
			scores[e] += stemWeight
		}
	}

	addBranch := func(branch string, posWeight float64) {
		if branch == "" {
			return
		}
		hidden := branchHidden[branch]
		if len(hidden) == 0 {
			// No hidden stem data: fall back to the branch's primary element.
			if e := branchElement[branch]; e != "" {
				scores[e] += posWeight
			}
			return
		}
		for _, h := range hidden {
			e := stemElement[h.stem]
			if e == "" {
				continue
			}
			boost := seasonalBoost(monthBranch, e)
			scores[e] += posWeight * h.proportion * (0.8 + 0.4*boost)
		}
	}

	addStem(chart.YearPillar.Stem)
	addStem(chart.MonthPillar.Stem)
	addStem(chart.DayPillar.Stem)
	addStem(chart.HourPillar.Stem)

	addBranch(chart.YearPillar.Branch, yearBranchWeight)
	addBranch(chart.MonthPillar.Branch, monthBranchWeight)
	addBranch(chart.DayPillar.Branch, dayBranchWeight)
	addBranch(chart.HourPillar.Branch, hourBranchWeight)

	total := 0.0
	for _, v := range scores {
		total += v
	}
	if total == 0 {
		total = 1
	}

	pct := func(element string) float64 {
		return round2(scores[element] / total * 100)
	}
	return Distribution{
		Wood:  pct(ElementWood),
		Fire:  pct(ElementFire),
		Earth: pct(ElementEarth),
		Metal: pct(ElementMetal),
		Water: pct(ElementWater),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
