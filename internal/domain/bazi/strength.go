package bazi

// Root and stem interaction weights for the day master evaluation. All
// values are calibration data carried over from the production calculator.
const (
	seasonFactor = 3.0

	rootSameElement = 1.0
	rootGenerating  = 0.8

	helpSame         = 1.0
	helpGenerating   = 0.8
	penaltyLeak      = -0.7
	penaltyControls  = -0.9
	penaltyOvercomes = -1.1
)

// EvaluateStrength scores the day master of a chart and classifies it as
// strong or weak. The score combines seasonal command, rooting in the branch
// hidden stems and support or drain from the visible stems.
func EvaluateStrength(chart Chart) StrengthAssessment {
	dayMasterElement := stemElement[chart.DayMaster]
	cycle := elementCycle[dayMasterElement]
	monthBranch := chart.MonthPillar.Branch

	seasonScore := seasonalBoost(monthBranch, dayMasterElement) * seasonFactor

	rooting := func(branch string, posWeight float64) float64 {
		score := 0.0
		for _, h := range branchHidden[branch] {
			switch stemElement[h.stem] {
			case dayMasterElement:
				score += rootSameElement * h.proportion * posWeight
			case cycle.generates:
				score += rootGenerating * h.proportion * posWeight
			}
		}
		return score
	}

	rootScore := rooting(chart.DayPillar.Branch, 2.0) +
		rooting(chart.MonthPillar.Branch, 1.5) +
		rooting(chart.YearPillar.Branch, 1.0)
	if chart.HourPillar.Branch != "" {
		rootScore += rooting(chart.HourPillar.Branch, 1.0)
	}

	stemEffect := func(stem string, posWeight float64) float64 {
		if stem == "" {
			return 0
		}
		switch stemElement[stem] {
		case dayMasterElement:
			return helpSame * posWeight
		case cycle.generates:
			return helpGenerating * posWeight
		case cycle.leak:
			return penaltyLeak * posWeight
		case cycle.controls:
			return penaltyControls * posWeight
		case cycle.controlledBy:
			return penaltyOvercomes * posWeight
		}
		return 0
	}

	helpPenalty := stemEffect(chart.MonthPillar.Stem, 1.5) +
		stemEffect(chart.DayPillar.Stem, 1.2) +
		stemEffect(chart.YearPillar.Stem, 1.0) +
		stemEffect(chart.HourPillar.Stem, 1.0)

	raw := seasonScore + rootScore + helpPenalty
	score := 50.0 + raw*6.0
	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}

	label := StrengthWeak
	if score >= strongThreshold {
		label = StrengthStrong
	}
	return StrengthAssessment{Score: round1(score), Label: label}
}
