package bazi

// AnalyzeLuckyElements derives favorable and unfavorable elements from the
// day master strength. A strong day master favors what it controls and what
// drains it; a weak one favors itself and what generates it.
func AnalyzeLuckyElements(chart Chart, strength StrengthAssessment) LuckyProfile {
	dayMasterElement := stemElement[chart.DayMaster]
	cycle := elementCycle[dayMasterElement]

	var favorable, unfavorable []string
	if strength.Label == StrengthStrong {
		favorable = []string{cycle.controls, cycle.leak}
		unfavorable = []string{dayMasterElement, cycle.generates}
	} else {
		favorable = []string{dayMasterElement, cycle.generates}
		unfavorable = []string{cycle.leak, cycle.controlledBy}
	}

	return LuckyProfile{
		Favorable:   dedupKeepOrder(favorable),
		Unfavorable: dedupKeepOrder(unfavorable),
	}
}

// LuckyDirections maps favorable elements to compass directions, merged in
// element order without duplicates.
func LuckyDirections(elements []string) []string {
	var out []string
	for _, e := range elements {
		out = append(out, elementDirections[e]...)
	}
	return dedupKeepOrder(out)
}

// LuckyColors maps favorable elements to their representative colors.
func LuckyColors(elements []string) []string {
	var out []string
	for _, e := range elements {
		out = append(out, elementColors[e]...)
	}
	return dedupKeepOrder(out)
}

func dedupKeepOrder(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
