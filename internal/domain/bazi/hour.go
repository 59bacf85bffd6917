package bazi

// hourBranch maps a true solar time of day to one of the twelve two-hour
// branch slots. The rat branch 子 wraps midnight, spanning 23:00 to 01:00;
// the others cover contiguous two-hour windows on odd hour boundaries.
func hourBranch(hour, minute int) string {
	t := hour*60 + minute
	if t >= 23*60 || t < 60 {
		return branches[0]
	}
	return branches[((t+60)/120)%12]
}

// hourPillar derives the hour pillar from the true solar time of day and the
// day stem using the traditional paired stem rule.
func hourPillar(dayStem string, hour, minute int) Pillar {
	branch := hourBranch(hour, minute)
	stem := stems[(stemIndex[dayStem]*2+branchIndex[branch])%10]
	return Pillar{Stem: stem, Branch: branch, Element: stemElement[stem]}
}
