package bazi

// monthPillar locates the date within the solar year that starts at the
// Start-of-Spring boundary and derives the month stem/branch pair.
func (c *Calculator) monthPillar(date civilDate, yearStem string) Pillar {
	// Pick the solar year the date belongs to.
	base := date.year
	if date.before(c.terms.Dates(date.year)[TermLichun]) {
		base--
	}
	current := c.terms.Dates(base)
	next := c.terms.Dates(base + 1)

	// Thirteen ordered boundaries spanning Lichun to the next Lichun.
	boundaries := []civilDate{
		current[TermLichun], current[TermJingzhe], current[TermQingming],
		current[TermLixia], current[TermMangzhong], current[TermXiaoshu],
		current[TermLiqiu], current[TermBailu], current[TermHanlu],
		current[TermLidong], current[TermDaxue], next[TermXiaohan],
		next[TermLichun],
	}

	monthIdx := 0
	for i := 0; i < 12; i++ {
		if !date.before(boundaries[i]) && date.before(boundaries[i+1]) {
			monthIdx = i
			break
		}
	}

	branch := branches[(2+monthIdx)%12]

	// The stem of the first solar month follows from the year stem; later
	// months continue the stem cycle.
	base0, ok := yearStemToFirstMonthStem[yearStem]
	if !ok {
		base0 = stems[0]
	}
	stem := stems[(stemIndex[base0]+monthIdx)%10]

	return Pillar{Stem: stem, Branch: branch, Element: stemElement[stem]}
}
