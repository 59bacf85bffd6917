package bazi

// civilDate is a proleptic Gregorian calendar date used for boundary
// comparisons inside the calculator.
type civilDate struct {
	year  int
	month int
	day   int
}

func (d civilDate) before(other civilDate) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

// julianDayNumber converts a proleptic Gregorian date to its Julian Day
// Number using the standard integer formula.
func julianDayNumber(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// referenceYear 1984 opens a sexagenary cycle: stem index 0, branch index 0.
const referenceYear = 1984

// dayAnchorJDN is the Julian Day Number of 1984-02-02. The +2 offset applied
// on top of it is calibration carried over from the production calculator;
// under it the cycle-opening day lands on 1984-01-31.
var dayAnchorJDN = julianDayNumber(1984, 2, 2)

const dayCycleOffset = 2

func pillarFromIndex(idx60 int) Pillar {
	stem := stems[idx60%10]
	return Pillar{
		Stem:    stem,
		Branch:  branches[idx60%12],
		Element: stemElement[stem],
	}
}

// yearPillar determines the year pillar of a date. Years switch at the
// Start-of-Spring boundary, not at January 1st.
func (c *Calculator) yearPillar(date civilDate) Pillar {
	lichun := c.terms.Dates(date.year)[TermLichun]
	adjusted := date.year
	if date.before(lichun) {
		adjusted--
	}
	idx60 := ((adjusted-referenceYear)%60 + 60) % 60
	return pillarFromIndex(idx60)
}

// dayPillar derives the day pillar from the 60-day cycle anchored near
// 1984-02-02.
func dayPillar(date civilDate) Pillar {
	delta := julianDayNumber(date.year, date.month, date.day) - dayAnchorJDN + dayCycleOffset
	idx60 := (delta%60 + 60) % 60
	return pillarFromIndex(idx60)
}
