package bazi

// Term identifies one of the twelve major solar terms that delimit the solar
// months.
type Term int

const (
	TermLichun Term = iota // Start of Spring
	TermJingzhe
	TermQingming
	TermLixia
	TermMangzhong
	TermXiaoshu
	TermLiqiu
	TermBailu
	TermHanlu
	TermLidong
	TermDaxue
	TermXiaohan
)

var termNames = []string{
	"lichun", "jingzhe", "qingming", "lixia", "mangzhong", "xiaoshu",
	"liqiu", "bailu", "hanlu", "lidong", "daxue", "xiaohan",
}

func (t Term) String() string {
	if t < 0 || int(t) >= len(termNames) {
		return "unknown"
	}
	return termNames[t]
}

// ParseTerm resolves a lowercase term name. The second result is false for
// unknown names.
func ParseTerm(name string) (Term, bool) {
	for i, n := range termNames {
		if n == name {
			return Term(i), true
		}
	}
	return 0, false
}

// termCalibration holds the approximation constants of one term: the base
// coefficient, a per-term day offset and the Gregorian month the term falls
// in. The values are calibration data inherited from the production
// calculator and are deliberately not corrected.
type termCalibration struct {
	c      float64
	offset int
	month  int
}

var termCalibrations = [...]termCalibration{
	TermLichun:    {4.6295, -1, 2},
	TermJingzhe:   {6.3826, 3, 3},
	TermQingming:  {5.59, 15, 4},
	TermLixia:     {6.318, 7, 5},
	TermMangzhong: {6.5, 7, 6},
	TermXiaoshu:   {7.928, 8, 7},
	TermLiqiu:     {8.35, 8, 8},
	TermBailu:     {8.44, 8, 9},
	TermHanlu:     {9.098, 9, 10},
	TermLidong:    {8.218, 7, 11},
	TermDaxue:     {7.9, 7, 12},
	TermXiaohan:   {6.11, 5, 1},
}

// TermTable maps the twelve major terms of one year to their dates.
type TermTable map[Term]civilDate

// TermDate is the exported shape used to inject precomputed term dates.
type TermDate struct {
	Term  Term
	Month int
	Day   int
}

// TermSource yields the twelve major term dates of a year. Implementations
// must be pure and safe for concurrent use.
type TermSource interface {
	Dates(year int) TermTable
}

// approxTermSource estimates term dates with the linear approximation
//
//	day = floor(C + 0.2422*(year-1900) - floor((year-1900)/4)) + offset
//
// Accuracy near boundaries is about ±1 day; callers needing ephemeris
// precision supply a TableTermSource instead.
type approxTermSource struct{}

func (approxTermSource) Dates(year int) TermTable {
	table := make(TermTable, len(termCalibrations))
	y := year - 1900
	for term, cal := range termCalibrations {
		day := int(cal.c+0.2422*float64(y)-float64(floorDiv(y, 4))) + cal.offset
		table[Term(term)] = civilDate{year: year, month: cal.month, day: day}
	}
	return table
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// TableTermSource serves precomputed term dates verbatim and falls back to
// the approximation for years the table does not cover. The table is read
// only after construction.
type TableTermSource struct {
	years    map[int]TermTable
	fallback TermSource
}

// NewTableTermSource builds a source from per-year precomputed dates.
func NewTableTermSource(years map[int][]TermDate) *TableTermSource {
	src := &TableTermSource{
		years:    make(map[int]TermTable, len(years)),
		fallback: approxTermSource{},
	}
	for year, dates := range years {
		table := make(TermTable, len(dates))
		for _, d := range dates {
			table[d.Term] = civilDate{year: year, month: d.Month, day: d.Day}
		}
		src.years[year] = table
	}
	return src
}

func (s *TableTermSource) Dates(year int) TermTable {
	if table, ok := s.years[year]; ok && len(table) == len(termNames) {
		return table
	}
	return s.fallback.Dates(year)
}
