package bazi

// BirthInput carries the caller supplied birth data. Year, month and day are
// required proleptic Gregorian components. Hour, minute, time zone and
// longitude are optional; the hour pillar is only computed when both Hour and
// Longitude are set.
type BirthInput struct {
	Year  int
	Month int
	Day   int

	Hour   *int
	Minute *int
	// Timezone is an IANA identifier such as "Asia/Shanghai". When empty the
	// effective zone is estimated from the longitude.
	Timezone string
	// Longitude in decimal degrees, east positive.
	Longitude *float64
}

// Pillar is one stem/branch pair of a chart. An absent hour pillar has all
// three fields empty.
type Pillar struct {
	Stem    string `json:"heavenly_stem"`
	Branch  string `json:"earthly_branch"`
	Element string `json:"element"`
}

// IsZero reports whether the pillar is absent.
func (p Pillar) IsZero() bool {
	return p.Stem == "" && p.Branch == "" && p.Element == ""
}

// Distribution holds the five element percentages. Each value lies in
// [0,100]; because the values are rounded independently their sum is close
// to, but not necessarily exactly, 100.
type Distribution struct {
	Wood  float64 `json:"wood"`
	Fire  float64 `json:"fire"`
	Earth float64 `json:"earth"`
	Metal float64 `json:"metal"`
	Water float64 `json:"water"`
}

// Of returns the percentage for a canonical element name.
func (d Distribution) Of(element string) float64 {
	switch element {
	case ElementWood:
		return d.Wood
	case ElementFire:
		return d.Fire
	case ElementEarth:
		return d.Earth
	case ElementMetal:
		return d.Metal
	case ElementWater:
		return d.Water
	}
	return 0
}

// Chart is a complete four pillars natal chart.
type Chart struct {
	YearPillar  Pillar `json:"year_pillar"`
	MonthPillar Pillar `json:"month_pillar"`
	DayPillar   Pillar `json:"day_pillar"`
	// HourPillar is empty when birth time or longitude was not provided.
	HourPillar Pillar `json:"hour_pillar"`
	// DayMaster is the day pillar's heavenly stem.
	DayMaster string       `json:"day_master"`
	Elements  Distribution `json:"elements"`
}

// Strength labels produced by the day master evaluation. There are exactly
// two terminal states.
const (
	StrengthStrong = "strong"
	StrengthWeak   = "weak"
)

// strongThreshold is the inclusive lower bound of the strong classification.
const strongThreshold = 55.0

// StrengthAssessment is the scored day master classification.
type StrengthAssessment struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// LuckyProfile lists favorable and unfavorable elements, deduplicated in
// first-seen order.
type LuckyProfile struct {
	Favorable   []string `json:"favorable"`
	Unfavorable []string `json:"unfavorable"`
}
