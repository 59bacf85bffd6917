package bazi

// The canonical lowercase element names used across the API surface.
const (
	ElementWood  = "wood"
	ElementFire  = "fire"
	ElementEarth = "earth"
	ElementMetal = "metal"
	ElementWater = "water"
)

// Elements lists the five elements in the traditional generation order.
var Elements = []string{ElementWood, ElementFire, ElementEarth, ElementMetal, ElementWater}

// The ten heavenly stems and twelve earthly branches in cycle order.
var (
	stems    = []string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}
	branches = []string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}
)

var stemElement = map[string]string{
	"甲": ElementWood, "乙": ElementWood,
	"丙": ElementFire, "丁": ElementFire,
	"戊": ElementEarth, "己": ElementEarth,
	"庚": ElementMetal, "辛": ElementMetal,
	"壬": ElementWater, "癸": ElementWater,
}

var branchElement = map[string]string{
	"子": ElementWater, "丑": ElementEarth, "寅": ElementWood, "卯": ElementWood,
	"辰": ElementEarth, "巳": ElementFire, "午": ElementFire, "未": ElementEarth,
	"申": ElementMetal, "酉": ElementMetal, "戌": ElementEarth, "亥": ElementWater,
}

var stemIndex = buildIndex(stems)
var branchIndex = buildIndex(branches)

func buildIndex(symbols []string) map[string]int {
	idx := make(map[string]int, len(symbols))
	for i, s := range symbols {
		idx[s] = i
	}
	return idx
}

// yearStemToFirstMonthStem maps a year stem to the stem of the first solar
// month (the tiger month). Month stems for the remaining months follow in
// cycle order from this base.
var yearStemToFirstMonthStem = map[string]string{
	"甲": "丙", "己": "丙",
	"乙": "戊", "庚": "戊",
	"丙": "庚", "辛": "庚",
	"丁": "壬", "壬": "壬",
	"戊": "甲", "癸": "甲",
}

// hiddenStem is one concealed stem of a branch with its proportion. The
// proportions of a branch sum to 1.0.
type hiddenStem struct {
	stem       string
	proportion float64
}

// branchHidden lists the concealed stems of each branch (principal, middle
// and residual qi).
var branchHidden = map[string][]hiddenStem{
	"子": {{"癸", 1.0}},
	"丑": {{"己", 0.6}, {"癸", 0.2}, {"辛", 0.2}},
	"寅": {{"甲", 0.7}, {"丙", 0.2}, {"戊", 0.1}},
	"卯": {{"乙", 1.0}},
	"辰": {{"戊", 0.6}, {"乙", 0.2}, {"癸", 0.2}},
	"巳": {{"丙", 0.7}, {"戊", 0.2}, {"庚", 0.1}},
	"午": {{"丁", 0.7}, {"己", 0.3}},
	"未": {{"己", 0.6}, {"丁", 0.2}, {"乙", 0.2}},
	"申": {{"庚", 0.7}, {"壬", 0.2}, {"戊", 0.1}},
	"酉": {{"辛", 1.0}},
	"戌": {{"戊", 0.6}, {"辛", 0.2}, {"丁", 0.2}},
	"亥": {{"壬", 0.7}, {"甲", 0.3}},
}

// defaultSeasonalBoost is the calibrated baseline used when the seasonal
// table has no entry for a month branch or element.
const defaultSeasonalBoost = 0.4

// seasonalStrength gives the relative strength of each element under a given
// month branch. Values are empirically tuned calibration data.
var seasonalStrength = map[string]map[string]float64{
	"寅": {ElementWood: 1.0, ElementFire: 0.7, ElementWater: 0.4, ElementMetal: 0.2, ElementEarth: 0.3},
	"卯": {ElementWood: 1.0, ElementFire: 0.7, ElementWater: 0.4, ElementMetal: 0.2, ElementEarth: 0.3},
	"巳": {ElementFire: 1.0, ElementEarth: 0.7, ElementWood: 0.3, ElementMetal: 0.3, ElementWater: 0.2},
	"午": {ElementFire: 1.0, ElementEarth: 0.7, ElementWood: 0.3, ElementMetal: 0.3, ElementWater: 0.2},
	"申": {ElementMetal: 1.0, ElementWater: 0.7, ElementEarth: 0.4, ElementFire: 0.3, ElementWood: 0.2},
	"酉": {ElementMetal: 1.0, ElementWater: 0.7, ElementEarth: 0.4, ElementFire: 0.3, ElementWood: 0.2},
	"亥": {ElementWater: 1.0, ElementWood: 0.7, ElementMetal: 0.3, ElementEarth: 0.3, ElementFire: 0.2},
	"子": {ElementWater: 1.0, ElementWood: 0.7, ElementMetal: 0.3, ElementEarth: 0.3, ElementFire: 0.2},
	"辰": {ElementEarth: 1.0, ElementMetal: 0.7, ElementFire: 0.5, ElementWood: 0.4, ElementWater: 0.3},
	"戌": {ElementEarth: 1.0, ElementMetal: 0.7, ElementFire: 0.5, ElementWood: 0.4, ElementWater: 0.3},
	"丑": {ElementEarth: 1.0, ElementMetal: 0.7, ElementWater: 0.5, ElementWood: 0.3, ElementFire: 0.3},
	"未": {ElementEarth: 1.0, ElementFire: 0.7, ElementWood: 0.5, ElementMetal: 0.3, ElementWater: 0.3},
}

// elementRelations describes the generation/control cycle around one element.
type elementRelations struct {
	generates    string // element that generates this one
	leak         string // element this one generates (drains it)
	controls     string // element this one controls
	controlledBy string // element that controls this one
}

var elementCycle = map[string]elementRelations{
	ElementWood:  {generates: ElementWater, leak: ElementFire, controls: ElementEarth, controlledBy: ElementMetal},
	ElementFire:  {generates: ElementWood, leak: ElementEarth, controls: ElementMetal, controlledBy: ElementWater},
	ElementEarth: {generates: ElementFire, leak: ElementMetal, controls: ElementWater, controlledBy: ElementWood},
	ElementMetal: {generates: ElementEarth, leak: ElementWater, controls: ElementWood, controlledBy: ElementFire},
	ElementWater: {generates: ElementMetal, leak: ElementWood, controls: ElementFire, controlledBy: ElementEarth},
}

var elementDirections = map[string][]string{
	ElementWood:  {"east", "southeast"},
	ElementFire:  {"south"},
	ElementEarth: {"center", "northeast", "southwest"},
	ElementMetal: {"west", "northwest"},
	ElementWater: {"north"},
}

var elementColors = map[string][]string{
	ElementWood:  {"green", "cyan", "turquoise"},
	ElementFire:  {"red", "orange", "purple"},
	ElementEarth: {"yellow", "brown", "beige"},
	ElementMetal: {"white", "silver", "gold"},
	ElementWater: {"black", "blue", "gray"},
}

// StemElement returns the primary element of a heavenly stem, or "" for an
// unknown symbol.
func StemElement(stem string) string {
	return stemElement[stem]
}

// BranchElement returns the primary element of an earthly branch, or "" for
// an unknown symbol.
func BranchElement(branch string) string {
	return branchElement[branch]
}

func seasonalBoost(monthBranch, element string) float64 {
	if season, ok := seasonalStrength[monthBranch]; ok {
		if boost, ok := season[element]; ok {
			return boost
		}
	}
	return defaultSeasonalBoost
}
