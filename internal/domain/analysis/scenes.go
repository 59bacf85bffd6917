package analysis

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/octa-app/fengshui-backend/internal/domain/profile"
)

// Compass directions clockwise from north, the order lookaround8 photos are
// submitted in.
var lookaroundDirections = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

var directionNamesZH = map[string]string{
	"N": "北", "NE": "东北", "E": "东", "SE": "东南",
	"S": "南", "SW": "西南", "W": "西", "NW": "西北",
}

var directionNamesEN = map[string]string{
	"N": "North", "NE": "Northeast", "E": "East", "SE": "Southeast",
	"S": "South", "SW": "Southwest", "W": "West", "NW": "Northwest",
}

// directionElements maps each compass direction to its Ba Gua element.
var directionElements = map[string]string{
	"N":  "water",
	"NE": "earth",
	"E":  "wood",
	"SE": "wood",
	"S":  "fire",
	"SW": "earth",
	"W":  "metal",
	"NW": "metal",
}

// analyzeFloorplan produces a floorplan reading. The layout recognition model
// is not live yet, so the report carries the standing layout guidance and an
// overall score of zero until it is.
func (s *service) analyzeFloorplan(p profile.Profile, language string) Report {
	zh := language == LanguageZH

	summary := "户型分析功能正在开发中，敬请期待"
	findings := []string{
		"此功能将在后续版本实现",
		"将提供详细的户型风水分析",
		"包含房间布局、财位、文昌位分析",
	}
	if !zh {
		summary = "Floorplan analysis coming soon"
		findings = []string{
			"This feature arrives in a later release",
			"It will provide a detailed floorplan reading",
			"Covering room layout, wealth and study positions",
		}
	}

	recommendations := []Recommendation{
		{
			Category:    "layout",
			Priority:    "high",
			Title:       pick(zh, "主卧位置优化", "Master Bedroom Optimization"),
			Description: pick(zh, "建议将主卧设置在户型的吉位", "Place the master bedroom in an auspicious position"),
		},
		{
			Category:    "wealth",
			Priority:    "high",
			Title:       pick(zh, "财位布置", "Wealth Position Setup"),
			Description: pick(zh, "在财位摆放聚财装饰", "Enhance the wealth position with suitable decor"),
		},
		{
			Category:    "energy",
			Priority:    "medium",
			Title:       pick(zh, "化解穿堂煞", "Resolve Energy Rush"),
			Description: pick(zh, "门窗对冲需要化解", "Neutralize direct door-window alignment"),
		},
	}

	return s.newSceneReport(p, SceneFloorplan, language, summary, findings, recommendations)
}

// analyzeLookaround produces an eight-direction environment reading from one
// photo per compass direction. Per-direction recognition is not live yet; the
// directional frame and Ba Gua element mapping are.
func (s *service) analyzeLookaround(p profile.Profile, language string) Report {
	zh := language == LanguageZH

	summary := "八方环扫分析功能正在开发中，敬请期待"
	if !zh {
		summary = "Lookaround8 analysis coming soon"
	}

	findings := make([]string, 0, len(lookaroundDirections))
	for _, dir := range lookaroundDirections {
		if zh {
			findings = append(findings, fmt.Sprintf("%s方向(%s): 环境特征分析中", directionNamesZH[dir], directionElements[dir]))
		} else {
			findings = append(findings, fmt.Sprintf("%s (%s): environmental analysis pending", directionNamesEN[dir], directionElements[dir]))
		}
	}

	recommendations := []Recommendation{
		{
			Category:    "direction",
			Priority:    "high",
			Title:       pick(zh, "最佳朝向建议", "Optimal Facing Direction"),
			Description: pick(zh, "根据八方环境分析推荐最佳朝向", "Recommended facing based on the 8-direction survey"),
		},
		{
			Category:    "element",
			Priority:    "high",
			Title:       pick(zh, "五行平衡调整", "Five Elements Balance"),
			Description: pick(zh, "根据环境五行分布调整室内布置", "Adjust the interior against the environmental element spread"),
		},
		{
			Category:    "environmental",
			Priority:    "medium",
			Title:       pick(zh, "环境化煞建议", "Environmental Remedies"),
			Description: pick(zh, "针对不利环境特征提供化解方案", "Remedies for unfavorable environmental features"),
		},
	}

	return s.newSceneReport(p, SceneLookaround8, language, summary, findings, recommendations)
}

func (s *service) newSceneReport(p profile.Profile, scene SceneType, language, summary string, findings []string, recs []Recommendation) Report {
	return Report{
		ID:        "result_" + uuid.NewString(),
		ProfileID: p.ID,
		SceneType: scene,
		Language:  language,

		Summary:         summary,
		KeyFindings:     findings,
		Recommendations: recs,

		LuckyElements:   p.LuckyElements,
		UnluckyElements: p.UnluckyElements,

		CreatedAt: time.Now().UTC(),
	}
}

func pick(zh bool, zhText, enText string) string {
	if zh {
		return zhText
	}
	return enText
}
