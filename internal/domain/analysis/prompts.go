package analysis

import (
	"fmt"
	"strings"

	"github.com/octa-app/fengshui-backend/internal/domain/bazi"
	"github.com/octa-app/fengshui-backend/internal/domain/profile"
)

const systemPromptZH = `你是一位专业的风水大师，精通传统风水学和现代空间设计。
你的任务是分析用户的工位照片，并结合其八字信息提供个性化的风水建议。

分析原则：
1. 结合传统风水理论与现代办公环境
2. 根据用户的八字五行喜忌给出针对性建议
3. 建议要实用、可执行，避免迷信色彩
4. 注重空间的能量流动和使用者的舒适度

请以JSON格式返回分析结果。`

const systemPromptEN = `You are a professional feng shui master versed in both classical
feng shui and modern workspace design. Analyze the user's workspace photo in
the light of their Four Pillars chart and give personalized, practical advice.

Principles:
1. Combine classical feng shui theory with the realities of a modern office
2. Tailor advice to the user's favorable and unfavorable elements
3. Keep every suggestion actionable and free of superstition
4. Pay attention to energy flow and the occupant's comfort

Return the analysis strictly as JSON.`

const analysisTemplateZH = `请分析这张工位照片的风水情况。

用户信息：
- 八字：%s
- 日主：%s
- 五行分布：木%.2f%% 火%.2f%% 土%.2f%% 金%.2f%% 水%.2f%%
- 喜用神：%s
- 忌神：%s

分析要点：
1. 办公桌位置评估（靠山、门窗朝向、横梁压顶）
2. 五行元素平衡（现有分布、与八字的匹配度、需补充或减少的元素）
3. 能量流动分析（气流、煞气、光线）
4. 改善建议（摆放、颜色、方位）

请返回JSON格式：
{
    "overall_score": 0-100的整数,
    "desk_position": {"score": 0-100, "description": "描述", "issues": ["问题"]},
    "element_balance": {"current_elements": {"wood": 0, "fire": 0, "earth": 0, "metal": 0, "water": 0}, "compatibility_score": 0-100, "missing_elements": [], "excess_elements": []},
    "energy_flow": {"score": 0-100, "positive_aspects": [], "negative_aspects": []},
    "recommendations": [{"category": "placement/color/decoration/direction", "priority": "high/medium/low", "title": "建议标题", "description": "详细说明", "expected_benefit": "预期效果"}],
    "summary": "总体评价（100字以内）"
}`

const analysisTemplateEN = `Analyze the feng shui of this workspace photo.

User information:
- Four Pillars: %s
- Day master: %s
- Element distribution: wood %.2f%% fire %.2f%% earth %.2f%% metal %.2f%% water %.2f%%
- Favorable elements: %s
- Unfavorable elements: %s

Focus on:
1. Desk placement (back support, door/window facing, overhead beams)
2. Five element balance (current mix, fit with the chart, elements to add or reduce)
3. Energy flow (circulation, sha qi, lighting)
4. Improvements (placement, colors, orientation)

Return JSON:
{
    "overall_score": integer 0-100,
    "desk_position": {"score": 0-100, "description": "...", "issues": ["..."]},
    "element_balance": {"current_elements": {"wood": 0, "fire": 0, "earth": 0, "metal": 0, "water": 0}, "compatibility_score": 0-100, "missing_elements": [], "excess_elements": []},
    "energy_flow": {"score": 0-100, "positive_aspects": [], "negative_aspects": []},
    "recommendations": [{"category": "placement/color/decoration/direction", "priority": "high/medium/low", "title": "...", "description": "...", "expected_benefit": "..."}],
    "summary": "overall verdict (under 100 words)"
}`

// elementItems suggests physical objects that strengthen an element.
var elementItems = map[string][]string{
	bazi.ElementWood:  {"植物", "木质装饰", "绿色画作"},
	bazi.ElementFire:  {"台灯", "红色装饰", "三角形摆件"},
	bazi.ElementEarth: {"陶瓷", "石头", "方形物品"},
	bazi.ElementMetal: {"金属摆件", "圆形装饰", "白色物品"},
	bazi.ElementWater: {"水晶", "鱼缸", "流线型装饰"},
}

func systemPrompt(language string) string {
	if language == LanguageEN {
		return systemPromptEN
	}
	return systemPromptZH
}

// buildAnalysisPrompt renders the user prompt for one profile. The hour
// pillar is skipped from the pillar string when absent.
func buildAnalysisPrompt(p profile.Profile, language string) string {
	template := analysisTemplateZH
	if language == LanguageEN {
		template = analysisTemplateEN
	}

	pillars := []string{
		p.Chart.YearPillar.Stem + p.Chart.YearPillar.Branch,
		p.Chart.MonthPillar.Stem + p.Chart.MonthPillar.Branch,
		p.Chart.DayPillar.Stem + p.Chart.DayPillar.Branch,
	}
	if !p.Chart.HourPillar.IsZero() {
		pillars = append(pillars, p.Chart.HourPillar.Stem+p.Chart.HourPillar.Branch)
	}

	e := p.Chart.Elements
	return fmt.Sprintf(template,
		strings.Join(pillars, " "),
		p.Chart.DayMaster,
		e.Wood, e.Fire, e.Earth, e.Metal, e.Water,
		strings.Join(p.LuckyElements, ", "),
		strings.Join(p.UnluckyElements, ", "),
	)
}

func suggestedItems(luckyElements []string) []string {
	var items []string
	for _, e := range luckyElements {
		items = append(items, elementItems[e]...)
	}
	return items
}
