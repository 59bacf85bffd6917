package analysis

import (
	"time"

	"github.com/octa-app/fengshui-backend/pkg/metrics"
)

// Languages the analysis prompt set supports.
const (
	LanguageZH = "zh"
	LanguageEN = "en"
)

// SceneType selects the analysis pipeline for a submission.
type SceneType string

// Supported scene types.
const (
	SceneWorkspace   SceneType = "workspace"
	SceneFloorplan   SceneType = "floorplan"
	SceneLookaround8 SceneType = "lookaround8"
)

// lookaroundImageCount is the fixed number of direction photos a lookaround8
// submission must carry, one per compass direction clockwise from north.
const lookaroundImageCount = 8

// Config drives the analysis domain.
type Config struct {
	Model           string
	Temperature     float32
	DefaultLanguage string
}

// Request asks for a feng-shui reading of one or more photos. SceneType
// defaults to workspace. Single-image scenes use ImageURL; lookaround8 takes
// its eight direction photos through ImageURLs.
type Request struct {
	ProfileID string    `json:"profileId"`
	SceneType SceneType `json:"sceneType,omitempty"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	ImageURLs []string  `json:"imageUrls,omitempty"`
	Language  string    `json:"language,omitempty"`
}

// DeskPosition grades the desk placement within the room.
type DeskPosition struct {
	Score       int      `json:"score"`
	Description string   `json:"description"`
	Issues      []string `json:"issues,omitempty"`
}

// ElementBalance compares the environment's five elements with the chart.
type ElementBalance struct {
	CurrentElements    map[string]float64 `json:"current_elements"`
	CompatibilityScore int                `json:"compatibility_score"`
	MissingElements    []string           `json:"missing_elements,omitempty"`
	ExcessElements     []string           `json:"excess_elements,omitempty"`
}

// EnergyFlow grades circulation, light and sha-qi issues.
type EnergyFlow struct {
	Score           int      `json:"score"`
	PositiveAspects []string `json:"positive_aspects,omitempty"`
	NegativeAspects []string `json:"negative_aspects,omitempty"`
}

// Recommendation is one actionable improvement.
type Recommendation struct {
	Category        string `json:"category"`
	Priority        string `json:"priority"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	ExpectedBenefit string `json:"expected_benefit,omitempty"`
}

// modelReply is the strict JSON the vision model must return.
type modelReply struct {
	OverallScore    int              `json:"overall_score"`
	DeskPosition    DeskPosition     `json:"desk_position"`
	ElementBalance  ElementBalance   `json:"element_balance"`
	EnergyFlow      EnergyFlow       `json:"energy_flow"`
	Recommendations []Recommendation `json:"recommendations"`
	Summary         string           `json:"summary"`
}

// Report is a completed analysis.
type Report struct {
	ID        string    `json:"reportId"`
	UserID    string    `json:"-"`
	ProfileID string    `json:"profileId"`
	SceneType SceneType `json:"sceneType"`
	Language  string    `json:"language"`

	OverallScore    int              `json:"overallScore"`
	Summary         string           `json:"summary"`
	KeyFindings     []string         `json:"keyFindings,omitempty"`
	DeskPosition    DeskPosition     `json:"deskPosition"`
	ElementBalance  ElementBalance   `json:"elementBalance"`
	EnergyFlow      EnergyFlow       `json:"energyFlow"`
	Recommendations []Recommendation `json:"recommendations"`

	LuckyElements   []string `json:"luckyElements"`
	UnluckyElements []string `json:"unluckyElements"`
	SuggestedColors []string `json:"suggestedColors"`
	SuggestedItems  []string `json:"suggestedItems"`

	TokenUsage metrics.TokenUsage `json:"tokenUsage"`
	CreatedAt  time.Time          `json:"createdAt"`
	DurationMs int64              `json:"durationMs"`
}
