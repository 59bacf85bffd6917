package profile

import (
	"time"

	"github.com/octa-app/fengshui-backend/internal/domain/bazi"
)

// Gender values accepted on profile creation.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// CreateRequest carries the payload for a new natal profile. BirthDate uses
// the 2006-01-02 layout; BirthTime, when present, uses 15:04.
type CreateRequest struct {
	Name          string `json:"name,omitempty"`
	Gender        string `json:"gender"`
	BirthDate     string `json:"birthDate"`
	BirthTime     string `json:"birthTime,omitempty"`
	BirthLocation string `json:"birthLocation"`
	Timezone      string `json:"timezone,omitempty"`
}

// UpdateRequest carries the mutable profile fields. Nil means unchanged.
type UpdateRequest struct {
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// Profile is a persisted natal chart with its derived readings.
type Profile struct {
	ID            string  `json:"profileId"`
	UserID        string  `json:"-"`
	Name          string  `json:"name,omitempty"`
	Gender        string  `json:"gender"`
	BirthDate     string  `json:"birthDate"`
	BirthTime     string  `json:"birthTime,omitempty"`
	BirthLocation string  `json:"birthLocation"`
	Longitude     float64 `json:"longitude"`

	Chart           bazi.Chart              `json:"chart"`
	Strength        bazi.StrengthAssessment `json:"strength"`
	LuckyElements   []string                `json:"luckyElements"`
	UnluckyElements []string                `json:"unluckyElements"`
	LuckyDirections []string                `json:"luckyDirections"`
	LuckyColors     []string                `json:"luckyColors"`

	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
