package model

// FRIComponent is one weighted component of the Financial Resilience Index.
type FRIComponent struct {
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
}

// FRIResult is a Financial Resilience Index snapshot. TotalScore is the
// weighted sum of the components, on a 0-100 scale.
type FRIResult struct {
	TotalScore     float64        `json:"total_score"`
	Components     []FRIComponent `json:"components"`
	Interpretation string         `json:"interpretation"`
	Assets         float64        `json:"assets"`
}
