package model

// CoachingResponse is the full outcome of one coaching turn: the reply text
// plus the analysis that grounded it.
type CoachingResponse struct {
	CustomerID string         `json:"customer_id"`
	Reply      string         `json:"reply"`
	FRI        FRIResult      `json:"fri"`
	Stress     StressAnalysis `json:"stress"`
	CitedCases []ScoredCase   `json:"cited_cases"`
	Generated  bool           `json:"generated"` // false when the deterministic fallback coach produced the reply
}
