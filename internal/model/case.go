package model

// CaseRecord is one entry in the static case library: a financial situation
// that was resolved, the intervention applied, and the claimed FRI improvement.
// This is a pure domain model with no database-specific dependencies or tags.
// The Improvement field stays a free-text string; the library never parses it.
type CaseRecord struct {
	Description string `json:"description"`
	Solution    string `json:"solution"`
	Improvement string `json:"improvement"`
	Category    string `json:"category"`
}

// ScoredCase is a case paired with a retrieval relevance score.
type ScoredCase struct {
	Case  CaseRecord `json:"case"`
	Score int        `json:"score"`
}
