package model

// StressAnalysis is the outcome of lexicon-based stress detection on a
// customer message. Scores are in [0,1].
type StressAnalysis struct {
	Level            string   `json:"stress_level"`
	Urgency          string   `json:"urgency"`
	CombinedScore    float64  `json:"combined_score"`
	KeywordScore     float64  `json:"keyword_score"`
	PhraseScore      float64  `json:"phrase_score"`
	DetectedKeywords []string `json:"detected_keywords"`
	DetectedPhrases  []string `json:"detected_phrases"`
}
