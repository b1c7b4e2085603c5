package casebase

import (
	"sort"
	"strings"

	"fricoach/internal/model"
)

// Scoring weights. Trigger terms that name a case's core topic outrank
// incidental word overlap with the case text.
const (
	triggerWeight    = 5
	occupationWeight = 2
	textWeight       = 1
)

// categoryTriggers maps each library category to message terms that signal it.
var categoryTriggers = map[string][]string{
	"income_volatility":      {"irregular", "fluctuate", "fluctuating", "unpredictable income", "freelance", "freelancer", "variable income", "feast", "famine"},
	"buffer_building":        {"emergency fund", "savings", "buffer", "unexpected", "rainy day", "cushion"},
	"debt_management":        {"debt", "credit card", "loan", "owe", "interest", "repayment"},
	"expense_control":        {"overspending", "budget", "budgeting", "spending", "expenses", "impulse"},
	"psychological":          {"anxiety", "anxious", "worried", "worry", "stress", "stressed", "afraid", "fear"},
	"income_diversification": {"side hustle", "gig", "multiple jobs", "second job", "income streams", "tax"},
}

// Retriever matches customer messages against the case library.
type Retriever struct {
	cases []model.CaseRecord
}

// NewRetriever builds a retriever over the fixed library.
func NewRetriever() *Retriever {
	return &Retriever{cases: Library()}
}

// TopMatches scores every case against the message and occupation hint and
// returns at most k cases with a positive score, best first. Ties keep
// library order, so results are deterministic.
func (r *Retriever) TopMatches(message, occupation string, k int) []model.ScoredCase {
	if k <= 0 {
		return nil
	}
	msg := strings.ToLower(message)
	occ := strings.ToLower(occupation)

	scored := make([]model.ScoredCase, 0, len(r.cases))
	for _, c := range r.cases {
		score := 0
		for _, term := range categoryTriggers[c.Category] {
			if strings.Contains(msg, term) {
				score += triggerWeight
			}
			if occ != "" && strings.Contains(occ, term) {
				score += occupationWeight
			}
		}
		score += overlapScore(msg, c.Description) + overlapScore(msg, c.Solution)
		if score > 0 {
			scored = append(scored, model.ScoredCase{Case: c, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if len(scored) > k {
		scored = scored[:k]
	}
	return scored
}

// overlapScore counts message words of length >= 5 that appear in the case
// text. Short words are skipped to avoid matching on articles and glue words.
func overlapScore(msg, caseText string) int {
	text := strings.ToLower(caseText)
	seen := map[string]bool{}
	score := 0
	for _, w := range strings.Fields(msg) {
		w = strings.Trim(w, ".,!?;:'\"()")
		if len(w) < 5 || seen[w] {
			continue
		}
		seen[w] = true
		if strings.Contains(text, w) {
			score += textWeight
		}
	}
	return score
}
