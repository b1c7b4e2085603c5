// Package stress performs lexicon-based financial stress detection on
// free-text customer messages. It combines weighted phrase and keyword hits
// with negation, intensifier, mitigator, and question adjustments into a
// single score in [0,1] and a coarse stress level.
package stress

import (
	"math"
	"sort"
	"strings"

	"fricoach/internal/model"
)

// Stress levels, ordered by severity.
const (
	LevelHigh     = "HIGH"
	LevelModerate = "MODERATE"
	LevelLow      = "LOW"
	LevelMinimal  = "MINIMAL"
)

// Score combination weights: phrases are more specific than single keywords.
const (
	phraseWeight  = 0.6
	keywordWeight = 0.4
)

// questionFactor softens questions, which read as less urgent than statements.
const questionFactor = 0.85

// Analyze runs the detection pipeline on a message. It is pure and
// deterministic; an empty message yields a MINIMAL result.
func Analyze(text string) model.StressAnalysis {
	lower := strings.ToLower(text)

	phraseScore, phrases := detectPhrases(lower)
	keywordScore, keywords := detectKeywords(lower, phrases)

	// When only one channel fired, give it full weight instead of leaving the
	// score anchored below the HIGH band.
	base := phraseScore*phraseWeight + keywordScore*keywordWeight
	if phraseScore == 0 {
		base = keywordScore
	} else if keywordScore == 0 {
		base = phraseScore
	}
	adjusted := base * negationFactor(lower, len(phrases)+len(keywords)) *
		intensifierFactor(lower) * mitigatorFactor(lower)
	if strings.Contains(text, "?") {
		adjusted *= questionFactor
	}
	adjusted = math.Min(adjusted, 1.0)

	level, urgency := classify(adjusted)

	return model.StressAnalysis{
		Level:            level,
		Urgency:          urgency,
		CombinedScore:    adjusted,
		KeywordScore:     keywordScore,
		PhraseScore:      phraseScore,
		DetectedKeywords: keywords,
		DetectedPhrases:  phrases,
	}
}

// detectPhrases returns the strongest phrase weight and all matched phrases,
// sorted for deterministic output.
func detectPhrases(lower string) (float64, []string) {
	score := 0.0
	var matched []string
	for phrase, weight := range stressPhrases {
		if strings.Contains(lower, phrase) {
			matched = append(matched, phrase)
			score = math.Max(score, weight)
		}
	}
	sort.Strings(matched)
	return score, matched
}

// detectKeywords scores single keywords with diminishing returns: the
// strongest hit counts fully, each further hit adds a shrinking fraction.
// Words already covered by a matched phrase are skipped.
func detectKeywords(lower string, phrases []string) (float64, []string) {
	type hit struct {
		word   string
		weight float64
	}
	var hits []hit
	for word, weight := range stressKeywords {
		if !containsWord(lower, word) {
			continue
		}
		covered := false
		for _, p := range phrases {
			if strings.Contains(p, word) {
				covered = true
				break
			}
		}
		if !covered {
			hits = append(hits, hit{word, weight})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].weight != hits[j].weight {
			return hits[i].weight > hits[j].weight
		}
		return hits[i].word < hits[j].word
	})

	score := 0.0
	shrink := 1.0
	var matched []string
	for _, h := range hits {
		score += h.weight * shrink
		shrink *= 0.4
		matched = append(matched, h.word)
	}
	return math.Min(score, 1.0), matched
}

// containsWord matches word boundaries so "debt" does not fire on "debtor"
// being absent but "indebted" present.
func containsWord(lower, word string) bool {
	idx := 0
	for {
		i := strings.Index(lower[idx:], word)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(word)
		beforeOK := start == 0 || !isWordChar(lower[start-1])
		afterOK := end == len(lower) || !isWordChar(lower[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '\''
}

// negationFactor halves the score when a negation appears alongside detected
// stress terms. Without any hits negation is irrelevant.
func negationFactor(lower string, hits int) float64 {
	if hits == 0 {
		return 1.0
	}
	for _, n := range negations {
		if strings.Contains(lower, n) {
			return 0.5
		}
	}
	return 1.0
}

func intensifierFactor(lower string) float64 {
	factor := 1.0
	for marker, f := range intensifiers {
		if strings.Contains(lower, marker) {
			factor = math.Max(factor, f)
		}
	}
	return factor
}

func mitigatorFactor(lower string) float64 {
	factor := 1.0
	for marker, f := range mitigators {
		if strings.Contains(lower, marker) {
			factor = math.Min(factor, f)
		}
	}
	return factor
}

func classify(score float64) (level, urgency string) {
	switch {
	case score >= 0.75:
		return LevelHigh, "Immediate response needed - High financial distress detected"
	case score >= 0.55:
		return LevelModerate, "Active support recommended - Notable financial concern"
	case score >= 0.35:
		return LevelLow, "Monitor situation - Minor financial stress detected"
	default:
		return LevelMinimal, "No immediate intervention needed"
	}
}
