package stress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze_Levels(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantLevel string
	}{
		{
			name:      "crisis keywords",
			text:      "I am drowning in debt and completely desperate",
			wantLevel: LevelHigh,
		},
		{
			name:      "stress phrases",
			text:      "I can't afford my rent and I am behind on bills",
			wantLevel: LevelHigh,
		},
		{
			name:      "mitigated stress",
			text:      "I was struggling but things are getting better",
			wantLevel: LevelModerate,
		},
		{
			name:      "neutral message",
			text:      "Thank you for the update",
			wantLevel: LevelMinimal,
		},
		{
			name:      "empty message",
			text:      "",
			wantLevel: LevelMinimal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.text)
			assert.Equal(t, tt.wantLevel, got.Level)
			assert.NotEmpty(t, got.Urgency)
			assert.GreaterOrEqual(t, got.CombinedScore, 0.0)
			assert.LessOrEqual(t, got.CombinedScore, 1.0)
		})
	}
}

func TestAnalyze_NegationSoftens(t *testing.T) {
	plain := Analyze("I am worried about my loan")
	negated := Analyze("I am not worried about my loan anymore")
	assert.Less(t, negated.CombinedScore, plain.CombinedScore)
}

func TestAnalyze_QuestionsAreLessUrgent(t *testing.T) {
	statement := Analyze("I am worried about my debt")
	question := Analyze("Should I be worried about my debt?")
	assert.Less(t, question.CombinedScore, statement.CombinedScore)
}

func TestAnalyze_IntensifierAmplifies(t *testing.T) {
	plain := Analyze("I am nervous about my bills")
	intense := Analyze("I am extremely nervous about my bills")
	assert.Greater(t, intense.CombinedScore, plain.CombinedScore)
}

func TestAnalyze_PhraseSuppressesConstituentKeywords(t *testing.T) {
	got := Analyze("my income is so irregular income this year")
	assert.Contains(t, got.DetectedPhrases, "irregular income")
	assert.NotContains(t, got.DetectedKeywords, "irregular")
}

func TestAnalyze_WordBoundaries(t *testing.T) {
	// "broke" must not fire inside "broker".
	got := Analyze("my broker sent a statement")
	assert.NotContains(t, got.DetectedKeywords, "broke")
}

func TestAnalyze_Deterministic(t *testing.T) {
	msg := "worried and struggling with debts, bills and an overdraft"
	assert.Equal(t, Analyze(msg), Analyze(msg))
}
