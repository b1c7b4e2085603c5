package llm

import (
	"strings"
	"testing"

	"fricoach/internal/fri"
	"fricoach/internal/model"

	"github.com/stretchr/testify/assert"
)

func promptInput() PromptInput {
	return PromptInput{
		Profile: model.CustomerProfile{
			CustomerID:          "CUST_001",
			Name:                "Sofia Papadopoulos",
			Age:                 31,
			Occupation:          "Freelance Photographer",
			AvgMonthlyIncome:    2000,
			AvgMonthlyEssential: 1500,
		},
		Message: "My income is so irregular, I never know if I can cover rent",
		Stress: model.StressAnalysis{
			Level:            "MODERATE",
			Urgency:          "Active support recommended - Notable financial concern",
			CombinedScore:    0.6,
			DetectedPhrases:  []string{"irregular income"},
			DetectedKeywords: []string{"worried"},
		},
		FRI: model.FRIResult{
			TotalScore:     48,
			Interpretation: "Vulnerable - Needs attention",
			Components: []model.FRIComponent{
				{Name: fri.ComponentBuffer, Score: 50, Weight: 0.45},
				{Name: fri.ComponentStability, Score: 35, Weight: 0.30},
				{Name: fri.ComponentMomentum, Score: 60, Weight: 0.25},
			},
		},
		Cases: []model.ScoredCase{
			{Case: model.CaseRecord{
				Solution:    "Income Smoother - automatically distribute earnings across weeks to create predictable cash flow",
				Improvement: "+12 FRI points (Stability component)",
				Category:    "income_volatility",
			}, Score: 12},
		},
	}
}

func TestBuildPrompt(t *testing.T) {
	got := BuildPrompt(promptInput())

	assert.Contains(t, got, "Sofia Papadopoulos")
	assert.Contains(t, got, "Freelance Photographer")
	assert.Contains(t, got, "Stress Level: MODERATE")
	assert.Contains(t, got, "Overall Score: 48/100 - Vulnerable - Needs attention")
	assert.Contains(t, got, "ROOT CAUSE IDENTIFIED: The Stability component is weakest at 35/100")
	assert.Contains(t, got, "Income Smoother")
	assert.Contains(t, got, "+12 FRI points (Stability component)")
	assert.Contains(t, got, "irregular income, worried")
}

func TestBuildPrompt_NoCases(t *testing.T) {
	in := promptInput()
	in.Cases = nil
	got := BuildPrompt(in)
	assert.Contains(t, got, "no closely matching cases on file")
}

func TestBuildPrompt_AtMostTwoCasesCited(t *testing.T) {
	in := promptInput()
	in.Cases = []model.ScoredCase{
		{Case: model.CaseRecord{Solution: "first", Improvement: "+1"}},
		{Case: model.CaseRecord{Solution: "second", Improvement: "+2"}},
		{Case: model.CaseRecord{Solution: "third", Improvement: "+3"}},
	}
	got := BuildPrompt(in)
	assert.Contains(t, got, "first")
	assert.Contains(t, got, "second")
	assert.NotContains(t, got, "third")
}

func TestFallbackReply_PerComponent(t *testing.T) {
	tests := []struct {
		name     string
		weaken   string
		wantText string
	}{
		{name: "stability plan", weaken: fri.ComponentStability, wantText: "smoothing the ride"},
		{name: "buffer plan", weaken: fri.ComponentBuffer, wantText: "Automate"},
		{name: "momentum plan", weaken: fri.ComponentMomentum, wantText: "reverse the trend"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := promptInput()
			for i := range in.FRI.Components {
				if in.FRI.Components[i].Name == tt.weaken {
					in.FRI.Components[i].Score = 10
				} else {
					in.FRI.Components[i].Score = 80
				}
			}

			got := FallbackReply(in)

			assert.True(t, strings.HasPrefix(got, "Hi Sofia,"), "greets by first name: %q", got[:20])
			assert.Contains(t, got, tt.wantText)
			assert.Contains(t, got, "Take care,\nFiona")
		})
	}
}

func TestFallbackReply_Deterministic(t *testing.T) {
	in := promptInput()
	assert.Equal(t, FallbackReply(in), FallbackReply(in))
}
