package casebase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRetriever_TopMatches(t *testing.T) {
	r := NewRetriever()

	tests := []struct {
		name         string
		message      string
		occupation   string
		k            int
		wantTopCat   string
		wantMaxCount int
	}{
		{
			name:         "volatile income message hits income_volatility",
			message:      "My freelance income is so irregular, some months I earn almost nothing",
			occupation:   "Freelance Photographer",
			k:            2,
			wantTopCat:   "income_volatility",
			wantMaxCount: 2,
		},
		{
			name:         "debt message hits debt_management",
			message:      "I am drowning in credit card debt and the interest keeps growing",
			k:            2,
			wantTopCat:   "debt_management",
			wantMaxCount: 2,
		},
		{
			name:         "anxiety message hits psychological",
			message:      "I have enough money but I still feel constant anxiety about the future",
			k:            1,
			wantTopCat:   "psychological",
			wantMaxCount: 1,
		},
		{
			name:         "k limits result size",
			message:      "debt savings budgeting anxiety gig freelance",
			k:            3,
			wantMaxCount: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.TopMatches(tt.message, tt.occupation, tt.k)
			assert.LessOrEqual(t, len(got), tt.wantMaxCount)
			if tt.wantTopCat != "" {
				assert.NotEmpty(t, got)
				assert.Equal(t, tt.wantTopCat, got[0].Case.Category)
			}
			for _, sc := range got {
				assert.Greater(t, sc.Score, 0)
			}
		})
	}
}

func TestRetriever_NoMatchesReturnsEmpty(t *testing.T) {
	r := NewRetriever()
	assert.Empty(t, r.TopMatches("hello there", "", 2))
	assert.Empty(t, r.TopMatches("I feel anxious", "", 0))
}

func TestRetriever_Deterministic(t *testing.T) {
	r := NewRetriever()
	msg := "worried about debt and my savings buffer"
	assert.Equal(t, r.TopMatches(msg, "", 3), r.TopMatches(msg, "", 3))
}
