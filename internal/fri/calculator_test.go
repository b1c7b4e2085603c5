package fri

import (
	"testing"

	"fricoach/internal/model"

	"github.com/stretchr/testify/assert"
)

func steadyIncome(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestCalculate_ComponentsAndWeights(t *testing.T) {
	c := New()
	h := model.TransactionHistory{
		CustomerID:          "CUST_001",
		CurrentAssets:       6000,
		AvgMonthlyEssential: 2000,
		MonthlyIncome:       steadyIncome(12, 3000),
		MonthlyBuffer:       []float64{40, 45, 50},
		MonthlyDebt:         []float64{5000, 4800, 4600},
	}

	res := c.Calculate(h)

	assert.Len(t, res.Components, 3)
	assert.Equal(t, ComponentBuffer, res.Components[0].Name)
	assert.Equal(t, ComponentStability, res.Components[1].Name)
	assert.Equal(t, ComponentMomentum, res.Components[2].Name)

	// 3 months of coverage -> 3 * 16.67 ≈ 50.
	assert.InDelta(t, 50.0, res.Components[0].Score, 0.02)
	// Zero income variance -> perfect stability.
	assert.InDelta(t, 100.0, res.Components[1].Score, 0.001)
	// Rising buffer and falling debt -> momentum above neutral.
	assert.Greater(t, res.Components[2].Score, 50.0)

	wantTotal := 0.45*res.Components[0].Score + 0.30*res.Components[1].Score + 0.25*res.Components[2].Score
	assert.InDelta(t, wantTotal, res.TotalScore, 0.001)
	assert.Equal(t, h.CurrentAssets, res.Assets)
}

func TestCalculate_EdgeCases(t *testing.T) {
	c := New()

	tests := []struct {
		name  string
		h     model.TransactionHistory
		check func(t *testing.T, res model.FRIResult)
	}{
		{
			name: "zero essential expenses maxes buffer",
			h:    model.TransactionHistory{CurrentAssets: 100},
			check: func(t *testing.T, res model.FRIResult) {
				assert.Equal(t, 100.0, res.Components[0].Score)
			},
		},
		{
			name: "buffer capped at 100",
			h:    model.TransactionHistory{CurrentAssets: 100000, AvgMonthlyEssential: 1000},
			check: func(t *testing.T, res model.FRIResult) {
				assert.Equal(t, 100.0, res.Components[0].Score)
			},
		},
		{
			name: "insufficient income history is neutral stability",
			h:    model.TransactionHistory{MonthlyIncome: []float64{1000}},
			check: func(t *testing.T, res model.FRIResult) {
				assert.Equal(t, 50.0, res.Components[1].Score)
			},
		},
		{
			name: "zero mean income is zero stability",
			h:    model.TransactionHistory{MonthlyIncome: []float64{0, 0, 0}},
			check: func(t *testing.T, res model.FRIResult) {
				assert.Equal(t, 0.0, res.Components[1].Score)
			},
		},
		{
			name: "short trend history is neutral momentum",
			h:    model.TransactionHistory{MonthlyBuffer: []float64{40, 42}, MonthlyDebt: []float64{100}},
			check: func(t *testing.T, res model.FRIResult) {
				assert.Equal(t, 50.0, res.Components[2].Score)
			},
		},
		{
			name: "rising debt drags momentum below neutral",
			h:    model.TransactionHistory{MonthlyDebt: []float64{1000, 1500, 2000}},
			check: func(t *testing.T, res model.FRIResult) {
				assert.Less(t, res.Components[2].Score, 50.0)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, c.Calculate(tt.h))
		})
	}
}

func TestCalculate_StabilityUsesLastSixMonths(t *testing.T) {
	c := New()
	// Wildly volatile early months must not matter when the last six are flat.
	income := append([]float64{100, 9000, 50, 7000, 20, 8000}, steadyIncome(6, 3000)...)
	res := c.Calculate(model.TransactionHistory{MonthlyIncome: income})
	assert.InDelta(t, 100.0, res.Components[1].Score, 0.001)
}

func TestInterpret_Bands(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{85, "Thriving - Excellent financial resilience"},
		{80, "Thriving - Excellent financial resilience"},
		{65, "Stable - Good financial health"},
		{45, "Vulnerable - Needs attention"},
		{25, "Fragile - Requires support"},
		{10, "Crisis - Urgent intervention needed"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Interpret(tt.score), "score %v", tt.score)
	}
}

func TestWeakestComponent(t *testing.T) {
	res := model.FRIResult{Components: []model.FRIComponent{
		{Name: ComponentBuffer, Score: 70},
		{Name: ComponentStability, Score: 30},
		{Name: ComponentMomentum, Score: 55},
	}}
	assert.Equal(t, ComponentStability, WeakestComponent(res).Name)
}
