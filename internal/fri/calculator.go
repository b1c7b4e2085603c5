// Package fri computes the Financial Resilience Index: a 0-100 score built
// from a liquidity buffer, income stability, and financial momentum.
package fri

import (
	"math"

	"fricoach/internal/model"
)

// Component names, also used as cache/prompt labels.
const (
	ComponentBuffer    = "Buffer"
	ComponentStability = "Stability"
	ComponentMomentum  = "Momentum"
)

// Default component weights.
const (
	DefaultBufferWeight    = 0.45
	DefaultStabilityWeight = 0.30
	DefaultMomentumWeight  = 0.25
)

// bufferScale converts months-of-expenses coverage to a 0-100 score;
// 6 months of coverage maps to 100 (100/6 ≈ 16.67).
const bufferScale = 16.67

// Calculator computes FRI snapshots from transaction history.
type Calculator struct {
	wBuffer    float64
	wStability float64
	wMomentum  float64
}

// New returns a Calculator with the default component weights.
func New() *Calculator {
	return NewWithWeights(DefaultBufferWeight, DefaultStabilityWeight, DefaultMomentumWeight)
}

// NewWithWeights returns a Calculator with custom weights. Weights should sum
// to 1; they are used as given.
func NewWithWeights(buffer, stability, momentum float64) *Calculator {
	return &Calculator{wBuffer: buffer, wStability: stability, wMomentum: momentum}
}

// Calculate produces an FRI snapshot. It is pure and cannot fail: missing or
// short history degrades to neutral component scores.
func (c *Calculator) Calculate(h model.TransactionHistory) model.FRIResult {
	buffer := c.bufferScore(h)
	stability := c.stabilityScore(h)
	momentum := c.momentumScore(h)

	total := c.wBuffer*buffer + c.wStability*stability + c.wMomentum*momentum

	return model.FRIResult{
		TotalScore: total,
		Components: []model.FRIComponent{
			{Name: ComponentBuffer, Score: buffer, Weight: c.wBuffer},
			{Name: ComponentStability, Score: stability, Weight: c.wStability},
			{Name: ComponentMomentum, Score: momentum, Weight: c.wMomentum},
		},
		Interpretation: Interpret(total),
		Assets:         h.CurrentAssets,
	}
}

// bufferScore = min(100, assets / essential expenses * bufferScale).
func (c *Calculator) bufferScore(h model.TransactionHistory) float64 {
	if h.AvgMonthlyEssential == 0 {
		return 100
	}
	return math.Min(100, h.CurrentAssets/h.AvgMonthlyEssential*bufferScale)
}

// stabilityScore = 100 * (1 - CV) over the last six months of income, where
// CV is capped at 1. Fewer than two samples yields a neutral 50.
func (c *Calculator) stabilityScore(h model.TransactionHistory) float64 {
	income := h.MonthlyIncome
	if len(income) > 6 {
		income = income[len(income)-6:]
	}
	if len(income) < 2 {
		return 50
	}

	mean := 0.0
	for _, v := range income {
		mean += v
	}
	mean /= float64(len(income))
	if mean == 0 {
		return 0
	}

	variance := 0.0
	for _, v := range income {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(income))

	cv := math.Min(1, math.Sqrt(variance)/mean)
	return 100 * (1 - cv)
}

// momentumScore = 50 + 50 * tanh(((Δbuffer + Δdebt)/2)/10), where deltas are
// per-month averages over the last three months and a falling debt counts as
// positive momentum. Short history contributes zero delta.
func (c *Calculator) momentumScore(h model.TransactionHistory) float64 {
	deltaBuffer := 0.0
	if n := len(h.MonthlyBuffer); n >= 3 {
		recent := h.MonthlyBuffer[n-3:]
		deltaBuffer = (recent[2] - recent[0]) / 3
	}

	deltaDebt := 0.0
	if n := len(h.MonthlyDebt); n >= 3 {
		recent := h.MonthlyDebt[n-3:]
		deltaDebt = -(recent[2] - recent[0]) / 3
	}

	combined := (deltaBuffer + deltaDebt) / 2
	return 50 + 50*math.Tanh(combined/10)
}

// Interpret maps a total FRI score to its band label.
func Interpret(score float64) string {
	switch {
	case score >= 80:
		return "Thriving - Excellent financial resilience"
	case score >= 60:
		return "Stable - Good financial health"
	case score >= 40:
		return "Vulnerable - Needs attention"
	case score >= 20:
		return "Fragile - Requires support"
	default:
		return "Crisis - Urgent intervention needed"
	}
}

// WeakestComponent returns the lowest-scoring component of a snapshot. The
// first component wins ties, matching the fixed Buffer/Stability/Momentum
// ordering produced by Calculate.
func WeakestComponent(r model.FRIResult) model.FRIComponent {
	weakest := r.Components[0]
	for _, comp := range r.Components[1:] {
		if comp.Score < weakest.Score {
			weakest = comp
		}
	}
	return weakest
}
