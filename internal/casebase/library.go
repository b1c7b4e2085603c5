// Package casebase holds the knowledge base of successful financial
// interventions used to ground coaching advice, plus a small keyword
// retriever over it.
package casebase

import "fricoach/internal/model"

// Library returns the fixed, ordered case library. It always returns the same
// six records in the same order; the slice is built fresh on every call so
// callers may not mutate shared state.
func Library() []model.CaseRecord {
	return []model.CaseRecord{
		{
			Description: "Freelancer with irregular monthly income ranging €800-€3200, experiencing stress about money despite decent annual earnings",
			Solution:    "Income Smoother - automatically distribute earnings across weeks to create predictable cash flow",
			Improvement: "+12 FRI points (Stability component)",
			Category:    "income_volatility",
		},
		{
			Description: "Small emergency fund covering only 2 months of expenses, constant anxiety about unexpected costs",
			Solution:    "Automated savings plan with round-up feature and bonus deposit recommendations",
			Improvement: "+18 FRI points (Buffer component)",
			Category:    "buffer_building",
		},
		{
			Description: "Steady salaried income but high credit card debt causing declining financial momentum",
			Solution:    "Debt consolidation loan with optimized payment plan and spending alerts",
			Improvement: "+15 FRI points (Momentum component)",
			Category:    "debt_management",
		},
		{
			Description: "Variable monthly expenses making budgeting impossible, overspending on discretionary items",
			Solution:    "AI-powered predictive budgeting with category-based spending alerts and goal tracking",
			Improvement: "+10 FRI points (Buffer component)",
			Category:    "expense_control",
		},
		{
			Description: "Adequate savings but persistent anxiety about financial future despite objective security",
			Solution:    "Financial confidence coaching program with goal visualization and progress tracking",
			Improvement: "+8 FRI points (all components)",
			Category:    "psychological",
		},
		{
			Description: "Multiple income streams from gig economy jobs causing complexity and tax concerns",
			Solution:    "Unified financial dashboard with automated categorization and tax planning assistance",
			Improvement: "+14 FRI points (Stability component)",
			Category:    "income_diversification",
		},
	}
}
