package model

// CustomerProfile describes a demo bank customer used by the coaching flow.
type CustomerProfile struct {
	CustomerID          string  `json:"customer_id"`
	Name                string  `json:"name"`
	Age                 int     `json:"age"`
	Occupation          string  `json:"occupation"`
	AccountAgeMonths    int     `json:"account_age_months"`
	AvgMonthlyIncome    float64 `json:"avg_monthly_income"`
	IncomeCV            float64 `json:"income_cv"`
	AvgMonthlyEssential float64 `json:"avg_monthly_essential"`
}

// TransactionHistory is a 12-month view of a customer's finances, the input
// to the resilience calculation.
type TransactionHistory struct {
	CustomerID          string    `json:"customer_id"`
	CurrentAssets       float64   `json:"current_assets"`
	AvgMonthlyEssential float64   `json:"avg_monthly_essential"`
	MonthlyIncome       []float64 `json:"monthly_income"`
	MonthlyBuffer       []float64 `json:"monthly_buffer"`
	MonthlyDebt         []float64 `json:"monthly_debt"`
}
