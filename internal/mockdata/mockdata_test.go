package mockdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfiles(t *testing.T) {
	profiles := Profiles()
	assert.Len(t, profiles, 4)
	assert.Equal(t, "CUST_001", profiles[0].CustomerID)
	assert.Equal(t, "Sofia Papadopoulos", profiles[0].Name)

	for _, p := range profiles {
		assert.NotEmpty(t, p.CustomerID)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Occupation)
		assert.Greater(t, p.AvgMonthlyIncome, 0.0)
		assert.Greater(t, p.AvgMonthlyEssential, 0.0)
	}
}

func TestProfileByID(t *testing.T) {
	assert.Equal(t, "Nikos Dimitriou", ProfileByID("CUST_002").Name)
	// Unknown IDs fall back to the first profile.
	assert.Equal(t, "CUST_001", ProfileByID("CUST_999").CustomerID)
}

func TestTransactionHistory_Shape(t *testing.T) {
	h := TransactionHistory("CUST_003")

	assert.Equal(t, "CUST_003", h.CustomerID)
	assert.Len(t, h.MonthlyIncome, 12)
	assert.Len(t, h.MonthlyBuffer, 12)
	assert.Len(t, h.MonthlyDebt, 12)
	assert.Greater(t, h.CurrentAssets, 0.0)
	assert.Equal(t, 2200.0, h.AvgMonthlyEssential)

	for i := 0; i < 12; i++ {
		assert.GreaterOrEqual(t, h.MonthlyIncome[i], 0.0)
		assert.GreaterOrEqual(t, h.MonthlyBuffer[i], 0.0)
		assert.LessOrEqual(t, h.MonthlyBuffer[i], 100.0)
		assert.GreaterOrEqual(t, h.MonthlyDebt[i], 0.0)
	}
}

func TestTransactionHistory_Deterministic(t *testing.T) {
	assert.Equal(t, TransactionHistory("CUST_001"), TransactionHistory("CUST_001"))
}

func TestTransactionHistory_VariesByCustomer(t *testing.T) {
	assert.NotEqual(t, TransactionHistory("CUST_001").MonthlyIncome, TransactionHistory("CUST_002").MonthlyIncome)
}
