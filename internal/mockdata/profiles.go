// Package mockdata provides the demo customer profiles and synthetic
// transaction histories used when the service runs without a live banking
// data feed.
package mockdata

import "fricoach/internal/model"

// Profiles returns the demo customer set, in a fixed order.
func Profiles() []model.CustomerProfile {
	return []model.CustomerProfile{
		{
			CustomerID:          "CUST_001",
			Name:                "Sofia Papadopoulos",
			Age:                 31,
			Occupation:          "Freelance Photographer",
			AccountAgeMonths:    18,
			AvgMonthlyIncome:    2000,
			IncomeCV:            0.42,
			AvgMonthlyEssential: 1500,
		},
		{
			CustomerID:          "CUST_002",
			Name:                "Nikos Dimitriou",
			Age:                 28,
			Occupation:          "Software Engineer",
			AccountAgeMonths:    24,
			AvgMonthlyIncome:    3500,
			IncomeCV:            0.08,
			AvgMonthlyEssential: 2000,
		},
		{
			CustomerID:          "CUST_003",
			Name:                "Maria Georgiou",
			Age:                 42,
			Occupation:          "Small Business Owner",
			AccountAgeMonths:    36,
			AvgMonthlyIncome:    2800,
			IncomeCV:            0.35,
			AvgMonthlyEssential: 2200,
		},
		{
			CustomerID:          "CUST_004",
			Name:                "Andreas Kostas",
			Age:                 24,
			Occupation:          "Graduate Student",
			AccountAgeMonths:    12,
			AvgMonthlyIncome:    800,
			IncomeCV:            0.15,
			AvgMonthlyEssential: 700,
		},
	}
}

// ProfileByID resolves a customer ID to a profile. Unknown IDs fall back to
// the first demo profile so the coaching flow always has a subject.
func ProfileByID(customerID string) model.CustomerProfile {
	profiles := Profiles()
	for _, p := range profiles {
		if p.CustomerID == customerID {
			return p
		}
	}
	return profiles[0]
}
