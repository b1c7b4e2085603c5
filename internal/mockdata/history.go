package mockdata

import (
	"hash/fnv"
	"math/rand"

	"fricoach/internal/model"
)

const historyMonths = 12

// assetScale maps the final buffer score back to euros of liquid assets;
// a buffer score of 16.67 corresponds to one month of essential expenses.
const assetScale = 16.67

// TransactionHistory generates a deterministic 12-month synthetic history for
// a customer. The series is seeded from the customer ID so repeated calls for
// the same customer agree: income carries CV-scaled noise around the profile
// average, the savings buffer trends upward, and debt trends downward.
func TransactionHistory(customerID string) model.TransactionHistory {
	p := ProfileByID(customerID)
	rng := rand.New(rand.NewSource(seed(p.CustomerID)))

	income := make([]float64, historyMonths)
	buffer := make([]float64, historyMonths)
	debt := make([]float64, historyMonths)

	for i := 0; i < historyMonths; i++ {
		income[i] = clamp(p.AvgMonthlyIncome*(1+rng.NormFloat64()*p.IncomeCV), 0, maxFloat)
		buffer[i] = clamp(40+float64(i)*2+rng.NormFloat64()*5, 0, 100)
		debt[i] = clamp(5000-float64(i)*200+rng.NormFloat64()*300, 0, maxFloat)
	}

	return model.TransactionHistory{
		CustomerID:          p.CustomerID,
		CurrentAssets:       p.AvgMonthlyEssential * (buffer[historyMonths-1] / assetScale),
		AvgMonthlyEssential: p.AvgMonthlyEssential,
		MonthlyIncome:       income,
		MonthlyBuffer:       buffer,
		MonthlyDebt:         debt,
	}
}

const maxFloat = 1e12

func seed(customerID string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(customerID))
	return int64(h.Sum64())
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
