package dashboard

import "time"

// Summary is the aggregated view the admin dashboard renders.
type Summary struct {
	UserCount       int64       `json:"userCount"`
	InvestorCount   int64       `json:"investorCount"`
	InvestmentCount int64       `json:"investmentCount"`
	Payout          PayoutStats `json:"payout"`
}

// PayoutStats aggregates the payouts table. All numeric fields default to
// zero when no rows exist.
type PayoutStats struct {
	TotalAmountDue  float64 `json:"totalAmountDue"`
	TotalAmountPaid float64 `json:"totalAmountPaid"`
	TotalPayouts    int64   `json:"totalPayouts"`
	MaxAmountDue    float64 `json:"maxAmountDue"`
	MaxAmountPaid   float64 `json:"maxAmountPaid"`
	MinAmountDue    float64 `json:"minAmountDue"`
	MinAmountPaid   float64 `json:"minAmountPaid"`
	Latest          *Payout `json:"latestPayout"`
}

// Payout is the most recent payout row surfaced on the dashboard.
type Payout struct {
	ID         int64      `json:"id"`
	AmountDue  float64    `json:"amountDue"`
	AmountPaid float64    `json:"amountPaid"`
	DueDate    *time.Time `json:"dueDate"`
}
