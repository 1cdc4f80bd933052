package dashboard

import "context"

// Repository defines the persistence operations the aggregator composes.
type Repository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountInvestors(ctx context.Context) (int64, error)
	CountInvestments(ctx context.Context) (int64, error)
	// PayoutAggregates returns sum/count/max/min over the payouts table with
	// zero defaults when the table is empty.
	PayoutAggregates(ctx context.Context) (PayoutStats, error)
	// LatestPayout returns the most recent payout ordered by due date
	// descending, identifier descending as tiebreak. Nil when no rows exist.
	LatestPayout(ctx context.Context) (*Payout, error)
}
