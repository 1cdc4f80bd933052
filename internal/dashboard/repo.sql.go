package dashboard

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGRepository provides PostgreSQL backed persistence.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository bound to the given pool.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// CountUsers returns the total number of user rows.
func (r *PGRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users`)
}

// CountInvestors returns the total number of investor rows.
func (r *PGRepository) CountInvestors(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM investors`)
}

// CountInvestments returns the total number of investment rows.
func (r *PGRepository) CountInvestments(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM investments`)
}

func (r *PGRepository) count(ctx context.Context, query string) (int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// PayoutAggregates computes sum/count/max/min over payouts in one query.
// COALESCE keeps every field at zero for an empty table.
func (r *PGRepository) PayoutAggregates(ctx context.Context) (PayoutStats, error) {
	const query = `
		SELECT
			COALESCE(SUM(amount_due), 0),
			COALESCE(SUM(amount_paid), 0),
			COUNT(*),
			COALESCE(MAX(amount_due), 0),
			COALESCE(MAX(amount_paid), 0),
			COALESCE(MIN(amount_due), 0),
			COALESCE(MIN(amount_paid), 0)
		FROM payouts`

	var stats PayoutStats
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.TotalAmountDue,
		&stats.TotalAmountPaid,
		&stats.TotalPayouts,
		&stats.MaxAmountDue,
		&stats.MaxAmountPaid,
		&stats.MinAmountDue,
		&stats.MinAmountPaid,
	)
	if err != nil {
		return PayoutStats{}, err
	}
	return stats, nil
}

// LatestPayout fetches the single most recent payout. Rows without a due
// date sort last so the identifier ordering acts as the fallback.
func (r *PGRepository) LatestPayout(ctx context.Context) (*Payout, error) {
	const query = `
		SELECT id, amount_due, amount_paid, due_date
		FROM payouts
		ORDER BY due_date DESC NULLS LAST, id DESC
		LIMIT 1`

	var payout Payout
	var dueDate pgtype.Timestamptz
	err := r.pool.QueryRow(ctx, query).Scan(&payout.ID, &payout.AmountDue, &payout.AmountPaid, &dueDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if dueDate.Valid {
		due := dueDate.Time.UTC()
		payout.DueDate = &due
	}
	return &payout, nil
}

var _ Repository = (*PGRepository)(nil)
