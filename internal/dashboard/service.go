package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Service composes the dashboard summary from independent queries.
type Service struct {
	repo Repository
}

// NewService constructs a Service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Summary fans the aggregation queries out concurrently and combines the
// results. The first failing query cancels the rest and fails the whole
// call; there is no partial result.
//
// The queries are not wrapped in a single transaction, so a write landing
// between them can produce sub-counts that are mutually inconsistent. That
// is an accepted property of the dashboard view.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	if s.repo == nil {
		return Summary{}, fmt.Errorf("dashboard: repository not configured")
	}

	var summary Summary
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.repo.CountUsers(ctx)
		summary.UserCount = n
		return err
	})
	g.Go(func() error {
		n, err := s.repo.CountInvestors(ctx)
		summary.InvestorCount = n
		return err
	})
	g.Go(func() error {
		n, err := s.repo.CountInvestments(ctx)
		summary.InvestmentCount = n
		return err
	})

	var stats PayoutStats
	var latest *Payout
	g.Go(func() error {
		var err error
		stats, err = s.repo.PayoutAggregates(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		latest, err = s.repo.LatestPayout(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	summary.Payout = stats
	summary.Payout.Latest = latest
	return summary, nil
}
