package comparisons

import (
	"context"
	"time"

	"pdp-backend/internal/snapshots"
)

// Service computes improvement metrics between two baselines.
type Service struct {
	Store *snapshots.Service
}

// BaselineSummary identifies one side of a comparison.
type BaselineSummary struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Date       time.Time `json:"date"`
	GrandTotal float64   `json:"grand_total"`
}

// Improvements holds the signed deltas and percentage changes from baseline 1
// to baseline 2.
type Improvements struct {
	CurrentMonth          float64 `json:"current_month"`
	FollowingMonth        float64 `json:"following_month"`
	GrandTotal            float64 `json:"grand_total"`
	AgentChange           int     `json:"agent_change"`
	CurrentMonthPercent   float64 `json:"current_month_percent"`
	FollowingMonthPercent float64 `json:"following_month_percent"`
	GrandTotalPercent     float64 `json:"grand_total_percent"`
}

// Comparison is the structured result callers render however they choose.
type Comparison struct {
	Baseline1    BaselineSummary `json:"baseline1"`
	Baseline2    BaselineSummary `json:"baseline2"`
	Improvements Improvements    `json:"improvements"`
}

// CompareBaselines fetches both company aggregates and derives deltas.
// Missing baselines or aggregates surface as the store's not-found sentinels,
// never as a fault.
func (s *Service) CompareBaselines(ctx context.Context, id1, id2 uint) (*Comparison, error) {
	b1, err := s.Store.GetBaseline(ctx, id1)
	if err != nil {
		return nil, err
	}
	b2, err := s.Store.GetBaseline(ctx, id2)
	if err != nil {
		return nil, err
	}
	agg1, err := s.Store.GetCompanyAggregate(ctx, id1)
	if err != nil {
		return nil, err
	}
	agg2, err := s.Store.GetCompanyAggregate(ctx, id2)
	if err != nil {
		return nil, err
	}

	currentDelta := agg2.TotalCurrentMonth - agg1.TotalCurrentMonth
	followingDelta := agg2.TotalFollowingMonth - agg1.TotalFollowingMonth
	grandDelta := agg2.GrandTotal - agg1.GrandTotal

	return &Comparison{
		Baseline1: BaselineSummary{
			ID:         b1.ID,
			Name:       b1.Name,
			Date:       b1.BaselineDate,
			GrandTotal: agg1.GrandTotal,
		},
		Baseline2: BaselineSummary{
			ID:         b2.ID,
			Name:       b2.Name,
			Date:       b2.BaselineDate,
			GrandTotal: agg2.GrandTotal,
		},
		Improvements: Improvements{
			CurrentMonth:          currentDelta,
			FollowingMonth:        followingDelta,
			GrandTotal:            grandDelta,
			AgentChange:           agg2.TotalAgents - agg1.TotalAgents,
			CurrentMonthPercent:   percentChange(currentDelta, agg1.TotalCurrentMonth),
			FollowingMonthPercent: percentChange(followingDelta, agg1.TotalFollowingMonth),
			GrandTotalPercent:     percentChange(grandDelta, agg1.GrandTotal),
		},
	}, nil
}

// percentChange returns 0 (not NaN/Inf) when the base is not positive.
func percentChange(delta, base float64) float64 {
	if base > 0 {
		return delta / base * 100
	}
	return 0
}
