package reports

import (
	"context"

	"pdp-backend/internal/models"
	"pdp-backend/internal/snapshots"
)

// DefaultTopAgents is the limit used when a caller does not pass one.
const DefaultTopAgents = 10

// Service reads a baseline's snapshot back and derives caller-facing views.
type Service struct {
	Store *snapshots.Service
}

// ProgressReport renders the text report for the given baseline, or the most
// recent one when baselineID is nil.
func (s *Service) ProgressReport(ctx context.Context, baselineID *uint) (string, error) {
	baseline, err := s.resolveBaseline(ctx, baselineID)
	if err != nil {
		return "", err
	}
	company, err := s.Store.GetCompanyAggregate(ctx, baseline.ID)
	if err != nil {
		return "", err
	}
	offices, err := s.Store.GetOfficeAggregates(ctx, baseline.ID)
	if err != nil {
		return "", err
	}
	return Format(baseline, company, offices), nil
}

// TopAgents returns the top n agents by total promised for the given
// baseline, or the most recent one when baselineID is nil.
func (s *Service) TopAgents(ctx context.Context, baselineID *uint, n int) ([]models.AgentRecord, error) {
	if n <= 0 {
		n = DefaultTopAgents
	}
	baseline, err := s.resolveBaseline(ctx, baselineID)
	if err != nil {
		return nil, err
	}
	return s.Store.GetTopAgents(ctx, baseline.ID, n)
}

// MonthSplit is the current-vs-following distribution for a pie/donut chart.
type MonthSplit struct {
	CurrentMonth   float64 `json:"current_month"`
	FollowingMonth float64 `json:"following_month"`
}

// ChartData is everything an external charting collaborator needs to draw
// the analysis dashboard: office totals and agent counts (grand total
// descending), the month split, and the top agents.
type ChartData struct {
	BaselineID uint                     `json:"baseline_id"`
	Offices    []models.OfficeAggregate `json:"offices"`
	MonthSplit MonthSplit               `json:"month_split"`
	TopAgents  []models.AgentRecord     `json:"top_agents"`
}

// ChartData assembles the visualization feed for the given baseline, or the
// most recent one when baselineID is nil.
func (s *Service) ChartData(ctx context.Context, baselineID *uint) (*ChartData, error) {
	baseline, err := s.resolveBaseline(ctx, baselineID)
	if err != nil {
		return nil, err
	}
	company, err := s.Store.GetCompanyAggregate(ctx, baseline.ID)
	if err != nil {
		return nil, err
	}
	offices, err := s.Store.GetOfficeAggregates(ctx, baseline.ID)
	if err != nil {
		return nil, err
	}
	agents, err := s.Store.GetTopAgents(ctx, baseline.ID, DefaultTopAgents)
	if err != nil {
		return nil, err
	}
	return &ChartData{
		BaselineID: baseline.ID,
		Offices:    offices,
		MonthSplit: MonthSplit{
			CurrentMonth:   company.TotalCurrentMonth,
			FollowingMonth: company.TotalFollowingMonth,
		},
		TopAgents: agents,
	}, nil
}

func (s *Service) resolveBaseline(ctx context.Context, baselineID *uint) (*models.Baseline, error) {
	if baselineID == nil {
		return s.Store.GetMostRecentBaseline(ctx)
	}
	return s.Store.GetBaseline(ctx, *baselineID)
}
