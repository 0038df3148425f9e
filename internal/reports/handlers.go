package reports

import (
	"errors"
	"strconv"

	"pdp-backend/internal/pkg/response"
	"pdp-backend/internal/snapshots"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles report handlers.
type Handlers struct {
	Service *Service
}

// ProgressReport GET /api/v1/reports/progress-report?baseline_id=
func (h *Handlers) ProgressReport(c *fiber.Ctx) error {
	baselineID, err := optionalBaselineID(c)
	if err != nil {
		return response.Error(c, "Invalid baseline ID", 400, nil)
	}
	report, err := h.Service.ProgressReport(c.Context(), baselineID)
	if err != nil {
		return reportError(c, err)
	}
	return response.Success(c, "Report generated successfully", fiber.Map{"report": report}, nil)
}

// TopAgents GET /api/v1/reports/top-agents?baseline_id=&limit=
func (h *Handlers) TopAgents(c *fiber.Ctx) error {
	baselineID, err := optionalBaselineID(c)
	if err != nil {
		return response.Error(c, "Invalid baseline ID", 400, nil)
	}
	limit := c.QueryInt("limit", DefaultTopAgents)
	agents, err := h.Service.TopAgents(c.Context(), baselineID, limit)
	if err != nil {
		return reportError(c, err)
	}
	return response.Success(c, "Top agents fetched successfully", agents, nil)
}

// ChartData GET /api/v1/reports/chart-data?baseline_id=
func (h *Handlers) ChartData(c *fiber.Ctx) error {
	baselineID, err := optionalBaselineID(c)
	if err != nil {
		return response.Error(c, "Invalid baseline ID", 400, nil)
	}
	data, err := h.Service.ChartData(c.Context(), baselineID)
	if err != nil {
		return reportError(c, err)
	}
	return response.Success(c, "Chart data fetched successfully", data, nil)
}

func optionalBaselineID(c *fiber.Ctx) (*uint, error) {
	raw := c.Query("baseline_id")
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, err
	}
	v := uint(id)
	return &v, nil
}

func reportError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, snapshots.ErrNoBaselines):
		return response.Error(c, "No baselines found. Please import data first.", 404, nil)
	case errors.Is(err, snapshots.ErrBaselineNotFound):
		return response.Error(c, "Baseline not found", 404, nil)
	case errors.Is(err, snapshots.ErrAggregateNotFound):
		return response.Error(c, "Company totals not found for baseline", 404, nil)
	default:
		return response.Error(c, "Internal Server Error", 500, nil)
	}
}
