package comparisons

import (
	"errors"

	"pdp-backend/internal/pkg/response"
	"pdp-backend/internal/snapshots"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles comparison handlers.
type Handlers struct {
	Service *Service
}

type compareRequest struct {
	Baseline1ID uint `json:"baseline1_id"`
	Baseline2ID uint `json:"baseline2_id"`
}

// CompareBaselines POST /api/v1/comparisons/compare-baselines
func (h *Handlers) CompareBaselines(c *fiber.Ctx) error {
	var req compareRequest
	if err := c.BodyParser(&req); err != nil || req.Baseline1ID == 0 || req.Baseline2ID == 0 {
		return response.Error(c, "baseline1_id and baseline2_id are required", 400, nil)
	}

	comparison, err := h.Service.CompareBaselines(c.Context(), req.Baseline1ID, req.Baseline2ID)
	if err != nil {
		switch {
		case errors.Is(err, snapshots.ErrBaselineNotFound):
			return response.Error(c, "One or both baselines not found", 404, nil)
		case errors.Is(err, snapshots.ErrAggregateNotFound):
			return response.Error(c, "Company totals not found for one or both baselines", 404, nil)
		default:
			return response.Error(c, "Internal Server Error", 500, nil)
		}
	}
	return response.Success(c, "Baselines compared successfully", comparison, nil)
}
