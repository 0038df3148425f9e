package snapshots

import (
	"errors"
	"strconv"

	"pdp-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles baseline handlers.
type Handlers struct {
	Service *Service
}

type createBaselineRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateBaseline POST /api/v1/baselines/create-baseline
func (h *Handlers) CreateBaseline(c *fiber.Ctx) error {
	var req createBaselineRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}
	baseline, err := h.Service.CreateBaseline(c.Context(), req.Name, req.Description)
	if err != nil {
		if errors.Is(err, ErrNameRequired) {
			return response.Error(c, "name is required", 400, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.SuccessCreated(c, "Baseline created successfully", baseline, nil)
}

// GetBaselines GET /api/v1/baselines/get-baselines
func (h *Handlers) GetBaselines(c *fiber.Ctx) error {
	baselines, err := h.Service.GetBaselines(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Baselines fetched successfully", baselines, nil)
}

// MostRecent GET /api/v1/baselines/most-recent
func (h *Handlers) MostRecent(c *fiber.Ctx) error {
	baseline, err := h.Service.GetMostRecentBaseline(c.Context())
	if err != nil {
		if errors.Is(err, ErrNoBaselines) {
			return response.Error(c, "No baselines found", 404, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Baseline fetched successfully", baseline, nil)
}

// DeleteBaseline DELETE /api/v1/baselines/delete-baseline/:id
func (h *Handlers) DeleteBaseline(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.Error(c, "Invalid baseline ID", 400, nil)
	}
	if err := h.Service.DeleteBaseline(c.Context(), uint(id)); err != nil {
		if errors.Is(err, ErrBaselineNotFound) {
			return response.Error(c, "Baseline not found", 404, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Baseline deleted successfully", nil, nil)
}
