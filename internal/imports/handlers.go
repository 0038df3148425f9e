package imports

import (
	"errors"
	"strconv"

	"pdp-backend/internal/ingest"
	"pdp-backend/internal/pkg/response"
	"pdp-backend/internal/snapshots"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles import handlers.
type Handlers struct {
	Service *Service
}

// ImportReport POST /api/v1/imports/import-report
// Multipart form: "file" is the xlsx report; "baseline_id" (optional) targets
// an existing baseline instead of auto-creating one.
func (h *Handlers) ImportReport(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, "file is required", 400, nil)
	}

	var baselineID *uint
	if raw := c.FormValue("baseline_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return response.Error(c, "Invalid baseline ID", 400, nil)
		}
		v := uint(id)
		baselineID = &v
	}

	f, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, "Could not read uploaded file", 400, nil)
	}
	defer f.Close()

	result, err := h.Service.ImportReader(c.Context(), f, fileHeader.Filename, baselineID)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnreadableFile):
			return response.Error(c, "Could not read report file", 400, nil)
		case errors.Is(err, ingest.ErrAgentColumnNotFound):
			return response.Error(c, "Could not identify agent column", 422, nil)
		case errors.Is(err, snapshots.ErrBaselineNotFound):
			return response.Error(c, "Baseline not found", 404, nil)
		default:
			return response.Error(c, "Internal Server Error", 500, nil)
		}
	}
	return response.SuccessCreated(c, "Report imported successfully", result, nil)
}
