package comparisons

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandlerTest(t *testing.T) (*fiber.App, *Service) {
	t.Helper()
	svc := setupComparisonTest(t)
	h := &Handlers{Service: svc}
	app := fiber.New()
	app.Post("/compare-baselines", h.CompareBaselines)
	return app, svc
}

func TestCompareBaselinesHandler(t *testing.T) {
	app, svc := setupHandlerTest(t)
	id1 := seedBaseline(t, svc, "before", 1000, 500, 10)
	id2 := seedBaseline(t, svc, "after", 1100, 600, 11)

	body, _ := json.Marshal(map[string]uint{"baseline1_id": id1, "baseline2_id": id2})
	req := httptest.NewRequest("POST", "/compare-baselines", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	data, _ := result["data"].(map[string]interface{})
	improvements, _ := data["improvements"].(map[string]interface{})
	assert.Equal(t, 200.0, improvements["grand_total"])
}

func TestCompareBaselinesHandler_NotFound(t *testing.T) {
	app, svc := setupHandlerTest(t)
	id1 := seedBaseline(t, svc, "only", 100, 100, 2)

	body, _ := json.Marshal(map[string]uint{"baseline1_id": id1, "baseline2_id": 999})
	req := httptest.NewRequest("POST", "/compare-baselines", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestCompareBaselinesHandler_MissingIDs(t *testing.T) {
	app, _ := setupHandlerTest(t)

	req := httptest.NewRequest("POST", "/compare-baselines", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
