package reports

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"pdp-backend/internal/database"
	"pdp-backend/internal/models"
	"pdp-backend/internal/snapshots"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupReportsTest(t *testing.T) (*fiber.App, *snapshots.Service) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	store := &snapshots.Service{DB: db}
	h := &Handlers{Service: &Service{Store: store}}

	app := fiber.New()
	app.Get("/progress-report", h.ProgressReport)
	app.Get("/top-agents", h.TopAgents)
	app.Get("/chart-data", h.ChartData)
	return app, store
}

func seedSnapshot(t *testing.T, store *snapshots.Service) *models.Baseline {
	t.Helper()
	ctx := context.Background()
	b, err := store.CreateBaseline(ctx, "seeded", "test data")
	require.NoError(t, err)
	importDate := time.Now()
	records := []models.AgentRecord{
		{AgentName: "John", Office: "North", CurrentMonthPromised: 100, FollowingMonthPromised: 50, TotalPromised: 150, ImportDate: importDate},
		{AgentName: "Jane", Office: "South", CurrentMonthPromised: 400, FollowingMonthPromised: 100, TotalPromised: 500, ImportDate: importDate},
	}
	offices := []models.OfficeAggregate{
		{Office: "North", CurrentMonthTotal: 100, FollowingMonthTotal: 50, GrandTotal: 150, AgentCount: 1, ImportDate: importDate},
		{Office: "South", CurrentMonthTotal: 400, FollowingMonthTotal: 100, GrandTotal: 500, AgentCount: 1, ImportDate: importDate},
	}
	company := models.CompanyAggregate{
		TotalCurrentMonth: 500, TotalFollowingMonth: 150, GrandTotal: 650,
		TotalAgents: 2, TotalOffices: 2, ImportDate: importDate,
	}
	require.NoError(t, store.ImportSnapshot(ctx, b.ID, records, offices, company, nil))
	return b
}

func TestProgressReport_MostRecentByDefault(t *testing.T) {
	app, store := setupReportsTest(t)
	seedSnapshot(t, store)

	resp, err := app.Test(httptest.NewRequest("GET", "/progress-report", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	data, _ := body["data"].(map[string]interface{})
	text, _ := data["report"].(string)
	assert.Contains(t, text, "seeded")
	assert.Contains(t, text, "Grand Total: $650.00")
	assert.Contains(t, text, "Average per Agent: $325.00")
}

func TestProgressReport_NoBaselines(t *testing.T) {
	app, _ := setupReportsTest(t)
	resp, err := app.Test(httptest.NewRequest("GET", "/progress-report", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestProgressReport_InvalidBaselineID(t *testing.T) {
	app, _ := setupReportsTest(t)
	resp, err := app.Test(httptest.NewRequest("GET", "/progress-report?baseline_id=abc", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestTopAgents_OrderedAndLimited(t *testing.T) {
	app, store := setupReportsTest(t)
	seedSnapshot(t, store)

	resp, err := app.Test(httptest.NewRequest("GET", "/top-agents?limit=1", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	agents, _ := body["data"].([]interface{})
	require.Len(t, agents, 1)
	first, _ := agents[0].(map[string]interface{})
	assert.Equal(t, "Jane", first["agent_name"])
}

func TestChartData(t *testing.T) {
	app, store := setupReportsTest(t)
	b := seedSnapshot(t, store)

	resp, err := app.Test(httptest.NewRequest("GET", "/chart-data", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	data, _ := body["data"].(map[string]interface{})
	assert.Equal(t, float64(b.ID), data["baseline_id"])

	offices, _ := data["offices"].([]interface{})
	require.Len(t, offices, 2)
	top, _ := offices[0].(map[string]interface{})
	assert.Equal(t, "South", top["office"])

	split, _ := data["month_split"].(map[string]interface{})
	assert.Equal(t, 500.0, split["current_month"])
	assert.Equal(t, 150.0, split["following_month"])

	agents, _ := data["top_agents"].([]interface{})
	assert.Len(t, agents, 2)
}
