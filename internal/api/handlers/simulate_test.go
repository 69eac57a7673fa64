package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/babubl/loan-restructure-pro/internal/api/models"
	"github.com/babubl/loan-restructure-pro/internal/cache"
	"github.com/babubl/loan-restructure-pro/internal/model"
	"github.com/babubl/loan-restructure-pro/internal/report"
	"github.com/babubl/loan-restructure-pro/internal/simulate"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	engine := simulate.New()
	simulateHandler := NewSimulateHandler(engine, cache.NewMemory())
	reportHandler := NewReportHandler(engine)

	api := r.Group("/api/v1")
	api.POST("/simulate", simulateHandler.Run)
	api.POST("/compare", simulateHandler.Compare)
	api.POST("/report", reportHandler.Build)
	api.GET("/strategies", NewStrategyHandler().ListStrategies)
	api.GET("/presets", NewPresetHandler(model.DefaultPresets).ListPresets)
	return r
}

func post(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const referenceBody = `{
	"portfolio": [
		{"type": "term", "principal": 1500000, "rate": 11.5, "tenure_months": 60},
		{"type": "ccod", "principal": 800000, "rate": 13.5, "tenure_months": 12},
		{"type": "mudra", "principal": 500000, "rate": 10.0, "tenure_months": 36}
	]
}`

func TestSimulateEndpoint_OK(t *testing.T) {
	r := newTestRouter()
	w := post(t, r, "/api/v1/simulate", `{
		"portfolio": [{"principal": 1500000, "rate": 11.5, "tenure_months": 60}],
		"strategy": "consolidate"
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SimulateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "consolidate", string(resp.Result.Strategy))
	assert.GreaterOrEqual(t, resp.Result.Savings, 0.0)
}

func TestSimulateEndpoint_BadJSON(t *testing.T) {
	r := newTestRouter()
	w := post(t, r, "/api/v1/simulate", `{invalid-json}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSimulateEndpoint_EmptyPortfolioRejected(t *testing.T) {
	r := newTestRouter()
	w := post(t, r, "/api/v1/simulate", `{"portfolio": [], "strategy": "hybrid"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSimulateEndpoint_UnknownStrategyPassesThrough(t *testing.T) {
	r := newTestRouter()
	w := post(t, r, "/api/v1/simulate", `{
		"portfolio": [{"principal": 100000, "rate": 10, "tenure_months": 12}],
		"strategy": "not_a_strategy"
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SimulateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, resp.Result.CurrentTotalInterest, resp.Result.NewTotalInterest)
	assert.Zero(t, resp.Result.Savings)
}

func TestCompareEndpoint_CachedResponsesAreIdentical(t *testing.T) {
	r := newTestRouter()

	first := post(t, r, "/api/v1/compare", referenceBody)
	require.Equal(t, http.StatusOK, first.Code)
	second := post(t, r, "/api/v1/compare", referenceBody)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())

	var resp models.CompareResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 5)
	require.Len(t, resp.Rankings, 5)
	assert.Equal(t, resp.Rankings[0].Savings, resp.Best.Savings)
}

func TestReportEndpoint(t *testing.T) {
	r := newTestRouter()
	w := post(t, r, "/api/v1/report", `{
		"label": "Sharma Trading Co.",
		"portfolio": [
			{"type": "term", "principal": 1500000, "rate": 11.5, "tenure_months": 60},
			{"type": "ccod", "principal": 800000, "rate": 13.5, "tenure_months": 12}
		]
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	var rep report.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
	assert.Equal(t, "Sharma Trading Co.", rep.Label)
	assert.Len(t, rep.Loans, 2)
	assert.Len(t, rep.Strategies, 5)
}

func TestListEndpoints(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/strategies", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "prepay_highest")

	req = httptest.NewRequest(http.MethodGet, "/api/v1/presets", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mudra")
}
