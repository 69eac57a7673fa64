package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"

	"github.com/babubl/loan-restructure-pro/internal/analysis"
	"github.com/babubl/loan-restructure-pro/internal/api/models"
	"github.com/babubl/loan-restructure-pro/internal/cache"
	"github.com/babubl/loan-restructure-pro/internal/simulate"
	"github.com/babubl/loan-restructure-pro/internal/strategy"

	"github.com/gin-gonic/gin"
)

// SimulateHandler serves single-strategy and full-comparison runs.
type SimulateHandler struct {
	engine *simulate.Engine
	cache  cache.Cache
}

func NewSimulateHandler(engine *simulate.Engine, c cache.Cache) *SimulateHandler {
	return &SimulateHandler{engine: engine, cache: c}
}

// Run handles POST /api/v1/simulate.
func (h *SimulateHandler) Run(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	result, err := h.engine.Simulate(models.ToPortfolio(req.Portfolio), strategy.ID(req.Strategy))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SIMULATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.SimulateResponse{Result: result})
}

// Compare handles POST /api/v1/compare. Responses are memoized by a content
// hash of the portfolio; the engine is referentially transparent, so a hit
// is always identical to a fresh run.
func (h *SimulateHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	key := compareKey(req)
	if cached, ok := h.cache.Get(key); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
		return
	}

	results, err := h.engine.SimulateAll(models.ToPortfolio(req.Portfolio))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SIMULATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	best, _ := analysis.Best(results)
	resp := models.CompareResponse{
		Results:  results,
		Best:     best,
		Rankings: analysis.RankBySavings(results),
	}

	body, err := json.Marshal(resp)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: err.Error(),
			},
		})
		return
	}
	if err := h.cache.Set(key, string(body)); err != nil {
		log.Printf("SimulateHandler: cache set failed: %v", err)
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func compareKey(req models.CompareRequest) string {
	raw, _ := json.Marshal(req.Portfolio)
	sum := sha256.Sum256(raw)
	return "compare:" + hex.EncodeToString(sum[:])
}
