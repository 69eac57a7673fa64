package handlers

import (
	"net/http"

	"github.com/babubl/loan-restructure-pro/internal/api/models"
	"github.com/babubl/loan-restructure-pro/internal/report"
	"github.com/babubl/loan-restructure-pro/internal/simulate"

	"github.com/gin-gonic/gin"
)

// ReportHandler builds the full restructuring report.
type ReportHandler struct {
	engine *simulate.Engine
}

func NewReportHandler(engine *simulate.Engine) *ReportHandler {
	return &ReportHandler{engine: engine}
}

// Build handles POST /api/v1/report.
func (h *ReportHandler) Build(c *gin.Context) {
	var req models.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	book := models.ToPortfolio(req.Portfolio)
	results, err := h.engine.SimulateAll(book)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SIMULATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	rep, err := report.Build(req.Label, book, results)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "REPORT_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, rep)
}
