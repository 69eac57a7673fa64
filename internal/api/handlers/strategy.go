package handlers

import (
	"net/http"

	"github.com/babubl/loan-restructure-pro/internal/strategy"

	"github.com/gin-gonic/gin"
)

// StrategyHandler lists the fixed strategy catalog.
type StrategyHandler struct{}

func NewStrategyHandler() *StrategyHandler {
	return &StrategyHandler{}
}

// ListStrategies handles GET /api/v1/strategies.
func (h *StrategyHandler) ListStrategies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"strategies": strategy.Catalog()})
}
