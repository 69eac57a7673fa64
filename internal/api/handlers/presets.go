package handlers

import (
	"net/http"

	"github.com/babubl/loan-restructure-pro/internal/model"

	"github.com/gin-gonic/gin"
)

// PresetHandler lists the loan-type presets the editor seeds loans from.
type PresetHandler struct {
	presets []model.LoanTypePreset
}

func NewPresetHandler(presets []model.LoanTypePreset) *PresetHandler {
	return &PresetHandler{presets: presets}
}

// ListPresets handles GET /api/v1/presets.
func (h *PresetHandler) ListPresets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"presets": h.presets})
}
