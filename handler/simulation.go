package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"simgate/config"
	"simgate/simulation"
)

// SimulationHandler serves the gateway's HTTP surface.
type SimulationHandler struct {
	service  *simulation.Service
	defaults config.DefaultsConfig
}

// NewSimulationHandler creates a handler around the simulation service.
func NewSimulationHandler(service *simulation.Service, defaults config.DefaultsConfig) *SimulationHandler {
	return &SimulationHandler{
		service:  service,
		defaults: defaults,
	}
}

// ListModels handles GET /models.
func (h *SimulationHandler) ListModels(c *gin.Context) {
	models, err := h.service.Models(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error(),
			fmt.Sprintf("Listing models: %s", err))
		return
	}
	c.JSON(http.StatusOK, models)
}

// RunSimulation handles POST /simulations/run. Any failure from the
// remote side is surfaced as a 500 with the original message attached.
func (h *SimulationHandler) RunSimulation(c *gin.Context) {
	var req RunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("invalid request: %s", err))
		return
	}
	if req.ModelName == "" {
		req.ModelName = h.defaults.ModelName
	}
	if req.ExperimentName == "" {
		req.ExperimentName = h.defaults.ExperimentName
	}

	result, err := h.service.Run(c.Request.Context(), simulation.RunParams{
		ServerCapacity: req.ServerCapacity,
		ModelName:      req.ModelName,
		ExperimentName: req.ExperimentName,
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error(),
			fmt.Sprintf("Running simulation (model %q, experiment %q): %s",
				req.ModelName, req.ExperimentName, err))
		return
	}

	c.JSON(http.StatusOK, result)
}
