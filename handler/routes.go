package handler

import "github.com/gin-gonic/gin"

// NewRouter builds the gin engine with the gateway routes.
func NewRouter(h *SimulationHandler) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(), gin.Recovery())

	r.GET("/models", h.ListModels)

	simulations := r.Group("/simulations")
	{
		simulations.POST("/run", h.RunSimulation)
	}

	return r
}
