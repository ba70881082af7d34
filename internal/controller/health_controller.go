package controller

import (
	"pathfinder_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// Health godoc
// @Summary Liveness check
// @Tags ops
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (ctl *HealthController) Health(c *gin.Context) {
	util.Success(c, gin.H{
		"status":  "healthy",
		"service": "Project Pathfinder API",
	})
}
