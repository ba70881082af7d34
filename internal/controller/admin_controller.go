package controller

import (
	"fmt"

	"pathfinder_backend/internal/service"
	"pathfinder_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AdminController exposes the idempotent catalog seeding endpoints. They
// carry no credentials: the seed content is the same data the public catalog
// serves, and replaying them is harmless.
type AdminController struct {
	catalogService *service.CatalogService
}

func NewAdminController(catalogService *service.CatalogService) *AdminController {
	return &AdminController{catalogService: catalogService}
}

// InitFields godoc
// @Summary Seed career fields
// @Tags admin
// @Produce json
// @Success 200 {object} util.Response
// @Router /admin/init-tech-fields [post]
func (ctl *AdminController) InitFields(c *gin.Context) {
	n, err := ctl.catalogService.SeedFields()
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, gin.H{"message": fmt.Sprintf("Initialized %d tech fields successfully", n)})
}

// InitSimulations godoc
// @Summary Seed the simulation catalog
// @Description Inserts or overwrites the built-in simulations
// @Tags admin
// @Produce json
// @Success 200 {object} util.Response
// @Router /admin/init-simulations [post]
func (ctl *AdminController) InitSimulations(c *gin.Context) {
	n, err := ctl.catalogService.SeedSimulations()
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, gin.H{"message": fmt.Sprintf("Initialized %d tech simulations successfully", n)})
}

// MergeQuestions godoc
// @Summary Refresh question banks
// @Description Updates questions and hints on existing simulations without recreating them
// @Tags admin
// @Produce json
// @Success 200 {object} util.Response
// @Router /admin/merge-simulation-questions [post]
func (ctl *AdminController) MergeQuestions(c *gin.Context) {
	n, err := ctl.catalogService.MergeQuestions()
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, gin.H{"message": fmt.Sprintf("Merged questions into %d existing simulations", n)})
}
