package controller

import (
	"errors"

	"pathfinder_backend/internal/service"
	"pathfinder_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalogService  *service.CatalogService
	artifactService *service.ArtifactService
}

func NewCatalogController(catalogService *service.CatalogService, artifactService *service.ArtifactService) *CatalogController {
	return &CatalogController{catalogService: catalogService, artifactService: artifactService}
}

// ListFields godoc
// @Summary List career fields
// @Tags catalog
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Field}
// @Router /tech-fields [get]
func (ctl *CatalogController) ListFields(c *gin.Context) {
	fields, err := ctl.catalogService.ListFields()
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, fields)
}

// ListSimulationsByField godoc
// @Summary List simulations for a career field
// @Tags catalog
// @Produce json
// @Param field_id path string true "Career field id"
// @Success 200 {object} util.Response{data=[]model.SimulationPublic}
// @Router /tech-fields/{field_id}/simulations [get]
func (ctl *CatalogController) ListSimulationsByField(c *gin.Context) {
	sims, err := ctl.catalogService.ListSimulationsByField(c.Param("field_id"))
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, sims)
}

// ListSimulations godoc
// @Summary List all simulations
// @Tags catalog
// @Produce json
// @Success 200 {object} util.Response{data=[]model.SimulationPublic}
// @Router /simulations [get]
func (ctl *CatalogController) ListSimulations(c *gin.Context) {
	sims, err := ctl.catalogService.ListSimulations()
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, sims)
}

// GetSimulation godoc
// @Summary Get one simulation
// @Tags catalog
// @Produce json
// @Param simulation_id path string true "Simulation id"
// @Success 200 {object} util.Response{data=model.SimulationPublic}
// @Failure 404 {object} util.Response
// @Router /simulations/{simulation_id} [get]
func (ctl *CatalogController) GetSimulation(c *gin.Context) {
	sim, err := ctl.catalogService.GetSimulation(c.Param("simulation_id"))
	if err != nil {
		if errors.Is(err, util.ErrSimulationNotFound) {
			util.NotFound(c, "Simulation not found")
			return
		}
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, sim)
}

// GetSimulationFile godoc
// @Summary Download the exercise file
// @Description Generates the working file for a simulation; content is base64
// @Tags catalog
// @Produce json
// @Param simulation_id path string true "Simulation id"
// @Success 200 {object} util.Response{data=service.FileAsset}
// @Failure 404 {object} util.Response
// @Router /simulations/{simulation_id}/file [get]
func (ctl *CatalogController) GetSimulationFile(c *gin.Context) {
	asset, err := ctl.artifactService.GenerateFile(c.Param("simulation_id"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSimulationNotFound):
			util.NotFound(c, "Simulation not found")
		case errors.Is(err, util.ErrArtifactNotFound):
			util.NotFound(c, "File not available for this simulation")
		default:
			util.LogInternalError(c, err)
		}
		return
	}
	util.Success(c, asset)
}
