package controller

import (
	"errors"

	"github.com/devcodex/codex-api/internal/dto"
	"github.com/devcodex/codex-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type TechnologyController struct {
	svc service.TechnologyService
}

func NewTechnologyController(svc service.TechnologyService) *TechnologyController {
	return &TechnologyController{svc: svc}
}

func (ctrl *TechnologyController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", ctrl.GetAll)
	rg.POST("/list", ctrl.GetList)
	rg.GET("/:id", ctrl.GetByID)
	rg.POST("", ctrl.Create)
	rg.PUT("/:id", ctrl.Update)
	rg.DELETE("/:id", ctrl.Delete)
}

// GetAll godoc
// @Summary List all technologies
// @Tags technology
// @Produce json
// @Success 200 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /technology [get]
func (ctrl *TechnologyController) GetAll(c *gin.Context) {
	technologies, err := ctrl.svc.GetAll()
	if err != nil {
		failed(c, err)
		return
	}
	succeeded(c, technologies)
}

// GetList godoc
// @Summary Get a paginated, filtered list of technologies
// @Tags technology
// @Accept json
// @Produce json
// @Param filter body dto.Filter true "Pagination and search filter"
// @Success 200 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /technology/list [post]
func (ctrl *TechnologyController) GetList(c *gin.Context) {
	var filter dto.Filter
	if err := c.ShouldBindJSON(&filter); err != nil {
		log.Warn().Err(err).Msg("Failed to bind technology filter")
		badRequest(c, err.Error())
		return
	}

	result, err := ctrl.svc.GetList(filter)
	if err != nil {
		failed(c, err)
		return
	}
	succeededWithPagination(c, result.Items, dto.NewPaginationMeta(result.PageIndex, result.PageSize, result.TotalCount))
}

// GetByID godoc
// @Summary Get a technology by id
// @Tags technology
// @Produce json
// @Param id path string true "Technology ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /technology/{id} [get]
func (ctrl *TechnologyController) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	technology, err := ctrl.svc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	succeeded(c, technology)
}

// Create godoc
// @Summary Create a technology
// @Tags technology
// @Accept json
// @Produce json
// @Param technology body dto.CreateTechnologyRequest true "Technology data"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /technology [post]
func (ctrl *TechnologyController) Create(c *gin.Context) {
	var req dto.CreateTechnologyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateTechnologyRequest")
		badRequest(c, err.Error())
		return
	}

	technology, err := ctrl.svc.Create(req)
	if err != nil {
		failed(c, err)
		return
	}
	succeededWithMessage(c, technology, dto.MessageAddSuccess)
}

// Update godoc
// @Summary Update a technology
// @Tags technology
// @Accept json
// @Produce json
// @Param id path string true "Technology ID"
// @Param technology body dto.CreateTechnologyRequest true "Technology data"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /technology/{id} [put]
func (ctrl *TechnologyController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.CreateTechnologyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	technology, err := ctrl.svc.Update(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	succeededWithMessage(c, technology, dto.MessageUpdateSuccess)
}

// Delete godoc
// @Summary Soft-delete a technology
// @Tags technology
// @Produce json
// @Param id path string true "Technology ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /technology/{id} [delete]
func (ctrl *TechnologyController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := ctrl.svc.Delete(id)
	if err != nil && !errors.Is(err, service.ErrNotFound) {
		failed(c, err)
		return
	}
	if !deleted {
		notFoundWithData(c, false, dto.MessageNotFound)
		return
	}
	succeededWithMessage(c, true, dto.MessageDeleteSuccess)
}
