package controller

import (
	"errors"

	"github.com/devcodex/codex-api/internal/dto"
	"github.com/devcodex/codex-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AnswerController struct {
	svc service.AnswerService
}

func NewAnswerController(svc service.AnswerService) *AnswerController {
	return &AnswerController{svc: svc}
}

func (ctrl *AnswerController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", ctrl.GetAll)
	rg.POST("/list", ctrl.GetList)
	rg.GET("/:id", ctrl.GetByID)
	rg.POST("", ctrl.Create)
	rg.PUT("/:id", ctrl.Update)
	rg.DELETE("/:id", ctrl.Delete)
}

// GetAll godoc
// @Summary List all answers
// @Tags answer
// @Produce json
// @Success 200 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /answer [get]
func (ctrl *AnswerController) GetAll(c *gin.Context) {
	answers, err := ctrl.svc.GetAll()
	if err != nil {
		failed(c, err)
		return
	}
	succeeded(c, answers)
}

// GetList godoc
// @Summary Get a paginated list of answers filtered by content
// @Tags answer
// @Accept json
// @Produce json
// @Param filter body dto.Filter true "Pagination and search filter"
// @Success 200 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /answer/list [post]
func (ctrl *AnswerController) GetList(c *gin.Context) {
	var filter dto.Filter
	if err := c.ShouldBindJSON(&filter); err != nil {
		log.Warn().Err(err).Msg("Failed to bind answer filter")
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
// @Summary Get an answer by id
// @Tags answer
// @Produce json
// @Param id path string true "Answer ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /answer/{id} [get]
func (ctrl *AnswerController) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	answer, err := ctrl.svc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	succeeded(c, answer)
}

// Create godoc
// @Summary Create an answer
// @Tags answer
// @Accept json
// @Produce json
// @Param answer body dto.CreateAnswerRequest true "Answer data"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /answer [post]
func (ctrl *AnswerController) Create(c *gin.Context) {
	var req dto.CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateAnswerRequest")
		badRequest(c, err.Error())
		return
	}

	answer, err := ctrl.svc.Create(req)
	if err != nil {
		failed(c, err)
		return
	}
	succeededWithMessage(c, answer, dto.MessageAddSuccess)
}

// Update godoc
// @Summary Update an answer
// @Tags answer
// @Accept json
// @Produce json
// @Param id path string true "Answer ID"
// @Param answer body dto.CreateAnswerRequest true "Answer data"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /answer/{id} [put]
func (ctrl *AnswerController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	answer, err := ctrl.svc.Update(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	succeededWithMessage(c, answer, dto.MessageUpdateSuccess)
}

// Delete godoc
// @Summary Soft-delete an answer
// @Tags answer
// @Produce json
// @Param id path string true "Answer ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /answer/{id} [delete]
func (ctrl *AnswerController) Delete(c *gin.Context) {
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
