package controller

import (
	"errors"

	"github.com/devcodex/codex-api/internal/dto"
	"github.com/devcodex/codex-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type QuestionController struct {
	svc service.QuestionService
}

func NewQuestionController(svc service.QuestionService) *QuestionController {
	return &QuestionController{svc: svc}
}

func (ctrl *QuestionController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", ctrl.GetAll)
	rg.POST("/list", ctrl.GetList)
	rg.GET("/:id", ctrl.GetByID)
	rg.POST("", ctrl.Create)
	rg.PUT("/:id", ctrl.Update)
	rg.DELETE("/:id", ctrl.Delete)
}

// GetAll godoc
// @Summary List all questions
// @Tags question
// @Produce json
// @Success 200 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /question [get]
func (ctrl *QuestionController) GetAll(c *gin.Context) {
	questions, err := ctrl.svc.GetAll()
	if err != nil {
		failed(c, err)
		return
	}
	succeeded(c, questions)
}

// GetList godoc
// @Summary Get a paginated, filtered list of questions with technology names
// @Tags question
// @Accept json
// @Produce json
// @Param filter body dto.QuestionFilter true "Pagination and search filter"
// @Success 200 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /question/list [post]
func (ctrl *QuestionController) GetList(c *gin.Context) {
	var filter dto.QuestionFilter
	if err := c.ShouldBindJSON(&filter); err != nil {
		log.Warn().Err(err).Msg("Failed to bind question filter")
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
// @Summary Get a question by id with its technology and answer flattened in
// @Tags question
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /question/{id} [get]
func (ctrl *QuestionController) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	detail, err := ctrl.svc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	succeeded(c, detail)
}

// Create godoc
// @Summary Create a question together with its empty companion answer
// @Tags question
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "Question data"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /question [post]
func (ctrl *QuestionController) Create(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateQuestionRequest")
		badRequest(c, err.Error())
		return
	}

	question, err := ctrl.svc.Create(req)
	if err != nil {
		// A missing technology reference is a caller mistake, not a
		// server fault.
		if errors.Is(err, service.ErrNotFound) {
			badRequest(c, err.Error())
			return
		}
		failed(c, err)
		return
	}
	succeededWithMessage(c, question, dto.MessageAddSuccess)
}

// Update godoc
// @Summary Update a question
// @Tags question
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Param question body dto.CreateQuestionRequest true "Question data"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /question/{id} [put]
func (ctrl *QuestionController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	question, err := ctrl.svc.Update(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	succeededWithMessage(c, question, dto.MessageUpdateSuccess)
}

// Delete godoc
// @Summary Soft-delete a question
// @Tags question
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /question/{id} [delete]
func (ctrl *QuestionController) Delete(c *gin.Context) {
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
