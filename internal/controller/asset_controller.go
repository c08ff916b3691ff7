package controller

import (
	"errors"

	"github.com/devcodex/codex-api/internal/dto"
	"github.com/devcodex/codex-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AssetController struct {
	svc service.AssetService
}

func NewAssetController(svc service.AssetService) *AssetController {
	return &AssetController{svc: svc}
}

func (ctrl *AssetController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", ctrl.GetAll)
	rg.POST("/list", ctrl.GetList)
	rg.GET("/:id", ctrl.GetByID)
	rg.POST("", ctrl.Create)
	rg.PUT("/:id", ctrl.Update)
	rg.DELETE("/:id", ctrl.Delete)
}

// GetAll godoc
// @Summary List all assets
// @Tags asset
// @Produce json
// @Success 200 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /asset [get]
func (ctrl *AssetController) GetAll(c *gin.Context) {
	assets, err := ctrl.svc.GetAll()
	if err != nil {
		failed(c, err)
		return
	}
	succeeded(c, assets)
}

// GetList godoc
// @Summary Get a paginated list of assets filtered by file name
// @Tags asset
// @Accept json
// @Produce json
// @Param filter body dto.Filter true "Pagination and search filter"
// @Success 200 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /asset/list [post]
func (ctrl *AssetController) GetList(c *gin.Context) {
	var filter dto.Filter
	if err := c.ShouldBindJSON(&filter); err != nil {
		log.Warn().Err(err).Msg("Failed to bind asset filter")
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
// @Summary Get an asset by id
// @Tags asset
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /asset/{id} [get]
func (ctrl *AssetController) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	asset, err := ctrl.svc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	succeeded(c, asset)
}

// Create godoc
// @Summary Create an asset
// @Tags asset
// @Accept json
// @Produce json
// @Param asset body dto.CreateAssetRequest true "Asset data"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /asset [post]
func (ctrl *AssetController) Create(c *gin.Context) {
	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateAssetRequest")
		badRequest(c, err.Error())
		return
	}

	asset, err := ctrl.svc.Create(req)
	if err != nil {
		failed(c, err)
		return
	}
	succeededWithMessage(c, asset, dto.MessageAddSuccess)
}

// Update godoc
// @Summary Update an asset
// @Tags asset
// @Accept json
// @Produce json
// @Param id path string true "Asset ID"
// @Param asset body dto.CreateAssetRequest true "Asset data"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /asset/{id} [put]
func (ctrl *AssetController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	asset, err := ctrl.svc.Update(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	succeededWithMessage(c, asset, dto.MessageUpdateSuccess)
}

// Delete godoc
// @Summary Soft-delete an asset
// @Tags asset
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /asset/{id} [delete]
func (ctrl *AssetController) Delete(c *gin.Context) {
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
