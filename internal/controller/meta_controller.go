package controller

import (
	"net/http"
	"time"

	"github.com/devcodex/codex-api/config"
	"github.com/devcodex/codex-api/internal/dto"
	"github.com/gin-gonic/gin"
)

// MetaController serves the process-level endpoints that sit outside the
// /api resource paths.
type MetaController struct {
	cfg *config.Config
}

func NewMetaController(cfg *config.Config) *MetaController {
	return &MetaController{cfg: cfg}
}

func (ctrl *MetaController) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", ctrl.Health)
	router.GET("/error", ctrl.Error)
}

// Health godoc
// @Summary Process health probe
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func (ctrl *MetaController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "Healthy",
		"timestamp":   time.Now().UTC(),
		"environment": ctrl.cfg.Environment,
	})
}

// Error is the terminal endpoint for failures that escape the handlers.
func (ctrl *MetaController) Error(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, dto.Response{
		Status:     dto.StatusFailed,
		IsSuccess:  false,
		StatusCode: http.StatusInternalServerError,
		Message:    "An error occurred processing your request.",
	})
}
