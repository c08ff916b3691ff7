// Package controller translates HTTP verbs into service calls and wraps
// every result in the uniform response envelope.
package controller

import (
	"errors"
	"net/http"

	"github.com/devcodex/codex-api/internal/dto"
	"github.com/devcodex/codex-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

func succeeded(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.Response{
		Status:     dto.StatusSucceeded,
		IsSuccess:  true,
		StatusCode: http.StatusOK,
		Data:       data,
	})
}

func succeededWithMessage(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, dto.Response{
		Status:     dto.StatusSucceeded,
		IsSuccess:  true,
		StatusCode: http.StatusOK,
		Message:    message,
		Data:       data,
	})
}

func succeededWithPagination(c *gin.Context, data any, pagination *dto.PaginationMeta) {
	c.JSON(http.StatusOK, dto.Response{
		Status:     dto.StatusSucceeded,
		IsSuccess:  true,
		StatusCode: http.StatusOK,
		Data:       data,
		Pagination: pagination,
	})
}

// failed hides the underlying error behind a stable message; the detail is
// only logged server-side.
func failed(c *gin.Context, err error) {
	log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
	c.JSON(http.StatusInternalServerError, dto.Response{
		Status:     dto.StatusFailed,
		IsSuccess:  false,
		StatusCode: http.StatusInternalServerError,
		Message:    dto.MessageSomethingWentWrong,
	})
}

func notFound(c *gin.Context, message string) {
	if message == "" {
		message = dto.MessageNotFound
	}
	c.JSON(http.StatusNotFound, dto.Response{
		Status:     dto.StatusFailed,
		IsSuccess:  false,
		StatusCode: http.StatusNotFound,
		Message:    message,
	})
}

func notFoundWithData(c *gin.Context, data any, message string) {
	c.JSON(http.StatusNotFound, dto.Response{
		Status:     dto.StatusFailed,
		IsSuccess:  false,
		StatusCode: http.StatusNotFound,
		Message:    message,
		Data:       data,
	})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.Response{
		Status:     dto.StatusFailed,
		IsSuccess:  false,
		StatusCode: http.StatusBadRequest,
		Message:    message,
	})
}

// respondServiceError maps a service error to the envelope: domain
// not-found becomes 404 with its message, everything else becomes a
// generic 500.
func respondServiceError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotFound) {
		notFound(c, err.Error())
		return
	}
	failed(c, err)
}

// parseID reads the :id path parameter as a UUID, responding 400 itself
// when the value is malformed.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid id format")
		return uuid.Nil, false
	}
	return id, true
}
