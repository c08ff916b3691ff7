package dto

import (
	"time"

	"github.com/devcodex/codex-api/internal/model"
	"github.com/google/uuid"
)

const (
	DefaultPageIndex = 1
	DefaultPageSize  = 10
)

// Filter is the common list-endpoint request body.
type Filter struct {
	PageIndex int        `json:"pageIndex"`
	PageSize  int        `json:"pageSize"`
	Query     string     `json:"query"`
	Date      *time.Time `json:"date"`
}

// Normalize clamps pagination parameters to sane values so that a zero or
// negative page never turns into a negative offset.
func (f *Filter) Normalize() {
	if f.PageIndex < 1 {
		f.PageIndex = DefaultPageIndex
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
}

// QuestionFilter extends Filter with question-specific equality filters.
type QuestionFilter struct {
	Filter
	TechnologyID    *uuid.UUID             `json:"technologyId"`
	DifficultyLevel *model.DifficultyLevel `json:"difficultyLevel" binding:"omitempty,oneof=easy medium hard"`
}
