package dto

import (
	"time"

	"github.com/devcodex/codex-api/internal/model"
	"github.com/google/uuid"
)

// QuestionDetailDTO flattens a question with its technology name and the
// content of its companion answer. Both joins may legitimately miss:
// TechnologyName stays empty and AnswerID stays nil.
type QuestionDetailDTO struct {
	Title           string                `json:"title"`
	Description     string                `json:"description,omitempty"`
	TechnologyID    uuid.UUID             `json:"technologyId"`
	TechnologyName  string                `json:"technologyName,omitempty"`
	DifficultyLevel model.DifficultyLevel `json:"difficultyLevel"`
	AnswerID        *uuid.UUID            `json:"answerId,omitempty"`
	AnswerContent   string                `json:"answerContent"`
}

// QuestionListDTO is the row shape of the paginated question list.
type QuestionListDTO struct {
	ID              uuid.UUID             `json:"id"`
	Title           string                `json:"title"`
	TechnologyName  string                `json:"technologyName,omitempty"`
	DifficultyLevel model.DifficultyLevel `json:"difficultyLevel"`
	CreatedAt       time.Time             `json:"createdAt"`
}

// AnswerDetailDTO is the read projection of a single answer.
type AnswerDetailDTO struct {
	Content string `json:"content"`
}
