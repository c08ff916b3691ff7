package dto

import (
	"github.com/devcodex/codex-api/internal/model"
	"github.com/google/uuid"
)

// CreateTechnologyRequest is used for both create and update of technologies.
type CreateTechnologyRequest struct {
	Name           string               `json:"name" binding:"required"`
	Description    string               `json:"description"`
	TechnologyType model.TechnologyType `json:"technologyType" binding:"required,oneof=language framework library database tool"`
}

// CreateQuestionRequest is used for both create and update of questions.
type CreateQuestionRequest struct {
	Title           string                `json:"title" binding:"required"`
	Description     string                `json:"description"`
	TechnologyID    uuid.UUID             `json:"technologyId" binding:"required"`
	DifficultyLevel model.DifficultyLevel `json:"difficultyLevel" binding:"required,oneof=easy medium hard"`
}

// CreateAnswerRequest is used for both create and update of answers.
type CreateAnswerRequest struct {
	QuestionID uuid.UUID `json:"questionId" binding:"required"`
	Content    string    `json:"content"`
}

// CreateAssetRequest is used for both create and update of assets.
type CreateAssetRequest struct {
	ParentID uuid.UUID `json:"parentId" binding:"required"`
	FileName string    `json:"fileName" binding:"required"`
	FileType string    `json:"fileType"`
	FileURL  string    `json:"fileUrl"`
}
