package model

import "github.com/google/uuid"

// DifficultyLevel grades a question.
type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
)

type Question struct {
	BaseField
	Title           string          `gorm:"not null" json:"title"`
	Description     string          `gorm:"type:text" json:"description,omitempty"`
	TechnologyID    uuid.UUID       `gorm:"type:uuid;index" json:"technologyId"`
	DifficultyLevel DifficultyLevel `gorm:"not null" json:"difficultyLevel"`
}
