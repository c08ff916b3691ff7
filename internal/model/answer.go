package model

import "github.com/google/uuid"

type Answer struct {
	BaseField
	QuestionID uuid.UUID `gorm:"type:uuid;index" json:"questionId"`
	Content    string    `gorm:"type:text" json:"content"`
}
