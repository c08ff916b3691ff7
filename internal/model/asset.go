package model

import "github.com/google/uuid"

// Asset is a file attached to any other entity. ParentID is untyped on
// purpose: the owner may be a question, an answer or a technology.
type Asset struct {
	BaseField
	ParentID uuid.UUID `gorm:"type:uuid;index" json:"parentId"`
	FileName string    `json:"fileName"`
	FileType string    `json:"fileType"`
	FileURL  string    `json:"fileUrl"`
}
