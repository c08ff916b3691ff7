package model

// TechnologyType categorizes a technology entry.
type TechnologyType string

const (
	TechnologyTypeLanguage  TechnologyType = "language"
	TechnologyTypeFramework TechnologyType = "framework"
	TechnologyTypeLibrary   TechnologyType = "library"
	TechnologyTypeDatabase  TechnologyType = "database"
	TechnologyTypeTool      TechnologyType = "tool"
)

type Technology struct {
	BaseField
	Name           string         `gorm:"not null" json:"name"`
	Description    string         `gorm:"type:text" json:"description,omitempty"`
	TechnologyType TechnologyType `gorm:"not null" json:"technologyType"`
}
