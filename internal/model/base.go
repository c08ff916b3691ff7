package model

import (
	"time"

	"github.com/google/uuid"
)

// BaseField is the common base struct for all persistent entities.
// Soft deletion is an explicit flag rather than gorm.DeletedAt so that
// deleted rows stay reachable through unfiltered queries, and the services
// own the timestamps: CreatedAt is assigned once at create time and
// UpdatedAt stays nil until the first mutation.
type BaseField struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	IsDeleted bool       `gorm:"not null;default:false" json:"isDeleted"`
	CreatedAt time.Time  `gorm:"not null;autoCreateTime:false" json:"createdAt"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}
