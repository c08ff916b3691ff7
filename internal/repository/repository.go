package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository is the generic data-access contract shared by every entity.
// Soft-delete filtering is the services' responsibility: this layer reads
// and writes raw rows.
type Repository[T any] interface {
	// GetAll returns every row, soft-deleted ones included. This is the
	// audit view; all user-facing read paths go through Where instead.
	GetAll() ([]T, error)
	// Where returns a deferred query scoped to the entity's table. Callers
	// chain further filtering, ordering and pagination before materializing.
	Where(query any, args ...any) *gorm.DB
	GetByID(id uuid.UUID) (*T, error)
	Create(entity *T) error
	Update(entity *T) error
	// Delete physically removes the row and reports whether one existed.
	// Services soft-delete instead; this exists for maintenance paths.
	Delete(id uuid.UUID) (bool, error)
}

type gormRepository[T any] struct {
	db *gorm.DB
}

func New[T any](db *gorm.DB) Repository[T] {
	return &gormRepository[T]{db: db}
}

func (r *gormRepository[T]) GetAll() ([]T, error) {
	var entities []T
	if err := r.db.Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *gormRepository[T]) Where(query any, args ...any) *gorm.DB {
	return r.db.Model(new(T)).Where(query, args...)
}

func (r *gormRepository[T]) GetByID(id uuid.UUID) (*T, error) {
	var entity T
	if err := r.db.First(&entity, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *gormRepository[T]) Create(entity *T) error {
	return r.db.Create(entity).Error
}

func (r *gormRepository[T]) Update(entity *T) error {
	return r.db.Save(entity).Error
}

func (r *gormRepository[T]) Delete(id uuid.UUID) (bool, error) {
	result := r.db.Delete(new(T), "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
