package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/devcodex/codex-api/internal/dto"
	"github.com/devcodex/codex-api/internal/model"
	"github.com/devcodex/codex-api/internal/repository"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type TechnologyService interface {
	GetAll() ([]model.Technology, error)
	GetList(filter dto.Filter) (*dto.PaginatedList[model.Technology], error)
	GetByID(id uuid.UUID) (*model.Technology, error)
	Create(req dto.CreateTechnologyRequest) (*model.Technology, error)
	Update(id uuid.UUID, req dto.CreateTechnologyRequest) (*model.Technology, error)
	Delete(id uuid.UUID) (bool, error)
	Where(query any, args ...any) *gorm.DB
}

type technologyService struct {
	repo repository.Repository[model.Technology]
}

func NewTechnologyService(repo repository.Repository[model.Technology]) TechnologyService {
	return &technologyService{repo: repo}
}

func (s *technologyService) GetAll() ([]model.Technology, error) {
	var technologies []model.Technology
	if err := s.repo.Where("is_deleted = ?", false).Find(&technologies).Error; err != nil {
		log.Error().Err(err).Msg("Failed to get all technologies")
		return nil, err
	}
	return technologies, nil
}

func (s *technologyService) GetList(filter dto.Filter) (*dto.PaginatedList[model.Technology], error) {
	filter.Normalize()

	query := s.repo.Where("is_deleted = ?", false)
	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		log.Error().Err(err).Msg("Failed to count technologies")
		return nil, err
	}

	var items []model.Technology
	err := query.
		Order("created_at DESC").
		Offset((filter.PageIndex - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&items).Error
	if err != nil {
		log.Error().Err(err).Msg("Failed to get technology list")
		return nil, err
	}

	return &dto.PaginatedList[model.Technology]{
		Items:      items,
		TotalCount: totalCount,
		PageIndex:  filter.PageIndex,
		PageSize:   filter.PageSize,
	}, nil
}

func (s *technologyService) GetByID(id uuid.UUID) (*model.Technology, error) {
	technology, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("technology not found: %w", ErrNotFound)
		}
		return nil, err
	}
	if technology.IsDeleted {
		return nil, fmt.Errorf("technology not found: %w", ErrNotFound)
	}
	return technology, nil
}

func (s *technologyService) Create(req dto.CreateTechnologyRequest) (*model.Technology, error) {
	technology := model.Technology{}
	copier.Copy(&technology, &req)
	technology.ID = uuid.New()
	technology.CreatedAt = time.Now().UTC()
	technology.IsDeleted = false

	if err := s.repo.Create(&technology); err != nil {
		log.Error().Err(err).Msg("Failed to create technology")
		return nil, err
	}
	return &technology, nil
}

func (s *technologyService) Update(id uuid.UUID, req dto.CreateTechnologyRequest) (*model.Technology, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.TechnologyType = req.TechnologyType
	now := time.Now().UTC()
	existing.UpdatedAt = &now

	if err := s.repo.Update(existing); err != nil {
		log.Error().Err(err).Str("id", id.String()).Msg("Failed to update technology")
		return nil, err
	}
	return existing, nil
}

func (s *technologyService) Delete(id uuid.UUID) (bool, error) {
	technology, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if technology.IsDeleted {
		return false, nil
	}

	technology.IsDeleted = true
	now := time.Now().UTC()
	technology.UpdatedAt = &now

	if err := s.repo.Update(technology); err != nil {
		log.Error().Err(err).Str("id", id.String()).Msg("Failed to soft-delete technology")
		return false, err
	}
	return true, nil
}

func (s *technologyService) Where(query any, args ...any) *gorm.DB {
	return s.repo.Where(query, args...)
}
