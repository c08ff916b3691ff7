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

type AssetService interface {
	GetAll() ([]model.Asset, error)
	GetList(filter dto.Filter) (*dto.PaginatedList[model.Asset], error)
	GetByID(id uuid.UUID) (*model.Asset, error)
	Create(req dto.CreateAssetRequest) (*model.Asset, error)
	Update(id uuid.UUID, req dto.CreateAssetRequest) (*model.Asset, error)
	Delete(id uuid.UUID) (bool, error)
	Where(query any, args ...any) *gorm.DB
}

type assetService struct {
	repo repository.Repository[model.Asset]
}

func NewAssetService(repo repository.Repository[model.Asset]) AssetService {
	return &assetService{repo: repo}
}

func (s *assetService) GetAll() ([]model.Asset, error) {
	var assets []model.Asset
	if err := s.repo.Where("is_deleted = ?", false).Find(&assets).Error; err != nil {
		log.Error().Err(err).Msg("Failed to get all assets")
		return nil, err
	}
	return assets, nil
}

func (s *assetService) GetList(filter dto.Filter) (*dto.PaginatedList[model.Asset], error) {
	filter.Normalize()

	query := s.repo.Where("is_deleted = ?", false)
	if filter.Query != "" {
		query = query.Where("file_name LIKE ?", "%"+filter.Query+"%")
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		log.Error().Err(err).Msg("Failed to count assets")
		return nil, err
	}

	var items []model.Asset
	err := query.
		Order("created_at DESC").
		Offset((filter.PageIndex - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&items).Error
	if err != nil {
		log.Error().Err(err).Msg("Failed to get asset list")
		return nil, err
	}

	return &dto.PaginatedList[model.Asset]{
		Items:      items,
		TotalCount: totalCount,
		PageIndex:  filter.PageIndex,
		PageSize:   filter.PageSize,
	}, nil
}

func (s *assetService) GetByID(id uuid.UUID) (*model.Asset, error) {
	asset, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("asset not found: %w", ErrNotFound)
		}
		return nil, err
	}
	if asset.IsDeleted {
		return nil, fmt.Errorf("asset not found: %w", ErrNotFound)
	}
	return asset, nil
}

func (s *assetService) Create(req dto.CreateAssetRequest) (*model.Asset, error) {
	asset := model.Asset{}
	copier.Copy(&asset, &req)
	asset.ID = uuid.New()
	asset.CreatedAt = time.Now().UTC()
	asset.IsDeleted = false

	if err := s.repo.Create(&asset); err != nil {
		log.Error().Err(err).Msg("Failed to create asset")
		return nil, err
	}
	return &asset, nil
}

func (s *assetService) Update(id uuid.UUID, req dto.CreateAssetRequest) (*model.Asset, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	existing.ParentID = req.ParentID
	existing.FileName = req.FileName
	existing.FileType = req.FileType
	existing.FileURL = req.FileURL
	now := time.Now().UTC()
	existing.UpdatedAt = &now

	if err := s.repo.Update(existing); err != nil {
		log.Error().Err(err).Str("id", id.String()).Msg("Failed to update asset")
		return nil, err
	}
	return existing, nil
}

func (s *assetService) Delete(id uuid.UUID) (bool, error) {
	asset, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if asset.IsDeleted {
		return false, nil
	}

	asset.IsDeleted = true
	now := time.Now().UTC()
	asset.UpdatedAt = &now

	if err := s.repo.Update(asset); err != nil {
		log.Error().Err(err).Str("id", id.String()).Msg("Failed to soft-delete asset")
		return false, err
	}
	return true, nil
}

func (s *assetService) Where(query any, args ...any) *gorm.DB {
	return s.repo.Where(query, args...)
}
