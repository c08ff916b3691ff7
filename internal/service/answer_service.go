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

type AnswerService interface {
	GetAll() ([]model.Answer, error)
	GetList(filter dto.Filter) (*dto.PaginatedList[model.Answer], error)
	GetByID(id uuid.UUID) (*dto.AnswerDetailDTO, error)
	Create(req dto.CreateAnswerRequest) (*model.Answer, error)
	Update(id uuid.UUID, req dto.CreateAnswerRequest) (*model.Answer, error)
	Delete(id uuid.UUID) (bool, error)
	Where(query any, args ...any) *gorm.DB
}

type answerService struct {
	repo repository.Repository[model.Answer]
}

func NewAnswerService(repo repository.Repository[model.Answer]) AnswerService {
	return &answerService{repo: repo}
}

func (s *answerService) GetAll() ([]model.Answer, error) {
	var answers []model.Answer
	if err := s.repo.Where("is_deleted = ?", false).Find(&answers).Error; err != nil {
		log.Error().Err(err).Msg("Failed to get all answers")
		return nil, err
	}
	return answers, nil
}

func (s *answerService) GetList(filter dto.Filter) (*dto.PaginatedList[model.Answer], error) {
	filter.Normalize()

	query := s.repo.Where("is_deleted = ?", false)
	if filter.Query != "" {
		query = query.Where("content LIKE ?", "%"+filter.Query+"%")
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		log.Error().Err(err).Msg("Failed to count answers")
		return nil, err
	}

	var items []model.Answer
	err := query.
		Order("created_at DESC").
		Offset((filter.PageIndex - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&items).Error
	if err != nil {
		log.Error().Err(err).Msg("Failed to get answer list")
		return nil, err
	}

	return &dto.PaginatedList[model.Answer]{
		Items:      items,
		TotalCount: totalCount,
		PageIndex:  filter.PageIndex,
		PageSize:   filter.PageSize,
	}, nil
}

func (s *answerService) GetByID(id uuid.UUID) (*dto.AnswerDetailDTO, error) {
	answer, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("answer not found: %w", ErrNotFound)
		}
		return nil, err
	}
	if answer.IsDeleted {
		return nil, fmt.Errorf("answer not found: %w", ErrNotFound)
	}
	return &dto.AnswerDetailDTO{Content: answer.Content}, nil
}

func (s *answerService) Create(req dto.CreateAnswerRequest) (*model.Answer, error) {
	answer := model.Answer{}
	copier.Copy(&answer, &req)
	answer.ID = uuid.New()
	answer.CreatedAt = time.Now().UTC()
	answer.IsDeleted = false

	if err := s.repo.Create(&answer); err != nil {
		log.Error().Err(err).Msg("Failed to create answer")
		return nil, err
	}
	return &answer, nil
}

func (s *answerService) Update(id uuid.UUID, req dto.CreateAnswerRequest) (*model.Answer, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("answer not found: %w", ErrNotFound)
		}
		return nil, err
	}
	if existing.IsDeleted {
		return nil, fmt.Errorf("answer not found: %w", ErrNotFound)
	}

	existing.Content = req.Content
	existing.QuestionID = req.QuestionID
	now := time.Now().UTC()
	existing.UpdatedAt = &now

	if err := s.repo.Update(existing); err != nil {
		log.Error().Err(err).Str("id", id.String()).Msg("Failed to update answer")
		return nil, err
	}
	return existing, nil
}

func (s *answerService) Delete(id uuid.UUID) (bool, error) {
	answer, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if answer.IsDeleted {
		return false, nil
	}

	answer.IsDeleted = true
	now := time.Now().UTC()
	answer.UpdatedAt = &now

	if err := s.repo.Update(answer); err != nil {
		log.Error().Err(err).Str("id", id.String()).Msg("Failed to soft-delete answer")
		return false, err
	}
	return true, nil
}

func (s *answerService) Where(query any, args ...any) *gorm.DB {
	return s.repo.Where(query, args...)
}
