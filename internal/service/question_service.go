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

type QuestionService interface {
	GetAll() ([]model.Question, error)
	GetList(filter dto.QuestionFilter) (*dto.PaginatedList[dto.QuestionListDTO], error)
	GetByID(id uuid.UUID) (*dto.QuestionDetailDTO, error)
	Create(req dto.CreateQuestionRequest) (*model.Question, error)
	Update(id uuid.UUID, req dto.CreateQuestionRequest) (*model.Question, error)
	Delete(id uuid.UUID) (bool, error)
	Where(query any, args ...any) *gorm.DB
}

type questionService struct {
	repo          repository.Repository[model.Question]
	answerSvc     AnswerService
	technologySvc TechnologyService
	db            *gorm.DB // for the question+answer create transaction
}

func NewQuestionService(
	repo repository.Repository[model.Question],
	answerSvc AnswerService,
	technologySvc TechnologyService,
	db *gorm.DB,
) QuestionService {
	return &questionService{
		repo:          repo,
		answerSvc:     answerSvc,
		technologySvc: technologySvc,
		db:            db,
	}
}

func (s *questionService) GetAll() ([]model.Question, error) {
	var questions []model.Question
	if err := s.repo.Where("is_deleted = ?", false).Find(&questions).Error; err != nil {
		log.Error().Err(err).Msg("Failed to get all questions")
		return nil, err
	}
	return questions, nil
}

// GetList paginates questions and merges in technology names in memory,
// since the repository layer has no cross-entity query capability. A
// dangling technology reference keeps the row with an empty name so the
// page size stays consistent with TotalCount.
func (s *questionService) GetList(filter dto.QuestionFilter) (*dto.PaginatedList[dto.QuestionListDTO], error) {
	filter.Normalize()

	query := s.repo.Where("is_deleted = ?", false)
	if filter.Query != "" {
		query = query.Where("title LIKE ?", "%"+filter.Query+"%")
	}
	if filter.TechnologyID != nil {
		query = query.Where("technology_id = ?", *filter.TechnologyID)
	}
	if filter.DifficultyLevel != nil {
		query = query.Where("difficulty_level = ?", *filter.DifficultyLevel)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		log.Error().Err(err).Msg("Failed to count questions")
		return nil, err
	}

	var questions []model.Question
	err := query.
		Order("created_at DESC").
		Offset((filter.PageIndex - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&questions).Error
	if err != nil {
		log.Error().Err(err).Msg("Failed to get question list")
		return nil, err
	}

	var technologies []model.Technology
	if err := s.technologySvc.Where("is_deleted = ?", false).Find(&technologies).Error; err != nil {
		log.Error().Err(err).Msg("Failed to load technologies for question list join")
		return nil, err
	}
	nameByID := make(map[uuid.UUID]string, len(technologies))
	for _, t := range technologies {
		nameByID[t.ID] = t.Name
	}

	items := make([]dto.QuestionListDTO, 0, len(questions))
	for _, q := range questions {
		items = append(items, dto.QuestionListDTO{
			ID:              q.ID,
			Title:           q.Title,
			TechnologyName:  nameByID[q.TechnologyID],
			DifficultyLevel: q.DifficultyLevel,
			CreatedAt:       q.CreatedAt,
		})
	}

	return &dto.PaginatedList[dto.QuestionListDTO]{
		Items:      items,
		TotalCount: totalCount,
		PageIndex:  filter.PageIndex,
		PageSize:   filter.PageSize,
	}, nil
}

// GetByID joins the question with its technology and the first non-deleted
// answer, flattening both into the detail DTO. Either join may miss.
func (s *questionService) GetByID(id uuid.UUID) (*dto.QuestionDetailDTO, error) {
	question, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question not found: %w", ErrNotFound)
		}
		return nil, err
	}
	if question.IsDeleted {
		return nil, fmt.Errorf("question not found: %w", ErrNotFound)
	}

	detail := &dto.QuestionDetailDTO{
		Title:           question.Title,
		Description:     question.Description,
		TechnologyID:    question.TechnologyID,
		DifficultyLevel: question.DifficultyLevel,
	}

	var answer model.Answer
	err = s.answerSvc.
		Where("is_deleted = ? AND question_id = ?", false, id).
		Order("created_at ASC").
		First(&answer).Error
	if err == nil {
		answerID := answer.ID
		detail.AnswerID = &answerID
		detail.AnswerContent = answer.Content
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(err).Str("id", id.String()).Msg("Failed to join answer for question detail")
		return nil, err
	}

	var technology model.Technology
	err = s.technologySvc.
		Where("is_deleted = ? AND id = ?", false, question.TechnologyID).
		First(&technology).Error
	if err == nil {
		detail.TechnologyName = technology.Name
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(err).Str("id", id.String()).Msg("Failed to join technology for question detail")
		return nil, err
	}

	return detail, nil
}

// Create persists the question together with its companion empty answer in
// a single transaction, so a failure cannot leave an orphan of either kind.
func (s *questionService) Create(req dto.CreateQuestionRequest) (*model.Question, error) {
	if _, err := s.technologySvc.GetByID(req.TechnologyID); err != nil {
		log.Warn().Err(err).Str("technologyId", req.TechnologyID.String()).Msg("Invalid technology reference on question create")
		return nil, fmt.Errorf("invalid technologyId %s: %w", req.TechnologyID, err)
	}

	question := model.Question{}
	copier.Copy(&question, &req)
	question.ID = uuid.New()
	question.CreatedAt = time.Now().UTC()
	question.IsDeleted = false

	answer := model.Answer{
		BaseField: model.BaseField{
			ID:        uuid.New(),
			CreatedAt: question.CreatedAt,
		},
		QuestionID: question.ID,
		Content:    "",
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
		return tx.Create(&answer).Error
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create question with companion answer")
		return nil, err
	}
	return &question, nil
}

func (s *questionService) Update(id uuid.UUID, req dto.CreateQuestionRequest) (*model.Question, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question not found: %w", ErrNotFound)
		}
		return nil, err
	}
	if existing.IsDeleted {
		return nil, fmt.Errorf("question not found: %w", ErrNotFound)
	}

	if req.TechnologyID != existing.TechnologyID {
		if _, err := s.technologySvc.GetByID(req.TechnologyID); err != nil {
			return nil, fmt.Errorf("invalid technologyId %s: %w", req.TechnologyID, err)
		}
	}

	existing.Title = req.Title
	existing.Description = req.Description
	existing.TechnologyID = req.TechnologyID
	existing.DifficultyLevel = req.DifficultyLevel
	now := time.Now().UTC()
	existing.UpdatedAt = &now

	if err := s.repo.Update(existing); err != nil {
		log.Error().Err(err).Str("id", id.String()).Msg("Failed to update question")
		return nil, err
	}
	return existing, nil
}

func (s *questionService) Delete(id uuid.UUID) (bool, error) {
	question, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if question.IsDeleted {
		return false, nil
	}

	question.IsDeleted = true
	now := time.Now().UTC()
	question.UpdatedAt = &now

	if err := s.repo.Update(question); err != nil {
		log.Error().Err(err).Str("id", id.String()).Msg("Failed to soft-delete question")
		return false, err
	}
	return true, nil
}

func (s *questionService) Where(query any, args ...any) *gorm.DB {
	return s.repo.Where(query, args...)
}
