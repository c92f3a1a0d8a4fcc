package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/awfaabdulkader/interior-architect-backend/internal/models"
	"github.com/awfaabdulkader/interior-architect-backend/internal/repositories"
	"github.com/awfaabdulkader/interior-architect-backend/internal/services/dto"
	"github.com/awfaabdulkader/interior-architect-backend/pkg/apperrors"
)

type EducationService interface {
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateEducationRequest) (*dto.EducationResponse, error)
	Get(ctx context.Context, db *gorm.DB, id string) (*dto.EducationResponse, error)
	List(ctx context.Context, db *gorm.DB) ([]dto.EducationResponse, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateEducationRequest) (*dto.EducationResponse, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type educationService struct {
	educationRepo repositories.EducationRepository
}

func NewEducationService(educationRepo repositories.EducationRepository) EducationService {
	return &educationService{educationRepo: educationRepo}
}

func (s *educationService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateEducationRequest) (*dto.EducationResponse, error) {
	education := &models.Education{
		Institution: req.Institution,
		Degree:      req.Degree,
		Field:       req.Field,
		StartYear:   req.StartYear,
		EndYear:     req.EndYear,
		Description: req.Description,
	}
	if err := s.educationRepo.Create(db, education); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := toEducationResponse(education)
	return &resp, nil
}

func (s *educationService) Get(ctx context.Context, db *gorm.DB, id string) (*dto.EducationResponse, error) {
	education, err := s.educationRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEducationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	resp := toEducationResponse(education)
	return &resp, nil
}

func (s *educationService) List(ctx context.Context, db *gorm.DB) ([]dto.EducationResponse, error) {
	entries, err := s.educationRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.EducationResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, toEducationResponse(&entries[i]))
	}
	return responses, nil
}

func (s *educationService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateEducationRequest) (*dto.EducationResponse, error) {
	education, err := s.educationRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEducationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Institution != nil {
		education.Institution = *req.Institution
	}
	if req.Degree != nil {
		education.Degree = *req.Degree
	}
	if req.Field != nil {
		education.Field = *req.Field
	}
	if req.StartYear != nil {
		education.StartYear = *req.StartYear
	}
	if req.EndYear != nil {
		education.EndYear = req.EndYear
	}
	if req.Description != nil {
		education.Description = *req.Description
	}

	if err := s.educationRepo.Update(db, education); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := toEducationResponse(education)
	return &resp, nil
}

func (s *educationService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if _, err := s.educationRepo.FindByID(db, id); err != nil {
		if errors.Is(err, repositories.ErrEducationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if err := s.educationRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func toEducationResponse(e *models.Education) dto.EducationResponse {
	return dto.EducationResponse{
		ID:          e.ID,
		Institution: e.Institution,
		Degree:      e.Degree,
		Field:       e.Field,
		StartYear:   e.StartYear,
		EndYear:     e.EndYear,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
