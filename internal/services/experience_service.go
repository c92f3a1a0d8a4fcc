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

type ExperienceService interface {
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateExperienceRequest) (*dto.ExperienceResponse, error)
	Get(ctx context.Context, db *gorm.DB, id string) (*dto.ExperienceResponse, error)
	List(ctx context.Context, db *gorm.DB) ([]dto.ExperienceResponse, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateExperienceRequest) (*dto.ExperienceResponse, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type experienceService struct {
	experienceRepo repositories.ExperienceRepository
}

func NewExperienceService(experienceRepo repositories.ExperienceRepository) ExperienceService {
	return &experienceService{experienceRepo: experienceRepo}
}

func (s *experienceService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateExperienceRequest) (*dto.ExperienceResponse, error) {
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return nil, apperrors.NewBadRequestError("end_date cannot be before start_date")
	}

	experience := &models.Experience{
		Company:     req.Company,
		Position:    req.Position,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
	}
	if err := s.experienceRepo.Create(db, experience); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := toExperienceResponse(experience)
	return &resp, nil
}

func (s *experienceService) Get(ctx context.Context, db *gorm.DB, id string) (*dto.ExperienceResponse, error) {
	experience, err := s.experienceRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrExperienceNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	resp := toExperienceResponse(experience)
	return &resp, nil
}

func (s *experienceService) List(ctx context.Context, db *gorm.DB) ([]dto.ExperienceResponse, error) {
	entries, err := s.experienceRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.ExperienceResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, toExperienceResponse(&entries[i]))
	}
	return responses, nil
}

func (s *experienceService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateExperienceRequest) (*dto.ExperienceResponse, error) {
	experience, err := s.experienceRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrExperienceNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Company != nil {
		experience.Company = *req.Company
	}
	if req.Position != nil {
		experience.Position = *req.Position
	}
	if req.StartDate != nil {
		experience.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		experience.EndDate = req.EndDate
	}
	if req.Description != nil {
		experience.Description = *req.Description
	}

	if experience.EndDate != nil && experience.EndDate.Before(experience.StartDate) {
		return nil, apperrors.NewBadRequestError("end_date cannot be before start_date")
	}

	if err := s.experienceRepo.Update(db, experience); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := toExperienceResponse(experience)
	return &resp, nil
}

func (s *experienceService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if _, err := s.experienceRepo.FindByID(db, id); err != nil {
		if errors.Is(err, repositories.ErrExperienceNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if err := s.experienceRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func toExperienceResponse(e *models.Experience) dto.ExperienceResponse {
	return dto.ExperienceResponse{
		ID:          e.ID,
		Company:     e.Company,
		Position:    e.Position,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
