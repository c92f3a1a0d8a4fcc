package services

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"gorm.io/gorm"

	"github.com/awfaabdulkader/interior-architect-backend/internal/cache"
	"github.com/awfaabdulkader/interior-architect-backend/internal/logger"
	"github.com/awfaabdulkader/interior-architect-backend/internal/models"
	"github.com/awfaabdulkader/interior-architect-backend/internal/repositories"
	"github.com/awfaabdulkader/interior-architect-backend/internal/services/dto"
	"github.com/awfaabdulkader/interior-architect-backend/internal/storage"
	"github.com/awfaabdulkader/interior-architect-backend/internal/validator"
	"github.com/awfaabdulkader/interior-architect-backend/pkg/apperrors"
)

const skillCacheKey = "skills_all"

type SkillService interface {
	Create(ctx context.Context, db *gorm.DB, items []dto.SkillInput, logos []*multipart.FileHeader) ([]dto.SkillResponse, error)
	Get(ctx context.Context, db *gorm.DB, id string) (*dto.SkillResponse, error)
	List(ctx context.Context, db *gorm.DB) ([]dto.SkillResponse, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateSkillRequest, logo *multipart.FileHeader) (*dto.SkillResponse, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
	BulkDelete(ctx context.Context, db *gorm.DB, ids []string) (int64, error)
}

type skillService struct {
	skillRepo    repositories.SkillRepository
	store        storage.Storage
	resolver     *AssetResolver
	listCache    cache.Cache
	cacheTTL     time.Duration
	maxImageSize int64
}

func NewSkillService(
	skillRepo repositories.SkillRepository,
	store storage.Storage,
	listCache cache.Cache,
	cacheTTL time.Duration,
	maxImageSize int64,
) SkillService {
	return &skillService{
		skillRepo:    skillRepo,
		store:        store,
		resolver:     NewAssetResolver(store),
		listCache:    listCache,
		cacheTTL:     cacheTTL,
		maxImageSize: maxImageSize,
	}
}

// Create accepts one or many skills with logo files matched by index.
func (s *skillService) Create(ctx context.Context, db *gorm.DB, items []dto.SkillInput, logos []*multipart.FileHeader) ([]dto.SkillResponse, error) {
	if len(items) == 0 {
		return nil, apperrors.NewBadRequestError("At least one skill is required")
	}

	responses := make([]dto.SkillResponse, 0, len(items))
	for i, item := range items {
		skill := models.Skill{Name: item.Name}

		if i < len(logos) && logos[i] != nil {
			path, err := storeUpload(ctx, s.store, logos[i], validator.AssetImage, s.maxImageSize, FolderSkills)
			if err != nil {
				return nil, err
			}
			skill.Logo = path
		}

		duplicate, err := s.skillRepo.DuplicateExists(db, skill.Name, skill.Logo)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if duplicate {
			deleteBinary(ctx, s.store, skill.Logo)
			return nil, apperrors.ErrConflict(nil, "skill", "Skill '"+item.Name+"' already exists")
		}

		if err := s.skillRepo.Create(db, &skill); err != nil {
			return nil, apperrors.InternalError(err)
		}
		responses = append(responses, s.toResponse(ctx, &skill))
	}

	s.invalidateListCache(ctx)
	return responses, nil
}

func (s *skillService) Get(ctx context.Context, db *gorm.DB, id string) (*dto.SkillResponse, error) {
	skill, err := s.skillRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSkillNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	resp := s.toResponse(ctx, skill)
	return &resp, nil
}

func (s *skillService) List(ctx context.Context, db *gorm.DB) ([]dto.SkillResponse, error) {
	var cached []dto.SkillResponse
	if err := s.listCache.Get(ctx, skillCacheKey, &cached); err == nil {
		return cached, nil
	}

	skills, err := s.skillRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.SkillResponse, 0, len(skills))
	for i := range skills {
		responses = append(responses, s.toResponse(ctx, &skills[i]))
	}

	if err := s.listCache.Set(ctx, skillCacheKey, responses, s.cacheTTL); err != nil {
		logger.CtxWarn(ctx, "failed to cache skill list", "error", err.Error())
	}
	return responses, nil
}

func (s *skillService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateSkillRequest, logo *multipart.FileHeader) (*dto.SkillResponse, error) {
	skill, err := s.skillRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSkillNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		skill.Name = *req.Name
	}

	// Store-then-swap-then-delete-old, same as every other asset.
	oldLogo := ""
	if logo != nil {
		path, err := storeUpload(ctx, s.store, logo, validator.AssetImage, s.maxImageSize, FolderSkills)
		if err != nil {
			return nil, err
		}
		oldLogo = skill.Logo
		skill.Logo = path
	}

	if err := s.skillRepo.Update(db, skill); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if oldLogo != "" {
		deleteBinary(ctx, s.store, oldLogo)
	}

	s.invalidateListCache(ctx)
	resp := s.toResponse(ctx, skill)
	return &resp, nil
}

func (s *skillService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	skill, err := s.skillRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSkillNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	deleteBinary(ctx, s.store, skill.Logo)

	if err := s.skillRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}

	s.invalidateListCache(ctx)
	return nil
}

func (s *skillService) BulkDelete(ctx context.Context, db *gorm.DB, ids []string) (int64, error) {
	var deleted int64
	for _, id := range ids {
		err := s.Delete(ctx, db, id)
		if err != nil {
			var appErr *apperrors.AppError
			if apperrors.As(err, &appErr) && appErr.Code == apperrors.CodeNotFound {
				continue
			}
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}

func (s *skillService) toResponse(ctx context.Context, skill *models.Skill) dto.SkillResponse {
	return dto.SkillResponse{
		ID:        skill.ID,
		Name:      skill.Name,
		Logo:      s.resolver.Resolve(ctx, skill.Logo),
		CreatedAt: skill.CreatedAt,
		UpdatedAt: skill.UpdatedAt,
	}
}

func (s *skillService) invalidateListCache(ctx context.Context) {
	if err := s.listCache.Delete(ctx, skillCacheKey); err != nil {
		logger.CtxWarn(ctx, "failed to invalidate skill cache", "error", err.Error())
	}
}
