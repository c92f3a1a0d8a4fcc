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
	"github.com/awfaabdulkader/interior-architect-backend/pkg/retry"
)

const (
	categoryCachePrefix = "categories"

	// Writes invalidate this many leading pages of the cached listing.
	cachedPageWindow = 10

	// Only requests at the default page size are cached; the write-side
	// invalidation window can then stay a fixed set of keys.
	cachedPageSize = 20

	// Bounded retry around the category-delete reference check, to
	// absorb transient read contention before surfacing the error.
	deleteCheckAttempts = 3
	deleteCheckBackoff  = 100 * time.Millisecond
)

type CategoryService interface {
	Create(ctx context.Context, db *gorm.DB, items []dto.CategoryInput, covers []*multipart.FileHeader) ([]dto.CategoryResponse, error)
	Get(ctx context.Context, db *gorm.DB, id string) (*dto.CategoryResponse, error)
	List(ctx context.Context, db *gorm.DB, page, pageSize int) (*dto.PaginatedResponse, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateCategoryRequest, cover *multipart.FileHeader) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
	GetProjects(ctx context.Context, db *gorm.DB, id string) ([]dto.ProjectSummary, error)
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
	projectRepo  repositories.ProjectRepository
	store        storage.Storage
	resolver     *AssetResolver
	listCache    cache.Cache
	cacheTTL     time.Duration
	maxImageSize int64
}

func NewCategoryService(
	categoryRepo repositories.CategoryRepository,
	projectRepo repositories.ProjectRepository,
	store storage.Storage,
	listCache cache.Cache,
	cacheTTL time.Duration,
	maxImageSize int64,
) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		projectRepo:  projectRepo,
		store:        store,
		resolver:     NewAssetResolver(store),
		listCache:    listCache,
		cacheTTL:     cacheTTL,
		maxImageSize: maxImageSize,
	}
}

// Create accepts one or many categories. Cover files are matched to
// items by index; a missing cover leaves the slot empty.
func (s *categoryService) Create(ctx context.Context, db *gorm.DB, items []dto.CategoryInput, covers []*multipart.FileHeader) ([]dto.CategoryResponse, error) {
	if len(items) == 0 {
		return nil, apperrors.NewBadRequestError("At least one category is required")
	}

	// The name must be unique against the table and within the batch
	// itself, otherwise the second insert dies on the unique index.
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item.Name]; dup {
			return nil, apperrors.ErrConflict(nil, "category", "Category '"+item.Name+"' already exists")
		}
		seen[item.Name] = struct{}{}

		exists, err := s.categoryRepo.NameExists(db, item.Name)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if exists {
			return nil, apperrors.ErrConflict(nil, "category", "Category '"+item.Name+"' already exists")
		}
	}

	responses := make([]dto.CategoryResponse, 0, len(items))
	for i, item := range items {
		category := models.Category{
			Name:        item.Name,
			Description: item.Description,
		}

		// Store the binary first; the path is only written on success.
		if i < len(covers) && covers[i] != nil {
			path, err := storeUpload(ctx, s.store, covers[i], validator.AssetImage, s.maxImageSize, FolderCategoryCovers)
			if err != nil {
				return nil, err
			}
			category.Cover = path
		}

		if err := s.categoryRepo.Create(db, &category); err != nil {
			return nil, apperrors.InternalError(err)
		}
		responses = append(responses, s.toResponse(ctx, &category))
	}

	s.invalidateListCache(ctx)
	return responses, nil
}

func (s *categoryService) Get(ctx context.Context, db *gorm.DB, id string) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	resp := s.toResponse(ctx, category)
	return &resp, nil
}

func (s *categoryService) List(ctx context.Context, db *gorm.DB, page, pageSize int) (*dto.PaginatedResponse, error) {
	cacheable := pageSize == cachedPageSize
	key := cache.PageKey(categoryCachePrefix, page, pageSize)

	if cacheable {
		var cached dto.PaginatedResponse
		if err := s.listCache.Get(ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	categories, total, err := s.categoryRepo.FindPage(db, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, s.toResponse(ctx, &categories[i]))
	}

	result := &dto.PaginatedResponse{
		Data:     responses,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}

	if cacheable {
		if err := s.listCache.Set(ctx, key, result, s.cacheTTL); err != nil {
			logger.CtxWarn(ctx, "failed to cache category page", "key", key, "error", err.Error())
		}
	}
	return result, nil
}

func (s *categoryService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateCategoryRequest, cover *multipart.FileHeader) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil && *req.Name != category.Name {
		taken, err := s.categoryRepo.NameExistsExcluding(db, *req.Name, id)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if taken {
			return nil, apperrors.ErrConflict(nil, "category", "Category '"+*req.Name+"' already exists")
		}
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	// Replacing the cover: store the new binary, swap the path, then
	// delete the old one. A failed upload never destroys the old asset.
	oldCover := ""
	if cover != nil {
		path, err := storeUpload(ctx, s.store, cover, validator.AssetImage, s.maxImageSize, FolderCategoryCovers)
		if err != nil {
			return nil, err
		}
		oldCover = category.Cover
		category.Cover = path
	}

	if err := s.categoryRepo.Update(db, category); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if oldCover != "" {
		deleteBinary(ctx, s.store, oldCover)
	}

	s.invalidateListCache(ctx)
	resp := s.toResponse(ctx, category)
	return &resp, nil
}

// Delete refuses to remove a category that projects still reference
// and reports the blockers. The reference check retries briefly to
// ride out transient read contention.
func (s *categoryService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	category, err := s.categoryRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	var projectCount int64
	checkErr := retry.Do(deleteCheckAttempts, deleteCheckBackoff, func() error {
		var err error
		projectCount, err = s.categoryRepo.CountProjects(db, id)
		return err
	})
	if checkErr != nil {
		return apperrors.InternalError(checkErr)
	}

	if projectCount > 0 {
		projects, err := s.categoryRepo.FindProjects(db, id)
		if err != nil {
			return apperrors.InternalError(err)
		}

		refs := make([]dto.CategoryProjectRef, 0, len(projects))
		for _, p := range projects {
			refs = append(refs, dto.CategoryProjectRef{ID: p.ID, Name: p.Name})
		}

		return apperrors.ErrReferentialIntegrity("category",
			"Category still has projects and cannot be deleted",
			map[string]interface{}{
				"project_count": projectCount,
				"projects":      refs,
			})
	}

	// Binary first, best-effort; the row is the source of truth.
	deleteBinary(ctx, s.store, category.Cover)

	if err := s.categoryRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}

	s.invalidateListCache(ctx)
	return nil
}

func (s *categoryService) GetProjects(ctx context.Context, db *gorm.DB, id string) ([]dto.ProjectSummary, error) {
	if _, err := s.categoryRepo.FindByID(db, id); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	projects, err := s.projectRepo.FindByCategory(db, id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	summaries := make([]dto.ProjectSummary, 0, len(projects))
	for i := range projects {
		summaries = append(summaries, summarizeProject(ctx, s.resolver, &projects[i]))
	}
	return summaries, nil
}

func (s *categoryService) toResponse(ctx context.Context, category *models.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		Cover:       s.resolver.Resolve(ctx, category.Cover),
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

// invalidateListCache drops the first cachedPageWindow pages. Cache
// failures are logged and swallowed: stale pages expire on their own.
func (s *categoryService) invalidateListCache(ctx context.Context) {
	keys := cache.PageKeys(categoryCachePrefix, cachedPageWindow, cachedPageSize)
	if err := s.listCache.Delete(ctx, keys...); err != nil {
		logger.CtxWarn(ctx, "failed to invalidate category cache", "error", err.Error())
	}
}
