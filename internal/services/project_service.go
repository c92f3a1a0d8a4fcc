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

const projectCachePrefix = "projects"

type ProjectService interface {
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateProjectRequest, images []*multipart.FileHeader) (*dto.ProjectResponse, error)
	Get(ctx context.Context, db *gorm.DB, id string) (*dto.ProjectResponse, error)
	List(ctx context.Context, db *gorm.DB, page, pageSize int) (*dto.PaginatedResponse, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateProjectRequest, newImages []*multipart.FileHeader) (*dto.ProjectResponse, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
	BulkDelete(ctx context.Context, db *gorm.DB, ids []string) (int64, error)

	AddImage(ctx context.Context, db *gorm.DB, projectID string, file *multipart.FileHeader, isCover bool) (*dto.ProjectImageResponse, error)
	DeleteImage(ctx context.Context, db *gorm.DB, projectID, imageID string) error
	SetCover(ctx context.Context, db *gorm.DB, projectID, imageID string) error
}

type projectService struct {
	projectRepo  repositories.ProjectRepository
	categoryRepo repositories.CategoryRepository
	store        storage.Storage
	resolver     *AssetResolver
	listCache    cache.Cache
	cacheTTL     time.Duration
	maxImageSize int64
}

func NewProjectService(
	projectRepo repositories.ProjectRepository,
	categoryRepo repositories.CategoryRepository,
	store storage.Storage,
	listCache cache.Cache,
	cacheTTL time.Duration,
	maxImageSize int64,
) ProjectService {
	return &projectService{
		projectRepo:  projectRepo,
		categoryRepo: categoryRepo,
		store:        store,
		resolver:     NewAssetResolver(store),
		listCache:    listCache,
		cacheTTL:     cacheTTL,
		maxImageSize: maxImageSize,
	}
}

func (s *projectService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateProjectRequest, images []*multipart.FileHeader) (*dto.ProjectResponse, error) {
	if _, err := s.categoryRepo.FindByID(db, req.CategoryID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	duplicate, err := s.projectRepo.DuplicateExists(db, req.Name, req.Description, req.CategoryID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if duplicate {
		return nil, apperrors.ErrConflict(nil, "project", "An identical project already exists in this category")
	}

	// All binaries go in before any row is written, so a failed
	// upload aborts cleanly with at worst a few orphaned blobs.
	paths := make([]string, 0, len(images))
	for _, file := range images {
		path, err := storeUpload(ctx, s.store, file, validator.AssetImage, s.maxImageSize, FolderProjects)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	project := &models.Project{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	}
	if err := s.projectRepo.Create(db, project); err != nil {
		return nil, apperrors.InternalError(err)
	}

	for _, path := range paths {
		image := &models.ProjectImage{ProjectID: project.ID, Path: path}
		if err := s.projectRepo.AddImage(db, image); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	s.invalidateListCache(ctx)
	return s.Get(ctx, db, project.ID)
}

func (s *projectService) Get(ctx context.Context, db *gorm.DB, id string) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	resp := s.toResponse(ctx, project)
	return &resp, nil
}

func (s *projectService) List(ctx context.Context, db *gorm.DB, page, pageSize int) (*dto.PaginatedResponse, error) {
	cacheable := pageSize == cachedPageSize
	key := cache.PageKey(projectCachePrefix, page, pageSize)

	if cacheable {
		var cached dto.PaginatedResponse
		if err := s.listCache.Get(ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	projects, total, err := s.projectRepo.FindPage(db, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	summaries := make([]dto.ProjectSummary, 0, len(projects))
	for i := range projects {
		summaries = append(summaries, summarizeProject(ctx, s.resolver, &projects[i]))
	}

	result := &dto.PaginatedResponse{
		Data:     summaries,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}

	if cacheable {
		if err := s.listCache.Set(ctx, key, result, s.cacheTTL); err != nil {
			logger.CtxWarn(ctx, "failed to cache project page", "key", key, "error", err.Error())
		}
	}
	return result, nil
}

// Update edits the project's fields. When newImages is non-empty the
// whole image set is replaced: new binaries are stored and rows
// swapped before any old binary is deleted.
func (s *projectService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateProjectRequest, newImages []*multipart.FileHeader) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(db, *req.CategoryID); err != nil {
			if errors.Is(err, repositories.ErrCategoryNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.InternalError(err)
		}
		project.CategoryID = *req.CategoryID
	}

	var newPaths []string
	for _, file := range newImages {
		path, err := storeUpload(ctx, s.store, file, validator.AssetImage, s.maxImageSize, FolderProjects)
		if err != nil {
			return nil, err
		}
		newPaths = append(newPaths, path)
	}

	oldImages := project.Images
	project.Images = nil
	if err := s.projectRepo.Update(db, project); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if len(newPaths) > 0 {
		for _, img := range oldImages {
			if err := s.projectRepo.DeleteImage(db, img.ID); err != nil {
				return nil, apperrors.InternalError(err)
			}
		}
		for _, path := range newPaths {
			image := &models.ProjectImage{ProjectID: project.ID, Path: path}
			if err := s.projectRepo.AddImage(db, image); err != nil {
				return nil, apperrors.InternalError(err)
			}
		}
		// Old binaries go last, best-effort.
		for _, img := range oldImages {
			deleteBinary(ctx, s.store, img.Path)
		}
	}

	s.invalidateListCache(ctx)
	return s.Get(ctx, db, project.ID)
}

func (s *projectService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	project, err := s.projectRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	for _, img := range project.Images {
		deleteBinary(ctx, s.store, img.Path)
	}

	if err := s.projectRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}

	s.invalidateListCache(ctx)
	return nil
}

func (s *projectService) BulkDelete(ctx context.Context, db *gorm.DB, ids []string) (int64, error) {
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

func (s *projectService) AddImage(ctx context.Context, db *gorm.DB, projectID string, file *multipart.FileHeader, isCover bool) (*dto.ProjectImageResponse, error) {
	if _, err := s.projectRepo.FindByID(db, projectID); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	path, err := storeUpload(ctx, s.store, file, validator.AssetImage, s.maxImageSize, FolderProjects)
	if err != nil {
		return nil, err
	}

	image := &models.ProjectImage{ProjectID: projectID, Path: path}
	if err := s.projectRepo.AddImage(db, image); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if isCover {
		if err := s.projectRepo.SetCover(db, projectID, image.ID); err != nil {
			return nil, apperrors.InternalError(err)
		}
		image.IsCover = true
	}

	s.invalidateListCache(ctx)
	resp := dto.ProjectImageResponse{
		ID:        image.ID,
		Path:      image.Path,
		Image:     s.resolver.Resolve(ctx, image.Path),
		IsCover:   image.IsCover,
		CreatedAt: image.CreatedAt,
	}
	return &resp, nil
}

func (s *projectService) DeleteImage(ctx context.Context, db *gorm.DB, projectID, imageID string) error {
	image, err := s.projectRepo.FindImage(db, projectID, imageID)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectImageNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	deleteBinary(ctx, s.store, image.Path)

	if err := s.projectRepo.DeleteImage(db, imageID); err != nil {
		return apperrors.InternalError(err)
	}

	s.invalidateListCache(ctx)
	return nil
}

func (s *projectService) SetCover(ctx context.Context, db *gorm.DB, projectID, imageID string) error {
	if _, err := s.projectRepo.FindByID(db, projectID); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if err := s.projectRepo.SetCover(db, projectID, imageID); err != nil {
		if errors.Is(err, repositories.ErrProjectImageNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	s.invalidateListCache(ctx)
	return nil
}

func (s *projectService) toResponse(ctx context.Context, project *models.Project) dto.ProjectResponse {
	images := make([]dto.ProjectImageResponse, 0, len(project.Images))
	for _, img := range project.Images {
		images = append(images, dto.ProjectImageResponse{
			ID:        img.ID,
			Path:      img.Path,
			Image:     s.resolver.Resolve(ctx, img.Path),
			IsCover:   img.IsCover,
			CreatedAt: img.CreatedAt,
		})
	}

	resp := dto.ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		CategoryID:  project.CategoryID,
		Images:      images,
		Cover:       resolveCover(ctx, s.resolver, project.Images),
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}

	if project.Category != nil {
		resp.Category = &dto.CategoryResponse{
			ID:          project.Category.ID,
			Name:        project.Category.Name,
			Description: project.Category.Description,
			Cover:       s.resolver.Resolve(ctx, project.Category.Cover),
			CreatedAt:   project.Category.CreatedAt,
			UpdatedAt:   project.Category.UpdatedAt,
		}
	}
	return resp
}

func (s *projectService) invalidateListCache(ctx context.Context) {
	keys := cache.PageKeys(projectCachePrefix, cachedPageWindow, cachedPageSize)
	if err := s.listCache.Delete(ctx, keys...); err != nil {
		logger.CtxWarn(ctx, "failed to invalidate project cache", "error", err.Error())
	}
}

// summarizeProject builds the listing view: only the selected cover
// image is resolved.
func summarizeProject(ctx context.Context, resolver *AssetResolver, project *models.Project) dto.ProjectSummary {
	return dto.ProjectSummary{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		CategoryID:  project.CategoryID,
		Cover:       resolveCover(ctx, resolver, project.Images),
		CreatedAt:   project.CreatedAt,
	}
}

func resolveCover(ctx context.Context, resolver *AssetResolver, images []models.ProjectImage) *string {
	cover := models.SelectCover(images)
	if cover == nil {
		return nil
	}
	return resolver.Resolve(ctx, cover.Path)
}
