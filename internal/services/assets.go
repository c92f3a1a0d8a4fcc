package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/awfaabdulkader/interior-architect-backend/internal/logger"
	"github.com/awfaabdulkader/interior-architect-backend/internal/storage"
	"github.com/awfaabdulkader/interior-architect-backend/internal/validator"
	"github.com/awfaabdulkader/interior-architect-backend/pkg/apperrors"
)

// Folder namespaces inside the binary store.
const (
	FolderCategoryCovers = "category_covers"
	FolderProjects       = "projects"
	FolderSkills         = "skills"
)

// AssetResolver turns stored paths into client-consumable
// representations and hides backend failures behind nulls.
type AssetResolver struct {
	store storage.Storage
}

func NewAssetResolver(store storage.Storage) *AssetResolver {
	return &AssetResolver{store: store}
}

// Resolve maps a path to its representation. A dangling path resolves
// to nil: a broken reference degrades the field, never the response.
func (r *AssetResolver) Resolve(ctx context.Context, path string) *string {
	if path == "" {
		return nil
	}

	resolved, err := r.store.Resolve(ctx, path)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.CtxWarn(ctx, "failed to resolve asset", "path", path, "error", err.Error())
		}
		return nil
	}
	return &resolved
}

// storeUpload validates a multipart file against its asset class and
// size limit, then writes it to the binary store.
func storeUpload(ctx context.Context, store storage.Storage, file *multipart.FileHeader, class validator.AssetClass, maxSize int64, folder string) (string, error) {
	if !validator.AllowedExtension(class, file.Filename) {
		return "", apperrors.ErrInvalidFileType.WithDetails(map[string]interface{}{
			"filename": file.Filename,
		})
	}
	if !validator.WithinSizeLimit(file.Size, maxSize) {
		return "", apperrors.ErrFileTooLarge.WithDetails(map[string]interface{}{
			"filename": file.Filename,
			"size":     file.Size,
			"max_size": maxSize,
		})
	}

	src, err := file.Open()
	if err != nil {
		return "", apperrors.ErrStorage(err, "failed to open uploaded file")
	}
	defer src.Close()

	path, err := store.Save(ctx, src, file.Filename, folder)
	if err != nil {
		return "", apperrors.ErrStorage(err, fmt.Sprintf("failed to store %s", file.Filename))
	}
	return path, nil
}

// deleteBinary is the best-effort deletion used after an entity row is
// already gone or replaced. Failures are logged, never propagated.
func deleteBinary(ctx context.Context, store storage.Storage, path string) {
	if path == "" {
		return
	}
	if _, err := store.Delete(ctx, path); err != nil {
		logger.CtxWarn(ctx, "failed to delete binary, leaving orphan", "path", path, "error", err.Error())
	}
}
