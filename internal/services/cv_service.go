package services

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"mime/multipart"
	"time"

	"gorm.io/gorm"

	"github.com/awfaabdulkader/interior-architect-backend/internal/models"
	"github.com/awfaabdulkader/interior-architect-backend/internal/repositories"
	"github.com/awfaabdulkader/interior-architect-backend/internal/services/dto"
	"github.com/awfaabdulkader/interior-architect-backend/internal/storage"
	"github.com/awfaabdulkader/interior-architect-backend/internal/validator"
	"github.com/awfaabdulkader/interior-architect-backend/pkg/apperrors"
)

type CvService interface {
	Create(ctx context.Context, db *gorm.DB, userID string, frFile, enFile *multipart.FileHeader) (*dto.CvResponse, error)
	Get(ctx context.Context, db *gorm.DB, id string) (*dto.CvResponse, error)
	List(ctx context.Context, db *gorm.DB) ([]dto.CvResponse, error)
	GetActive(ctx context.Context, db *gorm.DB) (*dto.CvResponse, error)
	Download(ctx context.Context, db *gorm.DB, id, language string) (*dto.CvDocument, error)
	Update(ctx context.Context, db *gorm.DB, id string, frFile, enFile *multipart.FileHeader) (*dto.CvResponse, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type cvService struct {
	cvRepo     repositories.CvRepository
	maxDocSize int64
}

func NewCvService(cvRepo repositories.CvRepository, maxDocSize int64) CvService {
	return &cvService{cvRepo: cvRepo, maxDocSize: maxDocSize}
}

// Create stores a CV for the user. One CV per user; a second create
// is a conflict, not a silent overwrite.
func (s *cvService) Create(ctx context.Context, db *gorm.DB, userID string, frFile, enFile *multipart.FileHeader) (*dto.CvResponse, error) {
	if frFile == nil && enFile == nil {
		return nil, apperrors.NewBadRequestError("At least one of cv_fr or cv_en is required")
	}

	exists, err := s.cvRepo.ExistsForUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrConflict(nil, "cv", "A CV already exists for this user")
	}

	cv := &models.Cv{UserID: userID}
	if err := s.fillSlot(cv, "fr", frFile); err != nil {
		return nil, err
	}
	if err := s.fillSlot(cv, "en", enFile); err != nil {
		return nil, err
	}

	if err := s.cvRepo.Create(db, cv); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := toCvResponse(cv)
	return &resp, nil
}

func (s *cvService) Get(ctx context.Context, db *gorm.DB, id string) (*dto.CvResponse, error) {
	cv, err := s.cvRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCvNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	resp := toCvResponse(cv)
	return &resp, nil
}

func (s *cvService) List(ctx context.Context, db *gorm.DB) ([]dto.CvResponse, error) {
	cvs, err := s.cvRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.CvResponse, 0, len(cvs))
	for i := range cvs {
		responses = append(responses, toCvResponse(&cvs[i]))
	}
	return responses, nil
}

// GetActive returns the most recently updated CV.
func (s *cvService) GetActive(ctx context.Context, db *gorm.DB) (*dto.CvResponse, error) {
	cv, err := s.cvRepo.FindLatest(db)
	if err != nil {
		if errors.Is(err, repositories.ErrCvNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	resp := toCvResponse(cv)
	return &resp, nil
}

func (s *cvService) Download(ctx context.Context, db *gorm.DB, id, language string) (*dto.CvDocument, error) {
	if language != "fr" && language != "en" {
		return nil, apperrors.NewBadRequestError("Language must be 'fr' or 'en'")
	}

	cv, err := s.cvRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCvNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	data, filename, mimeType, _, ok := cv.Slot(language)
	if !ok {
		return nil, apperrors.NewNotFoundError("CV " + language + " not available")
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.CvDocument{
		Filename: filename,
		MimeType: mimeType,
		Data:     raw,
	}, nil
}

// Update replaces whichever slots carry a new file and leaves the
// others untouched.
func (s *cvService) Update(ctx context.Context, db *gorm.DB, id string, frFile, enFile *multipart.FileHeader) (*dto.CvResponse, error) {
	cv, err := s.cvRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCvNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.fillSlot(cv, "fr", frFile); err != nil {
		return nil, err
	}
	if err := s.fillSlot(cv, "en", enFile); err != nil {
		return nil, err
	}

	if err := s.cvRepo.Update(db, cv); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := toCvResponse(cv)
	return &resp, nil
}

func (s *cvService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if _, err := s.cvRepo.FindByID(db, id); err != nil {
		if errors.Is(err, repositories.ErrCvNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if err := s.cvRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *cvService) fillSlot(cv *models.Cv, language string, file *multipart.FileHeader) error {
	if file == nil {
		return nil
	}

	if !validator.AllowedExtension(validator.AssetDocument, file.Filename) {
		return apperrors.ErrInvalidFileType.WithDetails(map[string]interface{}{
			"filename": file.Filename,
		})
	}
	if !validator.WithinSizeLimit(file.Size, s.maxDocSize) {
		return apperrors.ErrFileTooLarge.WithDetails(map[string]interface{}{
			"filename": file.Filename,
			"size":     file.Size,
			"max_size": s.maxDocSize,
		})
	}

	src, err := file.Open()
	if err != nil {
		return apperrors.ErrStorage(err, "failed to open uploaded file")
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		return apperrors.ErrStorage(err, "failed to read uploaded file")
	}

	now := time.Now()
	encoded := base64.StdEncoding.EncodeToString(raw)
	mimeType := storage.DetectMimeType(file.Filename)

	switch language {
	case "fr":
		cv.FrData = encoded
		cv.FrFilename = file.Filename
		cv.FrMimeType = mimeType
		cv.FrSize = int64(len(raw))
		cv.FrUploadedAt = &now
	case "en":
		cv.EnData = encoded
		cv.EnFilename = file.Filename
		cv.EnMimeType = mimeType
		cv.EnSize = int64(len(raw))
		cv.EnUploadedAt = &now
	}
	return nil
}

func toCvResponse(cv *models.Cv) dto.CvResponse {
	resp := dto.CvResponse{
		ID:        cv.ID,
		UserID:    cv.UserID,
		CreatedAt: cv.CreatedAt,
		UpdatedAt: cv.UpdatedAt,
	}
	if cv.FrData != "" {
		resp.Fr = &dto.CvSlotResponse{
			Filename:   cv.FrFilename,
			MimeType:   cv.FrMimeType,
			Size:       cv.FrSize,
			UploadedAt: cv.FrUploadedAt,
		}
	}
	if cv.EnData != "" {
		resp.En = &dto.CvSlotResponse{
			Filename:   cv.EnFilename,
			MimeType:   cv.EnMimeType,
			Size:       cv.EnSize,
			UploadedAt: cv.EnUploadedAt,
		}
	}
	return resp
}
