package storage

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"github.com/awfaabdulkader/interior-architect-backend/internal/models"
)

// DatabaseStorage keeps binaries as base64 rows in the stored_files
// table. Self-contained: no disk, no external bucket.
type DatabaseStorage struct {
	db      *gorm.DB
	baseURL string
}

func NewDatabaseStorage(db *gorm.DB, baseURL string) *DatabaseStorage {
	if baseURL == "" {
		baseURL = "/images"
	}
	return &DatabaseStorage{db: db, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *DatabaseStorage) Save(ctx context.Context, reader io.Reader, originalName, folder string) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}

	path := GenerateKey(folder, originalName)
	file := models.StoredFile{
		Path:     path,
		Filename: filepath.Base(originalName),
		MimeType: DetectMimeType(originalName),
		Size:     int64(len(data)),
		Data:     base64.StdEncoding.EncodeToString(data),
	}

	if err := s.db.WithContext(ctx).Create(&file).Error; err != nil {
		return "", fmt.Errorf("failed to store file row: %w", err)
	}
	return path, nil
}

func (s *DatabaseStorage) Get(ctx context.Context, path string) (*Object, error) {
	var file models.StoredFile
	err := s.db.WithContext(ctx).Where("path = ?", path).First(&file).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load file row: %w", err)
	}

	data, err := base64.StdEncoding.DecodeString(file.Data)
	if err != nil {
		return nil, fmt.Errorf("corrupt base64 payload at %s: %w", path, err)
	}

	return &Object{
		Path:     file.Path,
		Filename: file.Filename,
		MimeType: file.MimeType,
		Size:     file.Size,
		Data:     data,
	}, nil
}

func (s *DatabaseStorage) Exists(ctx context.Context, path string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.StoredFile{}).Where("path = ?", path).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check file row: %w", err)
	}
	return count > 0, nil
}

func (s *DatabaseStorage) Delete(ctx context.Context, path string) (bool, error) {
	res := s.db.WithContext(ctx).Where("path = ?", path).Delete(&models.StoredFile{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete file row: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (s *DatabaseStorage) URL(path string) string {
	return s.baseURL + "/" + strings.TrimLeft(path, "/")
}

// Resolve inlines the content as a data URI so clients need no second
// round trip to fetch it.
func (s *DatabaseStorage) Resolve(ctx context.Context, path string) (string, error) {
	var file models.StoredFile
	err := s.db.WithContext(ctx).Where("path = ?", path).First(&file).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to load file row: %w", err)
	}
	return DataURI(file.MimeType, file.Data), nil
}

// DataURI renders base64 content as data:<mime>;base64,<data>.
func DataURI(mimeType, base64Data string) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64Data)
}
