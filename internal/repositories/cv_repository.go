package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/awfaabdulkader/interior-architect-backend/internal/models"
)

var ErrCvNotFound = errors.New("cv not found")

type CvRepository interface {
	Create(db *gorm.DB, cv *models.Cv) error
	FindByID(db *gorm.DB, id string) (*models.Cv, error)
	FindByUserID(db *gorm.DB, userID string) (*models.Cv, error)
	FindLatest(db *gorm.DB) (*models.Cv, error)
	FindAll(db *gorm.DB) ([]models.Cv, error)
	Update(db *gorm.DB, cv *models.Cv) error
	Delete(db *gorm.DB, id string) error
	ExistsForUser(db *gorm.DB, userID string) (bool, error)
}

type CvRepositoryImpl struct{}

func NewCvRepository() CvRepository {
	return &CvRepositoryImpl{}
}

func (r *CvRepositoryImpl) Create(db *gorm.DB, cv *models.Cv) error {
	return db.Create(cv).Error
}

func (r *CvRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Cv, error) {
	var cv models.Cv
	err := db.First(&cv, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCvNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cv, nil
}

func (r *CvRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.Cv, error) {
	var cv models.Cv
	err := db.First(&cv, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCvNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cv, nil
}

func (r *CvRepositoryImpl) FindLatest(db *gorm.DB) (*models.Cv, error) {
	var cv models.Cv
	err := db.Order("updated_at DESC").First(&cv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCvNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cv, nil
}

func (r *CvRepositoryImpl) FindAll(db *gorm.DB) ([]models.Cv, error) {
	var cvs []models.Cv
	err := db.Order("updated_at DESC").Find(&cvs).Error
	return cvs, err
}

func (r *CvRepositoryImpl) Update(db *gorm.DB, cv *models.Cv) error {
	return db.Save(cv).Error
}

func (r *CvRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Cv{}, "id = ?", id).Error
}

func (r *CvRepositoryImpl) ExistsForUser(db *gorm.DB, userID string) (bool, error) {
	var count int64
	err := db.Model(&models.Cv{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}
