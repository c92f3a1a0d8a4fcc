package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/awfaabdulkader/interior-architect-backend/internal/models"
)

var ErrExperienceNotFound = errors.New("experience entry not found")

type ExperienceRepository interface {
	Create(db *gorm.DB, experience *models.Experience) error
	FindByID(db *gorm.DB, id string) (*models.Experience, error)
	FindAll(db *gorm.DB) ([]models.Experience, error)
	Update(db *gorm.DB, experience *models.Experience) error
	Delete(db *gorm.DB, id string) error
}

type ExperienceRepositoryImpl struct{}

func NewExperienceRepository() ExperienceRepository {
	return &ExperienceRepositoryImpl{}
}

func (r *ExperienceRepositoryImpl) Create(db *gorm.DB, experience *models.Experience) error {
	return db.Create(experience).Error
}

func (r *ExperienceRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Experience, error) {
	var experience models.Experience
	err := db.First(&experience, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrExperienceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &experience, nil
}

func (r *ExperienceRepositoryImpl) FindAll(db *gorm.DB) ([]models.Experience, error) {
	var entries []models.Experience
	err := db.Order("start_date DESC").Find(&entries).Error
	return entries, err
}

func (r *ExperienceRepositoryImpl) Update(db *gorm.DB, experience *models.Experience) error {
	return db.Save(experience).Error
}

func (r *ExperienceRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Experience{}, "id = ?", id).Error
}
