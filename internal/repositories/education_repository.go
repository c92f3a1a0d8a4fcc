package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/awfaabdulkader/interior-architect-backend/internal/models"
)

var ErrEducationNotFound = errors.New("education entry not found")

type EducationRepository interface {
	Create(db *gorm.DB, education *models.Education) error
	FindByID(db *gorm.DB, id string) (*models.Education, error)
	FindAll(db *gorm.DB) ([]models.Education, error)
	Update(db *gorm.DB, education *models.Education) error
	Delete(db *gorm.DB, id string) error
}

type EducationRepositoryImpl struct{}

func NewEducationRepository() EducationRepository {
	return &EducationRepositoryImpl{}
}

func (r *EducationRepositoryImpl) Create(db *gorm.DB, education *models.Education) error {
	return db.Create(education).Error
}

func (r *EducationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Education, error) {
	var education models.Education
	err := db.First(&education, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEducationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &education, nil
}

func (r *EducationRepositoryImpl) FindAll(db *gorm.DB) ([]models.Education, error) {
	var entries []models.Education
	err := db.Order("start_year DESC").Find(&entries).Error
	return entries, err
}

func (r *EducationRepositoryImpl) Update(db *gorm.DB, education *models.Education) error {
	return db.Save(education).Error
}

func (r *EducationRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Education{}, "id = ?", id).Error
}
