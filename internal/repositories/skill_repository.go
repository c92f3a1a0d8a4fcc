package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/awfaabdulkader/interior-architect-backend/internal/models"
)

var ErrSkillNotFound = errors.New("skill not found")

type SkillRepository interface {
	Create(db *gorm.DB, skill *models.Skill) error
	CreateBatch(db *gorm.DB, skills []models.Skill) error
	FindByID(db *gorm.DB, id string) (*models.Skill, error)
	FindAll(db *gorm.DB) ([]models.Skill, error)
	Update(db *gorm.DB, skill *models.Skill) error
	Delete(db *gorm.DB, id string) error
	DeleteBatch(db *gorm.DB, ids []string) (int64, error)
	DuplicateExists(db *gorm.DB, name, logo string) (bool, error)
}

type SkillRepositoryImpl struct{}

func NewSkillRepository() SkillRepository {
	return &SkillRepositoryImpl{}
}

func (r *SkillRepositoryImpl) Create(db *gorm.DB, skill *models.Skill) error {
	return db.Create(skill).Error
}

func (r *SkillRepositoryImpl) CreateBatch(db *gorm.DB, skills []models.Skill) error {
	return db.Create(&skills).Error
}

func (r *SkillRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Skill, error) {
	var skill models.Skill
	err := db.First(&skill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSkillNotFound
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepositoryImpl) FindAll(db *gorm.DB) ([]models.Skill, error) {
	var skills []models.Skill
	err := db.Order("created_at DESC").Find(&skills).Error
	return skills, err
}

func (r *SkillRepositoryImpl) Update(db *gorm.DB, skill *models.Skill) error {
	return db.Save(skill).Error
}

func (r *SkillRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Skill{}, "id = ?", id).Error
}

func (r *SkillRepositoryImpl) DeleteBatch(db *gorm.DB, ids []string) (int64, error) {
	res := db.Delete(&models.Skill{}, "id IN ?", ids)
	return res.RowsAffected, res.Error
}

func (r *SkillRepositoryImpl) DuplicateExists(db *gorm.DB, name, logo string) (bool, error) {
	var count int64
	err := db.Model(&models.Skill{}).Where("name = ? AND logo = ?", name, logo).Count(&count).Error
	return count > 0, err
}
