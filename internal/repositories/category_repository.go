package repositories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/awfaabdulkader/interior-architect-backend/internal/models"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryRepository interface {
	Create(db *gorm.DB, category *models.Category) error
	CreateBatch(db *gorm.DB, categories []models.Category) error
	FindByID(db *gorm.DB, id string) (*models.Category, error)
	FindByName(db *gorm.DB, name string) (*models.Category, error)
	FindPage(db *gorm.DB, offset, limit int) ([]models.Category, int64, error)
	FindAll(db *gorm.DB) ([]models.Category, error)
	Update(db *gorm.DB, category *models.Category) error
	Delete(db *gorm.DB, id string) error
	NameExists(db *gorm.DB, name string) (bool, error)
	NameExistsExcluding(db *gorm.DB, name, excludeID string) (bool, error)
	CountProjects(db *gorm.DB, categoryID string) (int64, error)
	FindProjects(db *gorm.DB, categoryID string) ([]models.Project, error)
}

type CategoryRepositoryImpl struct{}

func NewCategoryRepository() CategoryRepository {
	return &CategoryRepositoryImpl{}
}

func (r *CategoryRepositoryImpl) Create(db *gorm.DB, category *models.Category) error {
	return db.Create(category).Error
}

func (r *CategoryRepositoryImpl) CreateBatch(db *gorm.DB, categories []models.Category) error {
	return db.Create(&categories).Error
}

func (r *CategoryRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Category, error) {
	var category models.Category
	err := db.First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) FindByName(db *gorm.DB, name string) (*models.Category, error) {
	var category models.Category
	err := db.First(&category, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) FindPage(db *gorm.DB, offset, limit int) ([]models.Category, int64, error) {
	var categories []models.Category
	var total int64

	if err := db.Model(&models.Category{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&categories).Error
	return categories, total, err
}

func (r *CategoryRepositoryImpl) FindAll(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	err := db.Order("created_at DESC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) Update(db *gorm.DB, category *models.Category) error {
	return db.Omit(clause.Associations).Save(category).Error
}

func (r *CategoryRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Category{}, "id = ?", id).Error
}

func (r *CategoryRepositoryImpl) NameExists(db *gorm.DB, name string) (bool, error) {
	var count int64
	err := db.Model(&models.Category{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (r *CategoryRepositoryImpl) NameExistsExcluding(db *gorm.DB, name, excludeID string) (bool, error) {
	var count int64
	err := db.Model(&models.Category{}).Where("name = ? AND id <> ?", name, excludeID).Count(&count).Error
	return count > 0, err
}

func (r *CategoryRepositoryImpl) CountProjects(db *gorm.DB, categoryID string) (int64, error) {
	var count int64
	err := db.Model(&models.Project{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

func (r *CategoryRepositoryImpl) FindProjects(db *gorm.DB, categoryID string) ([]models.Project, error) {
	var projects []models.Project
	err := db.Where("category_id = ?", categoryID).Find(&projects).Error
	return projects, err
}
