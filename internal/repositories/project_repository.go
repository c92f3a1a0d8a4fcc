package repositories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/awfaabdulkader/interior-architect-backend/internal/models"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrProjectImageNotFound = errors.New("project image not found")
)

type ProjectRepository interface {
	Create(db *gorm.DB, project *models.Project) error
	FindByID(db *gorm.DB, id string) (*models.Project, error)
	FindPage(db *gorm.DB, offset, limit int) ([]models.Project, int64, error)
	FindByCategory(db *gorm.DB, categoryID string) ([]models.Project, error)
	Update(db *gorm.DB, project *models.Project) error
	Delete(db *gorm.DB, id string) error
	DuplicateExists(db *gorm.DB, name, description, categoryID string) (bool, error)

	AddImage(db *gorm.DB, image *models.ProjectImage) error
	FindImage(db *gorm.DB, projectID, imageID string) (*models.ProjectImage, error)
	FindImages(db *gorm.DB, projectID string) ([]models.ProjectImage, error)
	UpdateImage(db *gorm.DB, image *models.ProjectImage) error
	DeleteImage(db *gorm.DB, imageID string) error
	SetCover(db *gorm.DB, projectID, imageID string) error
}

type ProjectRepositoryImpl struct{}

func NewProjectRepository() ProjectRepository {
	return &ProjectRepositoryImpl{}
}

func (r *ProjectRepositoryImpl) Create(db *gorm.DB, project *models.Project) error {
	return db.Create(project).Error
}

func (r *ProjectRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Project, error) {
	var project models.Project
	err := db.Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("project_images.seq ASC")
		}).
		First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepositoryImpl) FindPage(db *gorm.DB, offset, limit int) ([]models.Project, int64, error) {
	var projects []models.Project
	var total int64

	if err := db.Model(&models.Project{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("project_images.seq ASC")
		}).
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&projects).Error
	return projects, total, err
}

func (r *ProjectRepositoryImpl) FindByCategory(db *gorm.DB, categoryID string) ([]models.Project, error) {
	var projects []models.Project
	err := db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("project_images.seq ASC")
	}).
		Where("category_id = ?", categoryID).
		Order("created_at DESC").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepositoryImpl) Update(db *gorm.DB, project *models.Project) error {
	// Associations are managed through their own methods; saving them
	// here would re-upsert preloaded rows.
	return db.Omit(clause.Associations).Save(project).Error
}

func (r *ProjectRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ProjectImage{}, "project_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
}

func (r *ProjectRepositoryImpl) DuplicateExists(db *gorm.DB, name, description, categoryID string) (bool, error) {
	var count int64
	err := db.Model(&models.Project{}).
		Where("name = ? AND description = ? AND category_id = ?", name, description, categoryID).
		Count(&count).Error
	return count > 0, err
}

func (r *ProjectRepositoryImpl) AddImage(db *gorm.DB, image *models.ProjectImage) error {
	return db.Create(image).Error
}

func (r *ProjectRepositoryImpl) FindImage(db *gorm.DB, projectID, imageID string) (*models.ProjectImage, error) {
	var image models.ProjectImage
	err := db.First(&image, "id = ? AND project_id = ?", imageID, projectID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProjectImageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *ProjectRepositoryImpl) FindImages(db *gorm.DB, projectID string) ([]models.ProjectImage, error) {
	var images []models.ProjectImage
	err := db.Where("project_id = ?", projectID).Order("seq ASC").Find(&images).Error
	return images, err
}

func (r *ProjectRepositoryImpl) UpdateImage(db *gorm.DB, image *models.ProjectImage) error {
	return db.Save(image).Error
}

func (r *ProjectRepositoryImpl) DeleteImage(db *gorm.DB, imageID string) error {
	return db.Delete(&models.ProjectImage{}, "id = ?", imageID).Error
}

// SetCover clears every cover flag in the project and raises exactly
// one, inside a single transaction so no reader ever sees two covers.
func (r *ProjectRepositoryImpl) SetCover(db *gorm.DB, projectID, imageID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ProjectImage{}).
			Where("project_id = ?", projectID).
			Update("is_cover", false).Error; err != nil {
			return err
		}

		res := tx.Model(&models.ProjectImage{}).
			Where("id = ? AND project_id = ?", imageID, projectID).
			Update("is_cover", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrProjectImageNotFound
		}
		return nil
	})
}
