package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/awfaabdulkader/interior-architect-backend/internal/models"
)

var ErrContactNotFound = errors.New("contact message not found")

type ContactRepository interface {
	Create(db *gorm.DB, message *models.ContactMessage) error
	FindPage(db *gorm.DB, offset, limit int) ([]models.ContactMessage, int64, error)
	Delete(db *gorm.DB, id string) error
	Exists(db *gorm.DB, id string) (bool, error)
}

type ContactRepositoryImpl struct{}

func NewContactRepository() ContactRepository {
	return &ContactRepositoryImpl{}
}

func (r *ContactRepositoryImpl) Create(db *gorm.DB, message *models.ContactMessage) error {
	return db.Create(message).Error
}

func (r *ContactRepositoryImpl) FindPage(db *gorm.DB, offset, limit int) ([]models.ContactMessage, int64, error) {
	var messages []models.ContactMessage
	var total int64

	if err := db.Model(&models.ContactMessage{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&messages).Error
	return messages, total, err
}

func (r *ContactRepositoryImpl) Delete(db *gorm.DB, id string) error {
	res := db.Delete(&models.ContactMessage{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}

func (r *ContactRepositoryImpl) Exists(db *gorm.DB, id string) (bool, error) {
	var count int64
	err := db.Model(&models.ContactMessage{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
