package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/awfaabdulkader/interior-architect-backend/internal/models"
)

// AutoMigrate creates or updates the schema for every model. The
// uuid-ossp extension backs the uuid_generate_v4() column defaults.
func AutoMigrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid-ossp extension: %w", err)
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.StoredFile{},
		&models.Category{},
		&models.Project{},
		&models.ProjectImage{},
		&models.Skill{},
		&models.Education{},
		&models.Experience{},
		&models.Cv{},
		&models.ContactMessage{},
	)
	if err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	return nil
}
