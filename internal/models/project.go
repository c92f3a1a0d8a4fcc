package models

import "time"

type Project struct {
	BaseModel
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	CategoryID  string         `gorm:"type:uuid;not null;index" json:"category_id"`
	UserID      string         `gorm:"type:uuid;index" json:"user_id"`
	Category    *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Images      []ProjectImage `gorm:"foreignKey:ProjectID" json:"images,omitempty"`
}

// ProjectImage rows keep their insertion order in Seq so the cover
// fallback is deterministic even when CreatedAt collides.
type ProjectImage struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Seq       int64     `gorm:"autoIncrement;uniqueIndex" json:"-"`
	ProjectID string    `gorm:"type:uuid;not null;index" json:"project_id"`
	Path      string    `gorm:"not null" json:"path"`
	IsCover   bool      `gorm:"default:false" json:"is_cover"`
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
}

// SelectCover picks the project's cover image: the first image flagged
// is_cover wins, otherwise the earliest by insertion order, otherwise nil.
// The fallback is derived here at read time, never written back.
func SelectCover(images []ProjectImage) *ProjectImage {
	var first *ProjectImage
	for i := range images {
		img := &images[i]
		if img.IsCover {
			return img
		}
		if first == nil || img.Seq < first.Seq {
			first = img
		}
	}
	return first
}
