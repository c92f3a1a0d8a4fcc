package models

type Skill struct {
	BaseModel
	Name   string `gorm:"not null;index" json:"name"`
	Logo   string `json:"logo"`
	UserID string `gorm:"type:uuid;index" json:"user_id"`
}
