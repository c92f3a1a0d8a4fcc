package models

import "time"

type Experience struct {
	BaseModel
	Company     string     `gorm:"not null" json:"company"`
	Position    string     `gorm:"not null" json:"position"`
	StartDate   time.Time  `gorm:"not null" json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Description string     `json:"description"`
	UserID      string     `gorm:"type:uuid;index" json:"user_id"`
}
