package models

type Education struct {
	BaseModel
	Institution string `gorm:"not null" json:"institution"`
	Degree      string `gorm:"not null" json:"degree"`
	Field       string `json:"field"`
	StartYear   int    `json:"start_year"`
	EndYear     *int   `json:"end_year"`
	Description string `json:"description"`
	UserID      string `gorm:"type:uuid;index" json:"user_id"`
}
