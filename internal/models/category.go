package models

type Category struct {
	BaseModel
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Description string    `json:"description"`
	Cover       string    `json:"cover"`
	Projects    []Project `gorm:"foreignKey:CategoryID" json:"projects,omitempty"`
}
