package models

// StoredFile holds binary content for the database storage backend.
// Data is base64 text so the row survives any driver encoding.
type StoredFile struct {
	BaseModel
	Path     string `gorm:"uniqueIndex;not null" json:"path"`
	Filename string `gorm:"not null" json:"filename"`
	MimeType string `gorm:"not null" json:"mime_type"`
	Size     int64  `gorm:"not null" json:"size"`
	Data     string `gorm:"type:text;not null" json:"-"`
}
