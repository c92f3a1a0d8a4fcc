package models

import "time"

// Cv keeps two fixed language slots inline. Documents are small enough
// that path indirection through the binary store buys nothing here.
type Cv struct {
	BaseModel
	UserID string `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`

	FrData       string     `gorm:"type:text" json:"-"`
	FrFilename   string     `json:"fr_filename"`
	FrMimeType   string     `json:"fr_mime_type"`
	FrSize       int64      `json:"fr_size"`
	FrUploadedAt *time.Time `json:"fr_uploaded_at"`

	EnData       string     `gorm:"type:text" json:"-"`
	EnFilename   string     `json:"en_filename"`
	EnMimeType   string     `json:"en_mime_type"`
	EnSize       int64      `json:"en_size"`
	EnUploadedAt *time.Time `json:"en_uploaded_at"`
}

// Slot returns the inline document for a language, or ok=false when
// the slot is empty or the language is unknown.
func (c *Cv) Slot(language string) (data, filename, mimeType string, size int64, ok bool) {
	switch language {
	case "fr":
		return c.FrData, c.FrFilename, c.FrMimeType, c.FrSize, c.FrData != ""
	case "en":
		return c.EnData, c.EnFilename, c.EnMimeType, c.EnSize, c.EnData != ""
	}
	return "", "", "", 0, false
}
