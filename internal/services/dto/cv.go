package dto

import "time"

// CvSlotResponse describes one language slot without its payload.
type CvSlotResponse struct {
	Filename   string     `json:"filename"`
	MimeType   string     `json:"mime_type"`
	Size       int64      `json:"size"`
	UploadedAt *time.Time `json:"uploaded_at"`
}

type CvResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Fr        *CvSlotResponse `json:"fr"`
	En        *CvSlotResponse `json:"en"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CvDocument is a downloadable slot payload.
type CvDocument struct {
	Filename string
	MimeType string
	Data     []byte
}
