package dto

import "time"

type SkillInput struct {
	Name string `json:"name" validate:"required,max=255"`
}

type UpdateSkillRequest struct {
	Name *string `json:"name" validate:"omitempty,max=255"`
}

type SkillResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Logo      *string   `json:"logo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
