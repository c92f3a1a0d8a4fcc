package dto

import "time"

type CreateExperienceRequest struct {
	Company     string     `json:"company" validate:"required,max=255"`
	Position    string     `json:"position" validate:"required,max=255"`
	StartDate   time.Time  `json:"start_date" validate:"required"`
	EndDate     *time.Time `json:"end_date"`
	Description string     `json:"description" validate:"max=5000"`
}

type UpdateExperienceRequest struct {
	Company     *string    `json:"company" validate:"omitempty,max=255"`
	Position    *string    `json:"position" validate:"omitempty,max=255"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Description *string    `json:"description" validate:"omitempty,max=5000"`
}

type ExperienceResponse struct {
	ID          string     `json:"id"`
	Company     string     `json:"company"`
	Position    string     `json:"position"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
