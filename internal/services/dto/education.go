package dto

import "time"

type CreateEducationRequest struct {
	Institution string `json:"institution" validate:"required,max=255"`
	Degree      string `json:"degree" validate:"required,max=255"`
	Field       string `json:"field" validate:"max=255"`
	StartYear   int    `json:"start_year" validate:"required,min=1900,max=2100"`
	EndYear     *int   `json:"end_year" validate:"omitempty,min=1900,max=2100"`
	Description string `json:"description" validate:"max=5000"`
}

type UpdateEducationRequest struct {
	Institution *string `json:"institution" validate:"omitempty,max=255"`
	Degree      *string `json:"degree" validate:"omitempty,max=255"`
	Field       *string `json:"field" validate:"omitempty,max=255"`
	StartYear   *int    `json:"start_year" validate:"omitempty,min=1900,max=2100"`
	EndYear     *int    `json:"end_year" validate:"omitempty,min=1900,max=2100"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
}

type EducationResponse struct {
	ID          string    `json:"id"`
	Institution string    `json:"institution"`
	Degree      string    `json:"degree"`
	Field       string    `json:"field"`
	StartYear   int       `json:"start_year"`
	EndYear     *int      `json:"end_year"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
