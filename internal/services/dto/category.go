package dto

import "time"

// CategoryInput is one category in a create call. Cover files arrive
// as a parallel multipart array, matched by index.
type CategoryInput struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"max=2000"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Cover       *string   `json:"cover"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryProjectRef identifies a project blocking a category delete.
type CategoryProjectRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
