package dto

import "time"

type CreateProjectRequest struct {
	Name        string `form:"name" json:"name" validate:"required,max=255"`
	Description string `form:"description" json:"description" validate:"max=5000"`
	CategoryID  string `form:"category_id" json:"category_id" validate:"required,uuid"`
}

type UpdateProjectRequest struct {
	Name        *string `form:"name" json:"name" validate:"omitempty,max=255"`
	Description *string `form:"description" json:"description" validate:"omitempty,max=5000"`
	CategoryID  *string `form:"category_id" json:"category_id" validate:"omitempty,uuid"`
}

type SetCoverRequest struct {
	ImageID string `json:"image_id" validate:"required,uuid"`
}

type ProjectImageResponse struct {
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	Image     *string   `json:"image"`
	IsCover   bool      `json:"is_cover"`
	CreatedAt time.Time `json:"created_at"`
}

// ProjectResponse is the detail view: every image resolved. Cover is
// the resolved representation of the selected cover image, null when
// the project has no usable image.
type ProjectResponse struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	CategoryID  string                 `json:"category_id"`
	Category    *CategoryResponse      `json:"category,omitempty"`
	Images      []ProjectImageResponse `json:"images"`
	Cover       *string                `json:"cover"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// ProjectSummary is the listing view: only the selected cover is
// resolved.
type ProjectSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CategoryID  string    `json:"category_id"`
	Cover       *string   `json:"cover"`
	CreatedAt   time.Time `json:"created_at"`
}
