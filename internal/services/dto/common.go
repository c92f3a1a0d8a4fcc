package dto

// PaginatedResponse wraps any listing with its paging envelope.
type PaginatedResponse struct {
	Data     interface{} `json:"data"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Total    int64       `json:"total"`
}

type BulkDeleteRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

type BulkDeleteResponse struct {
	Deleted int64 `json:"deleted"`
}
