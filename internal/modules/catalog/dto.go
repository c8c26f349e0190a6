package catalog

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
}

type CreateListingRequest struct {
	CategoryID        int64   `json:"category_id" binding:"required"`
	Title             string  `json:"title" binding:"required"`
	Description       string  `json:"description,omitempty"`
	Price             float64 `json:"price" binding:"required,gt=0"`
	Location          string  `json:"location,omitempty"`
	EstimatedDuration int     `json:"estimated_duration,omitempty"`
}

type UpdateListingRequest struct {
	CategoryID        *int64   `json:"category_id,omitempty"`
	Title             *string  `json:"title,omitempty"`
	Description       *string  `json:"description,omitempty"`
	Price             *float64 `json:"price,omitempty"`
	Location          *string  `json:"location,omitempty"`
	EstimatedDuration *int     `json:"estimated_duration,omitempty"`
	IsActive          *bool    `json:"is_active,omitempty"`
}
