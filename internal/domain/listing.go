package domain

import "time"

type ServiceCategory struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ServiceListing struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	ProviderID  int64     `json:"provider_id" gorm:"index"`
	CategoryID  int64     `json:"category_id" gorm:"index"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Price       float64   `json:"price"`
	Location    string    `json:"location,omitempty"`
	// Estimated duration in minutes.
	EstimatedDuration int       `json:"estimated_duration,omitempty"`
	IsActive          bool      `json:"is_active" gorm:"default:true"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
