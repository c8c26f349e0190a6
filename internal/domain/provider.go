package domain

import "time"

type ProviderProfile struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	UserID      int64  `json:"user_id" gorm:"uniqueIndex"`
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio,omitempty" gorm:"type:text"`
	City        string `json:"city,omitempty"`
	Area        string `json:"area,omitempty"`
	Phone       string `json:"phone,omitempty"`
	// Derived from the provider's review set; written only by the rating aggregator.
	AverageRating float64   `json:"average_rating"`
	TotalReviews  int       `json:"total_reviews"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
