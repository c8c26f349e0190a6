package message

type SendMessageRequest struct {
	ToUserID         int64  `json:"to_user_id" binding:"required"`
	Content          string `json:"content" binding:"required"`
	BookingID        *int64 `json:"booking_id,omitempty"`
	ServiceListingID *int64 `json:"service_listing_id,omitempty"`
}
