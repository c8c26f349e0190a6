package notification

import "serveez/internal/domain"

type ListResponse struct {
	Notifications []domain.Notification `json:"notifications"`
	UnreadCount   int64                 `json:"unread_count"`
	Total         int64                 `json:"total"`
}

type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count"`
}

type AdminNotificationRequest struct {
	TargetType   string `json:"target_type" binding:"required"`
	TargetUserID *int64 `json:"target_user_id,omitempty"`
	Title        string `json:"title" binding:"required"`
	Message      string `json:"message" binding:"required"`
	Type         string `json:"type" binding:"required"`
}
