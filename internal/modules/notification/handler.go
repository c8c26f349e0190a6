package notification

import (
	"net/http"
	"strconv"

	"serveez/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/notifications", h.List)
	rg.GET("/notifications/unread-count", h.UnreadCount)
	rg.PATCH("/notifications/:id/read", h.MarkAsRead)
	rg.PATCH("/notifications/read-all", h.MarkAllAsRead)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/notifications", h.SendAdminNotification)
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	limit := 20
	if s := c.Query("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			limit = v
		}
	}
	offset := 0
	if s := c.Query("offset"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			offset = v
		}
	}

	var isRead *bool
	if s := c.Query("is_read"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_FILTER", "is_read must be true or false")
			return
		}
		isRead = &v
	}

	list, unread, total, err := h.service.List(c.Request.Context(), userID, isRead, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get notifications")
		return
	}

	response.Success(c, http.StatusOK, ListResponse{
		Notifications: list,
		UnreadCount:   unread,
		Total:         total,
	})
}

func (h *Handler) UnreadCount(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	unread, err := h.service.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get unread count")
		return
	}

	response.Success(c, http.StatusOK, UnreadCountResponse{UnreadCount: unread})
}

func (h *Handler) MarkAsRead(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid notification ID")
		return
	}

	n, err := h.service.MarkAsRead(c.Request.Context(), id, userID)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Notification not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only mark your own notifications as read")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to mark as read")
		}
		return
	}

	response.Success(c, http.StatusOK, n)
}

func (h *Handler) MarkAllAsRead(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	if err := h.service.MarkAllAsRead(c.Request.Context(), userID); err != nil {
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to mark all as read")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "all_read"})
}

func (h *Handler) SendAdminNotification(c *gin.Context) {
	var req AdminNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	count, err := h.service.SendAdminNotification(c.Request.Context(), req)
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid target type, notification type, or missing target user")
			return
		}
		response.Error(c, http.StatusInternalServerError, "SEND_FAILED", "Failed to send notifications")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sent": count})
}
