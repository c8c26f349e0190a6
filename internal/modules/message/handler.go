package message

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
	rg.POST("/messages", h.Send)
	rg.GET("/messages/conversations", h.Conversations)
	rg.GET("/bookings/:id/messages", h.ListByBooking)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/messages", h.ListAll)
}

func (h *Handler) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	m, err := h.service.Send(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		respondMessageError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, m)
}

func (h *Handler) ListByBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || bookingID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	list, err := h.service.ListByBooking(c.Request.Context(), c.GetInt64("user_id"), bookingID)
	if err != nil {
		respondMessageError(c, err)
		return
	}

	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Conversations(c *gin.Context) {
	list, err := h.service.Conversations(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get messages")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) ListAll(c *gin.Context) {
	list, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get messages")
		return
	}
	response.Paginated(c, http.StatusOK, list, int64(len(list)))
}

func respondMessageError(c *gin.Context, err error) {
	switch err {
	case ErrBookingNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not a participant of this booking")
	case ErrBadRecipient:
		response.Error(c, http.StatusBadRequest, "INVALID_RECIPIENT", "Recipient is not a participant of this booking")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Recipient and content are required")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Message operation failed")
	}
}
