package booking

import (
	"context"
	"net/http"
	"strconv"

	"serveez/internal/domain"
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
	rg.POST("/bookings", h.Create)
	rg.GET("/bookings/my", h.ListMine)
	rg.GET("/bookings/provider", h.ListForProvider)
	rg.GET("/bookings/:id", h.GetByID)
	rg.PATCH("/bookings/:id/confirm", h.Confirm)
	rg.PATCH("/bookings/:id/complete", h.Complete)
	rg.PATCH("/bookings/:id/cancel", h.Cancel)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.ListAll)
	rg.PATCH("/bookings/:id/cancel", h.AdminCancel)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch err {
		case ErrListingNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Service listing not found")
		case ErrListingInactive:
			response.Error(c, http.StatusConflict, "INVALID_STATE", "Service listing is not active")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id, c.GetInt64("user_id"), domain.UserRole(c.GetString("role")))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

func (h *Handler) ListMine(c *gin.Context) {
	list, err := h.service.ListForUser(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get bookings")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) ListForProvider(c *gin.Context) {
	list, err := h.service.ListForProvider(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get bookings")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Confirm(c *gin.Context) {
	h.providerTransition(c, h.service.Confirm)
}

func (h *Handler) Complete(c *gin.Context) {
	h.providerTransition(c, h.service.Complete)
}

func (h *Handler) providerTransition(c *gin.Context, op func(ctx context.Context, providerID, bookingID int64) (*domain.Booking, error)) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := op(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

func (h *Handler) Cancel(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req CancelBookingRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
			return
		}
	}

	b, err := h.service.Cancel(c.Request.Context(), c.GetInt64("user_id"), id, req.Reason)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

func (h *Handler) AdminCancel(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req CancelBookingRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
			return
		}
	}

	b, err := h.service.AdminCancel(c.Request.Context(), id, req.Reason)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

func (h *Handler) ListAll(c *gin.Context) {
	list, err := h.service.ListAll(c.Request.Context(), c.Query("status"))
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown booking status")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get bookings")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func bookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return 0, false
	}
	return id, true
}

func respondBookingError(c *gin.Context, err error) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only manage your own bookings")
	case ErrInvalidStatus:
		response.Error(c, http.StatusConflict, "INVALID_STATE", "Operation not valid for current booking status")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Booking operation failed")
	}
}
