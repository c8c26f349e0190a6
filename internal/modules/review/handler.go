package review

import (
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
	rg.POST("/bookings/:id/reviews", h.Create)
	rg.PUT("/reviews/:id", h.Update)
	rg.DELETE("/reviews/:id", h.Delete)
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/listings/:id/reviews", h.ListByListing)
	rg.GET("/providers/:id/reviews", h.ListByProvider)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/reviews", h.ListAll)
	rg.DELETE("/reviews/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	bookingID, ok := pathID(c)
	if !ok {
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rv, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), bookingID, req)
	if err != nil {
		respondReviewError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, rv)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rv, err := h.service.Update(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		respondReviewError(c, err)
		return
	}

	response.Success(c, http.StatusOK, rv)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	isAdmin := domain.UserRole(c.GetString("role")) == domain.RoleAdmin
	if err := h.service.Delete(c.Request.Context(), c.GetInt64("user_id"), isAdmin, id); err != nil {
		respondReviewError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Review deleted"})
}

func (h *Handler) ListByListing(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	list, err := h.service.ListByListing(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get reviews")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) ListByProvider(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	list, err := h.service.ListByProvider(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get reviews")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) ListAll(c *gin.Context) {
	list, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get reviews")
		return
	}
	response.Paginated(c, http.StatusOK, list, int64(len(list)))
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return 0, false
	}
	return id, true
}

func respondReviewError(c *gin.Context, err error) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
	case ErrBookingNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only manage your own reviews")
	case ErrBookingNotCompleted:
		response.Error(c, http.StatusConflict, "INVALID_STATE", "Booking must be completed before it can be reviewed")
	case ErrConflict:
		response.Error(c, http.StatusConflict, "ALREADY_EXISTS", "A review for this booking already exists")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rating must be between 1 and 5")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Review operation failed")
	}
}
