package catalog

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

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories", h.ListCategories)
	rg.GET("/listings", h.ListListings)
	rg.GET("/listings/:id", h.GetListing)
}

func (h *Handler) RegisterProviderRoutes(rg *gin.RouterGroup) {
	rg.POST("/listings", h.CreateListing)
	rg.PUT("/listings/:id", h.UpdateListing)
	rg.PATCH("/listings/:id/deactivate", h.Deactivate)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/categories", h.CreateCategory)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	cat, err := h.service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		if err == ErrNameTaken {
			response.Error(c, http.StatusConflict, "ALREADY_EXISTS", "Category name already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create category")
		return
	}

	response.Success(c, http.StatusCreated, cat)
}

func (h *Handler) ListCategories(c *gin.Context) {
	list, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get categories")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) CreateListing(c *gin.Context) {
	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	l, err := h.service.CreateListing(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create listing")
		return
	}

	response.Success(c, http.StatusCreated, l)
}

func (h *Handler) GetListing(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}

	l, err := h.service.GetListing(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get listing")
		return
	}
	response.Success(c, http.StatusOK, l)
}

func (h *Handler) UpdateListing(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}

	var req UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	l, err := h.service.UpdateListing(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, http.StatusOK, l)
}

func (h *Handler) Deactivate(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Listing deactivated"})
}

func (h *Handler) ListListings(c *gin.Context) {
	categoryID, _ := strconv.ParseInt(c.Query("category_id"), 10, 64)
	providerID, _ := strconv.ParseInt(c.Query("provider_id"), 10, 64)
	activeOnly := c.DefaultQuery("active_only", "true") != "false"

	list, err := h.service.ListListings(c.Request.Context(), categoryID, providerID, activeOnly)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get listings")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func listingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid listing ID")
		return 0, false
	}
	return id, true
}

func respondCatalogError(c *gin.Context, err error) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only manage your own listings")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Price must be positive")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Listing operation failed")
	}
}
