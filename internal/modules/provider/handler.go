package provider

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
	rg.GET("/providers/:id", h.GetByUserID)
}

func (h *Handler) RegisterProviderRoutes(rg *gin.RouterGroup) {
	rg.POST("/providers/me", h.Create)
	rg.GET("/providers/me", h.GetMine)
	rg.PUT("/providers/me", h.Update)
}

func (h *Handler) Create(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.CreateProfile(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		if err == ErrAlreadyExists {
			response.Error(c, http.StatusConflict, "ALREADY_EXISTS", "Provider profile already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create profile")
		return
	}

	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) GetMine(c *gin.Context) {
	p, err := h.service.GetProfile(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		respondProfileError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) GetByUserID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid provider ID")
		return
	}

	p, err := h.service.GetProfile(c.Request.Context(), id)
	if err != nil {
		respondProfileError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) Update(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.UpdateProfile(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		respondProfileError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func respondProfileError(c *gin.Context, err error) {
	if err == ErrNotFound {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Provider profile not found")
		return
	}
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Profile operation failed")
}
