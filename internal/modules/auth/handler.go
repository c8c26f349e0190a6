package auth

import (
	"net/http"

	"serveez/internal/pkg/response"
	"serveez/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/register", h.Register)
	rg.POST("/auth/login", h.Login)
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/me", h.Me)
	rg.PUT("/auth/me", h.UpdateProfile)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid registration data", fields)
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrEmailAlreadyExists:
			response.Error(c, http.StatusConflict, "EMAIL_TAKEN", "Email already registered")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Role must be USER or PROVIDER")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register")
		}
		return
	}

	response.Success(c, http.StatusCreated, res)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if err == ErrInvalidCredentials {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to login")
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Me(c *gin.Context) {
	user, err := h.service.GetCurrentUser(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		if err == ErrUserNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to get user")
		return
	}
	response.Success(c, http.StatusOK, user)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		if err == ErrUserNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update profile")
		return
	}
	response.Success(c, http.StatusOK, user)
}
