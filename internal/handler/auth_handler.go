package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kscst/vocational-training-backend/internal/model"
	"github.com/kscst/vocational-training-backend/internal/response"
	"github.com/kscst/vocational-training-backend/internal/service"
	"github.com/kscst/vocational-training-backend/internal/validator"
)

// AuthHandler handles registration and login endpoints.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterTrainee godoc
// POST /api/auth/trainee/register
// Creates a trainee account in PENDING status.
func (h *AuthHandler) RegisterTrainee(c *gin.Context) {
	var req model.RegisterTraineeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	trainee, err := h.authService.RegisterTrainee(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"trainee": trainee})
}

// RegisterTrainer godoc
// POST /api/auth/trainer/register
// Creates a trainer account in PENDING status.
func (h *AuthHandler) RegisterTrainer(c *gin.Context) {
	var req model.RegisterTrainerRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	trainer, err := h.authService.RegisterTrainer(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"trainer": trainer})
}

// Login godoc
// POST /api/auth/login
// Verifies credentials across all roles and returns the principal with a JWT.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}
