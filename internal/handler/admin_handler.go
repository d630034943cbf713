package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kscst/vocational-training-backend/internal/model"
	"github.com/kscst/vocational-training-backend/internal/response"
	"github.com/kscst/vocational-training-backend/internal/service"
	"github.com/kscst/vocational-training-backend/internal/validator"
)

// AdminHandler handles account lifecycle and oversight endpoints.
type AdminHandler struct {
	adminService       *service.AdminService
	progressService    *service.ProgressService
	certificateService *service.CertificateService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(
	adminService *service.AdminService,
	progressService *service.ProgressService,
	certificateService *service.CertificateService,
) *AdminHandler {
	return &AdminHandler{
		adminService:       adminService,
		progressService:    progressService,
		certificateService: certificateService,
	}
}

// ListTrainees godoc
// GET /api/admin/trainees
func (h *AdminHandler) ListTrainees(c *gin.Context) {
	trainees, err := h.adminService.ListTrainees(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"trainees": trainees})
}

// ListTrainers godoc
// GET /api/admin/trainers
func (h *AdminHandler) ListTrainers(c *gin.Context) {
	trainers, err := h.adminService.ListTrainers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"trainers": trainers})
}

// ListApprovedTrainers godoc
// GET /api/admin/trainers/approved
// Trainers eligible to receive trainee assignments.
func (h *AdminHandler) ListApprovedTrainers(c *gin.Context) {
	trainers, err := h.adminService.ListApprovedTrainers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"trainers": trainers})
}

// DeleteTrainee godoc
// DELETE /api/admin/trainee/:id
func (h *AdminHandler) DeleteTrainee(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.adminService.DeleteTrainee(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{})
}

// DeleteTrainer godoc
// DELETE /api/admin/trainer/:id
func (h *AdminHandler) DeleteTrainer(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.adminService.DeleteTrainer(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{})
}

// ApproveTrainee godoc
// PUT /api/admin/trainee/approve/:id
// Approves the trainee and assigns the trainer given in the body. Both land
// together or not at all.
func (h *AdminHandler) ApproveTrainee(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req model.ApproveTraineeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	trainee, err := h.adminService.ApproveTrainee(c.Request.Context(), id, req.TrainerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"trainee": trainee})
}

// RejectTrainee godoc
// PUT /api/admin/trainee/reject/:id
func (h *AdminHandler) RejectTrainee(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	trainee, err := h.adminService.RejectTrainee(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"trainee": trainee})
}

// ApproveTrainer godoc
// PUT /api/admin/trainer/approve/:id
func (h *AdminHandler) ApproveTrainer(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	trainer, err := h.adminService.ApproveTrainer(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"trainer": trainer})
}

// RejectTrainer godoc
// PUT /api/admin/trainer/reject/:id
func (h *AdminHandler) RejectTrainer(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	trainer, err := h.adminService.RejectTrainer(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"trainer": trainer})
}

// AllProgress godoc
// GET /api/admin/progress
// Completion summaries for every approved, assigned trainee.
func (h *AdminHandler) AllProgress(c *gin.Context) {
	ctx := c.Request.Context()
	summaries, err := h.progressService.AllSummaries(ctx, func(traineeID string) bool {
		return h.certificateService.HasCertificate(ctx, traineeID)
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"summaries": summaries})
}

// IssueCertificate godoc
// POST /api/admin/certificate/:traineeId
// Renders and records a completion certificate for a fully-complete trainee.
func (h *AdminHandler) IssueCertificate(c *gin.Context) {
	id, ok := pathUUID(c, "traineeId")
	if !ok {
		return
	}
	cert, err := h.certificateService.Issue(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"certificate": cert})
}
