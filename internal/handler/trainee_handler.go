package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kscst/vocational-training-backend/internal/middleware"
	"github.com/kscst/vocational-training-backend/internal/model"
	"github.com/kscst/vocational-training-backend/internal/response"
	"github.com/kscst/vocational-training-backend/internal/service"
	"github.com/kscst/vocational-training-backend/internal/validator"
)

// TraineeHandler handles the trainee's profile, catalog, and progress.
type TraineeHandler struct {
	traineeService     *service.TraineeService
	progressService    *service.ProgressService
	certificateService *service.CertificateService
}

// NewTraineeHandler creates a new TraineeHandler.
func NewTraineeHandler(
	traineeService *service.TraineeService,
	progressService *service.ProgressService,
	certificateService *service.CertificateService,
) *TraineeHandler {
	return &TraineeHandler{
		traineeService:     traineeService,
		progressService:    progressService,
		certificateService: certificateService,
	}
}

// Profile godoc
// GET /api/trainee/profile
func (h *TraineeHandler) Profile(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	trainee, err := h.traineeService.Profile(c.Request.Context(), principal.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"trainee": trainee})
}

// UpdateProfile godoc
// PUT /api/trainee/profile
func (h *TraineeHandler) UpdateProfile(c *gin.Context) {
	principal := middleware.GetPrincipal(c)

	var req model.UpdateTraineeProfileRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	trainee, err := h.traineeService.UpdateProfile(c.Request.Context(), principal.ID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"trainee": trainee})
}

// Materials godoc
// GET /api/trainee/materials
// Materials from the trainee's assigned trainer; empty before assignment.
func (h *TraineeHandler) Materials(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	materials, err := h.traineeService.AssignedMaterials(c.Request.Context(), principal.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"materials": materials})
}

// Playlists godoc
// GET /api/trainee/playlists
func (h *TraineeHandler) Playlists(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	playlists, err := h.traineeService.AssignedPlaylists(c.Request.Context(), principal.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"playlists": playlists})
}

// MarkMaterialProgress godoc
// POST /api/trainee/progress
// Records completion of a material. Repeat calls return the original record.
func (h *TraineeHandler) MarkMaterialProgress(c *gin.Context) {
	principal := middleware.GetPrincipal(c)

	var req model.MarkMaterialProgressRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	progress, err := h.progressService.MarkMaterial(c.Request.Context(), principal.ID, req.MaterialID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"progress": progress})
}

// MarkVideoProgress godoc
// POST /api/trainee/video-progress
// Records completion of a playlist video identified by its exact URL.
func (h *TraineeHandler) MarkVideoProgress(c *gin.Context) {
	principal := middleware.GetPrincipal(c)

	var req model.MarkVideoProgressRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	progress, err := h.progressService.MarkVideo(c.Request.Context(), principal.ID, req.PlaylistID, req.VideoURL)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"progress": progress})
}

// Progress godoc
// GET /api/trainee/progress
// The raw progress ledger, oldest first.
func (h *TraineeHandler) Progress(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	ledger, err := h.progressService.ListForTrainee(c.Request.Context(), principal.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"progress": ledger})
}

// ProgressSummary godoc
// GET /api/trainee/progress/summary
// Completion state recomputed against the assigned trainer's catalog.
func (h *TraineeHandler) ProgressSummary(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	summary, err := h.progressService.Summary(c.Request.Context(), principal.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	summary.HasCertificate = h.certificateService.HasCertificate(c.Request.Context(), principal.ID)
	response.Success(c, http.StatusOK, gin.H{"summary": summary})
}

// Certificate godoc
// GET /api/trainee/certificate
// The trainee's certificate record, 404 until issued.
func (h *TraineeHandler) Certificate(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	cert, err := h.certificateService.GetForTrainee(c.Request.Context(), principal.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"certificate": cert})
}
