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

// TrainerHandler handles the trainer's profile, roster, and content catalog.
type TrainerHandler struct {
	trainerService *service.TrainerService
	contentService *service.ContentService
}

// NewTrainerHandler creates a new TrainerHandler.
func NewTrainerHandler(trainerService *service.TrainerService, contentService *service.ContentService) *TrainerHandler {
	return &TrainerHandler{trainerService: trainerService, contentService: contentService}
}

// Profile godoc
// GET /api/trainer/profile
func (h *TrainerHandler) Profile(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	trainer, err := h.trainerService.Profile(c.Request.Context(), principal.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"trainer": trainer})
}

// UpdateProfile godoc
// PUT /api/trainer/profile
func (h *TrainerHandler) UpdateProfile(c *gin.Context) {
	principal := middleware.GetPrincipal(c)

	var req model.UpdateTrainerProfileRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	trainer, err := h.trainerService.UpdateProfile(c.Request.Context(), principal.ID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"trainer": trainer})
}

// AssignedTrainees godoc
// GET /api/trainer/trainees
func (h *TrainerHandler) AssignedTrainees(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	trainees, err := h.trainerService.AssignedTrainees(c.Request.Context(), principal.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"trainees": trainees})
}

// ListMaterials godoc
// GET /api/trainer/materials
func (h *TrainerHandler) ListMaterials(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	materials, err := h.contentService.ListMaterials(c.Request.Context(), principal.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"materials": materials})
}

// UploadMaterial godoc
// POST /api/trainer/materials
// Multipart form: title + file (application/pdf or video/mp4).
func (h *TrainerHandler) UploadMaterial(c *gin.Context) {
	principal := middleware.GetPrincipal(c)

	title := c.PostForm("title")
	if title == "" {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
			map[string]string{"title": "title is required"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}
	defer file.Close()

	material, err := h.contentService.UploadMaterial(c.Request.Context(), principal.ID, title, file, header)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"material": material})
}

// UpdateMaterial godoc
// PUT /api/trainer/materials/:id
// Multipart form: title, plus an optional replacement file.
func (h *TrainerHandler) UpdateMaterial(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	title := c.PostForm("title")
	if title == "" {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
			map[string]string{"title": "title is required"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		// No replacement file; keep the existing one.
		file, header = nil, nil
	} else {
		defer file.Close()
	}

	material, err := h.contentService.UpdateMaterial(c.Request.Context(), principal.ID, id, title, file, header)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"material": material})
}

// DeleteMaterial godoc
// DELETE /api/trainer/materials/:id
func (h *TrainerHandler) DeleteMaterial(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.contentService.DeleteMaterial(c.Request.Context(), principal.ID, id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{})
}

// ListPlaylists godoc
// GET /api/trainer/playlists
func (h *TrainerHandler) ListPlaylists(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	playlists, err := h.contentService.ListPlaylists(c.Request.Context(), principal.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"playlists": playlists})
}

// CreatePlaylist godoc
// POST /api/trainer/playlists
func (h *TrainerHandler) CreatePlaylist(c *gin.Context) {
	principal := middleware.GetPrincipal(c)

	var req model.SavePlaylistRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	playlist, err := h.contentService.CreatePlaylist(c.Request.Context(), principal.ID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"playlist": playlist})
}

// UpdatePlaylist godoc
// PUT /api/trainer/playlists/:id
func (h *TrainerHandler) UpdatePlaylist(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req model.SavePlaylistRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	playlist, err := h.contentService.UpdatePlaylist(c.Request.Context(), principal.ID, id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"playlist": playlist})
}

// DeletePlaylist godoc
// DELETE /api/trainer/playlists/:id
func (h *TrainerHandler) DeletePlaylist(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.contentService.DeletePlaylist(c.Request.Context(), principal.ID, id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{})
}
