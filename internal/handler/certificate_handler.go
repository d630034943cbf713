package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kscst/vocational-training-backend/internal/response"
	"github.com/kscst/vocational-training-backend/internal/service"
)

// CertificateHandler serves rendered certificate documents.
type CertificateHandler struct {
	certificateService *service.CertificateService
}

// NewCertificateHandler creates a new CertificateHandler.
func NewCertificateHandler(certificateService *service.CertificateService) *CertificateHandler {
	return &CertificateHandler{certificateService: certificateService}
}

// Download godoc
// GET /api/certificates/:filename
// Streams the certificate PDF as an attachment. Any authenticated principal
// who knows the file name may fetch it.
func (h *CertificateHandler) Download(c *gin.Context) {
	fileName := c.Param("filename")
	path, err := h.certificateService.FilePath(fileName)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Header("Content-Type", "application/pdf")
	c.File(path)
}
