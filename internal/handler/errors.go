package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kscst/vocational-training-backend/internal/response"
	"github.com/kscst/vocational-training-backend/internal/service"
)

// respondServiceError translates service sentinels into HTTP responses.
// Anything unrecognized is a 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
	case errors.Is(err, service.ErrNotApproved):
		response.Fail(c, http.StatusForbidden, response.ErrNotApproved)
	case errors.Is(err, service.ErrUsernameTaken):
		response.Fail(c, http.StatusConflict, response.ErrAlreadyExists)
	case errors.Is(err, service.ErrInvalidState):
		response.Fail(c, http.StatusConflict, response.ErrInvalidState)
	case errors.Is(err, service.ErrAlreadyIssued):
		response.Fail(c, http.StatusConflict, response.ErrAlreadyIssued)
	case errors.Is(err, service.ErrIncomplete):
		response.Fail(c, http.StatusConflict, response.ErrIncomplete)
	case errors.Is(err, service.ErrUnsupportedFileType):
		response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
	case errors.Is(err, service.ErrFileTooLarge):
		response.Fail(c, http.StatusBadRequest, response.ErrFileTooLarge)
	case errors.Is(err, service.ErrStorage):
		response.Fail(c, http.StatusInternalServerError, response.ErrStorageFailure)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

// pathUUID extracts and validates a UUID path parameter. It writes the error
// response itself and reports success via ok.
func pathUUID(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if uuid.Validate(id) != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return "", false
	}
	return id, true
}
