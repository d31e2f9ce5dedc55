package helper

import (
	"errors"
	"net/http"

	"taskapp/internal/adapter/http/validation"
	"taskapp/internal/core/domain"
	"taskapp/internal/core/model/response"

	"github.com/gin-gonic/gin"
)

func SendSuccess(c *gin.Context, statusCode int, data any, message ...string) {
	resp := response.SuccessResponse{
		Data: data,
	}

	if len(message) > 0 && message[0] != "" {
		resp.Message = message[0]
	}

	c.JSON(statusCode, resp)
}

func SendError(c *gin.Context, statusCode int, code string, errors []response.ValidationError) {
	c.JSON(statusCode, response.ErrorResponse{
		Error: response.ResponseError{
			Code:   code,
			Errors: errors,
		},
	})
}

func SendValidationError(c *gin.Context, err error) {
	SendError(c, http.StatusBadRequest, "VALIDATION_ERROR", validation.FormatValidationErrors(err))
}

func SendFieldError(c *gin.Context, statusCode int, code, field, message string) {
	SendError(c, statusCode, code, []response.ValidationError{
		{Field: field, Message: message},
	})
}

func SendUnauthorizedError(c *gin.Context, message string) {
	SendFieldError(c, http.StatusUnauthorized, "UNAUTHORIZED", "auth", message)
}

func SendInternalError(c *gin.Context, message string) {
	SendFieldError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "server", message)
}

// SendDomainError maps the domain sentinels to HTTP statuses. The
// sentinel message is the only detail a client sees.
func SendDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrDuplicateIdentity):
		SendFieldError(c, http.StatusConflict, "DUPLICATE_IDENTITY", "registration", domain.ErrDuplicateIdentity.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		SendUnauthorizedError(c, domain.ErrInvalidCredentials.Error())
	case errors.Is(err, domain.ErrTaskNotFound):
		SendFieldError(c, http.StatusNotFound, "NOT_FOUND", "resource", domain.ErrTaskNotFound.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		SendFieldError(c, http.StatusBadRequest, "BAD_REQUEST", "request", domain.ErrInvalidInput.Error())
	default:
		SendInternalError(c, "Internal server error")
	}
}
