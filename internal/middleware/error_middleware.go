package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/airlinehub/internal/app/models/dto"
	"github.com/yigit/airlinehub/internal/pkg/apperrors"
	"github.com/yigit/airlinehub/internal/pkg/logger"
)

// HandleAPIError maps an error to its HTTP status and error body.
// Unexpected errors are logged here and reach the client as an opaque message.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, messageOr(err, "Resource not found.")))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, messageOr(err, "Validation failed.")))
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeBadRequest, messageOr(err, "Bad request.")))
	default:
		event := logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("requestID", GetRequestID(c))
		if errors.Is(err, apperrors.ErrAirportReference) {
			event = event.Str("cause", "foreign key violation")
		}
		event.Msg("Request failed with internal error")

		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeInternalServer, "Internal server error."))
	}
}

// HandleBindError answers a request whose body could not be decoded or validated
func HandleBindError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrValidationFailed) {
		HandleAPIError(c, err)
		return
	}
	if details := validationDetails(err); details != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid request body.").WithDetails(details))
		return
	}
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeBadRequest, "Invalid request body.").WithDetails(err.Error()))
}

func messageOr(err error, fallback string) string {
	if msg := apperrors.UserMessage(err); msg != "" {
		return msg
	}
	return fallback
}
