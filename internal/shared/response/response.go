package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"catalog-backend/internal/shared/apperror"
	"catalog-backend/internal/shared/metrics"
)

type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   *Error `json:"error,omitempty"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success responses
func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

func Created(c *gin.Context, data any) {
	Success(c, http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error responses
func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	metrics.DomainErrors.WithLabelValues(code).Inc()
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	})
}

// FromError maps err to its status and code. Messages of domain errors are
// returned as-is; anything else is logged and hidden behind a generic message.
func FromError(c *gin.Context, err error) {
	status := apperror.ToHTTPStatus(err)
	code := apperror.ToErrorCode(err)

	if status == http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
		ErrorResponse(c, status, code, "Internal server error")
		return
	}

	log.Debug().
		Str("request_id", c.GetString("request_id")).
		Str("code", code).
		Msg(err.Error())
	ErrorResponse(c, status, code, err.Error())
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message)
}
