package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/idosos/backend/internal/api/dto"
	"github.com/idosos/backend/internal/core/domain"
	"github.com/idosos/backend/internal/core/service"
	"github.com/sirupsen/logrus"
)

// ErrorHandlerMiddleware recovers panics and turns errors attached with
// c.Error into JSON error responses. It is the only place where error kinds
// become status codes.
func ErrorHandlerMiddleware(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.WithFields(logrus.Fields{
					"panic": err,
					"path":  c.Request.URL.Path,
				}).Error("Recovered from panic")
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Error: "An unexpected error occurred",
					Code:  http.StatusInternalServerError,
				})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		ginErr := c.Errors.Last()
		code := StatusForError(ginErr)
		if code >= http.StatusInternalServerError {
			logger.WithError(ginErr.Err).WithField("path", c.Request.URL.Path).Error("Request failed")
		}

		c.JSON(code, dto.ErrorResponse{
			Error: ginErr.Err.Error(),
			Code:  code,
		})
	}
}

// StatusForError maps an error to its HTTP status code. Storage and
// upstream faults, like anything unexpected, are server errors.
func StatusForError(ginErr *gin.Error) int {
	var validationErr *service.ValidationError

	switch {
	case ginErr.IsType(gin.ErrorTypeBind):
		return http.StatusBadRequest
	case errors.As(ginErr.Err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(ginErr.Err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
