package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillbridge-backend/internal/delivery/http/response"
	"skillbridge-backend/pkg/apperror"
	"skillbridge-backend/pkg/logger"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}
		// Never expose internal error details to clients.
		logger.Log.Error("Unhandled request error", "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
