package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkpress/backend/internal/media"
	"github.com/inkpress/backend/internal/model"
	"github.com/inkpress/backend/internal/service"
	"github.com/inkpress/backend/internal/validate"
)

func success(c *gin.Context, statusCode int, message string, data any) {
	c.JSON(statusCode, model.Response{
		Status:     "success",
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
	})
}

func fail(c *gin.Context, statusCode int, message string, errs ...string) {
	status := "fail"
	if statusCode >= http.StatusInternalServerError {
		status = "error"
	}
	c.JSON(statusCode, model.ErrorResponse{
		Status:     status,
		StatusCode: statusCode,
		Message:    message,
		Errors:     errs,
	})
}

// errorWriter maps service failures to the wire envelope. Operational
// errors keep their message; anything unexpected is logged in full and
// rendered generically unless running in development.
type errorWriter struct {
	logger *slog.Logger
	dev    bool
}

func (w *errorWriter) write(c *gin.Context, err error, notFoundMsg, conflictMsg string) {
	var ve *validate.ValidationError

	switch {
	case errors.As(err, &ve):
		fail(c, http.StatusBadRequest, ve.Fields[0], ve.Fields...)
	case errors.Is(err, service.ErrNotFound):
		fail(c, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, service.ErrConflict):
		fail(c, http.StatusConflict, conflictMsg)
	case errors.Is(err, service.ErrFieldRequired):
		fail(c, http.StatusBadRequest, "File is required")
	case errors.Is(err, service.ErrInvalidCredential),
		errors.Is(err, service.ErrTokenExpired),
		errors.Is(err, service.ErrTokenInvalid):
		fail(c, http.StatusUnauthorized, "Invalid or expired token")
	case errors.Is(err, service.ErrSessionInvalid):
		fail(c, http.StatusUnauthorized, "Session is no longer valid. Please login again.")
	case errors.Is(err, media.ErrUploadFailed):
		fail(c, http.StatusInternalServerError, "Error occurred while uploading the file")
	default:
		w.logger.ErrorContext(c.Request.Context(), "unexpected error",
			"method", c.Request.Method, "path", c.FullPath(), "error", err)
		if w.dev {
			fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		fail(c, http.StatusInternalServerError, "Something went wrong")
	}
}
