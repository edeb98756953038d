package handlers

import (
	"errors"
	"net/http"

	"condition_monitor/internal/condition"
	"condition_monitor/internal/service"

	"github.com/gin-gonic/gin"
)

// User-facing error messages.
const (
	errBadRequestBody = "bad request body"
	errNotFound       = "not found"
	errInternal       = "internal server error"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...any) {
	if err != nil {
		fields := append([]any{"request_id", c.GetString(ctxRequestID), "err", err}, kv...)
		if httpCode >= http.StatusInternalServerError {
			h.log.Errorw(logKey, fields...)
		} else {
			h.log.Infow(logKey, fields...)
		}
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// respondServiceError maps domain errors to HTTP statuses. Stored data that
// fails to classify is a server fault even though it wraps a format error.
func (h *Handler) respondServiceError(c *gin.Context, logKey string, err error, kv ...any) {
	var classErr *condition.ClassificationError
	switch {
	case errors.As(err, &classErr):
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, logKey, err, kv...)
	case errors.Is(err, service.ErrDeviceNotFound):
		h.logAndJSONError(c, http.StatusNotFound, errNotFound, logKey, err, kv...)
	case errors.Is(err, service.ErrDeviceExists):
		h.logAndJSONError(c, http.StatusConflict, "device already registered", logKey, err, kv...)
	case errors.Is(err, service.ErrInvalidDevice):
		h.logAndJSONError(c, http.StatusBadRequest, err.Error(), logKey, err, kv...)
	case errors.Is(err, service.ErrEmptyBatch), errors.Is(err, condition.ErrInvalidFormat):
		h.logAndJSONError(c, http.StatusBadRequest, errBadRequestBody, logKey, err, kv...)
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, logKey, err, kv...)
	}
}
