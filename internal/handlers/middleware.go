package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	ctxRequestID    = "requestId"
	ctxUserID       = "userId"
)

// requestIDMiddleware tags each request with an id (reusing a client supplied
// one) and logs one line per request.
func (h *Handler) requestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(ctxRequestID, id)
	c.Header(requestIDHeader, id)

	start := time.Now()
	c.Next()

	h.log.Infow("http_request",
		"request_id", id,
		"method", c.Request.Method,
		"route", c.FullPath(),
		"status", c.Writer.Status(),
		"latency", time.Since(start),
	)
}

const (
	errMissingAuth   = "missing Authorization header"
	errMalformedAuth = "invalid Authorization header format"
	errInvalidToken  = "invalid or expired token"
)

// ownerMiddleware resolves the bearer token to the owning user id.
func (h *Handler) ownerMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		h.rejectAuth(c, errMissingAuth, nil)
		return
	}

	scheme, token, ok := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		h.rejectAuth(c, errMalformedAuth, nil)
		return
	}

	id, err := h.services.ParseToken(token)
	if err != nil {
		h.rejectAuth(c, errInvalidToken, err)
		return
	}

	c.Set(ctxUserID, id)
	c.Next()
}

func (h *Handler) rejectAuth(c *gin.Context, msg string, err error) {
	h.log.Infow("auth_rejected",
		"request_id", c.GetString(ctxRequestID),
		"route", c.FullPath(),
		"reason", msg,
		"err", err,
	)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}

// userID returns the id stored by ownerMiddleware.
func userID(c *gin.Context) int {
	return c.GetInt(ctxUserID)
}
