package utils

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"servana/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorKind classifies an APIError for translation to an HTTP response.
type ErrorKind string

const (
	ErrValidation        ErrorKind = "validation"
	ErrAuthentication    ErrorKind = "authentication"
	ErrAuthorization     ErrorKind = "authorization"
	ErrNotFound          ErrorKind = "not_found"
	ErrConflict          ErrorKind = "conflict"
	ErrInvalidTransition ErrorKind = "invalid_transition"
	ErrUpstream          ErrorKind = "upstream"
)

// APIError is a recognized, client-facing error. Anything else falls through
// to a generic server error.
type APIError struct {
	Kind    ErrorKind         `json:"kind"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	cause   error
}

func (e *APIError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error { return e.cause }

// Status maps the error kind to its HTTP status code.
func (e *APIError) Status() int {
	switch e.Kind {
	case ErrValidation, ErrConflict, ErrInvalidTransition:
		return http.StatusBadRequest
	case ErrAuthentication:
		return http.StatusUnauthorized
	case ErrAuthorization:
		return http.StatusForbidden
	case ErrNotFound:
		return http.StatusNotFound
	case ErrUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func ValidationError(message string, fields map[string]string) *APIError {
	return &APIError{Kind: ErrValidation, Message: message, Fields: fields}
}

func AuthError(message string) *APIError {
	return &APIError{Kind: ErrAuthentication, Message: message}
}

func ForbiddenError(message string) *APIError {
	return &APIError{Kind: ErrAuthorization, Message: message}
}

func NotFoundError(resource string) *APIError {
	return &APIError{Kind: ErrNotFound, Message: resource + " not found"}
}

func ConflictError(message string, fields map[string]string) *APIError {
	return &APIError{Kind: ErrConflict, Message: message, Fields: fields}
}

func TransitionError(current, target string) *APIError {
	return &APIError{
		Kind:    ErrInvalidTransition,
		Message: fmt.Sprintf("cannot transition booking from %q to %q", current, target),
	}
}

func UpstreamError(message string, cause error) *APIError {
	return &APIError{Kind: ErrUpstream, Message: message, cause: cause}
}

// RespondError translates an error into the standard envelope. Recognized
// APIErrors map to their status; everything else becomes a 500 with stack
// detail only outside production.
func RespondError(c *gin.Context, err error) {
	logger := GetLogger()

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		logger.Warn("request failed",
			zap.String("kind", string(apiErr.Kind)),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		body := gin.H{"success": false, "message": apiErr.Message}
		if len(apiErr.Fields) > 0 {
			body["errors"] = apiErr.Fields
		}
		c.AbortWithStatusJSON(apiErr.Status(), body)
		return
	}

	logger.Error("unhandled error", zap.String("path", c.FullPath()), zap.Error(err))
	body := gin.H{"success": false, "message": "Internal server error"}
	if !config.IsProduction() {
		body["errors"] = gin.H{"detail": err.Error()}
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, body)
}

// ErrorHandler catches panics and returns a structured server error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic",
					zap.Any("error", r),
					zap.ByteString("stack", debug.Stack()),
				)
				body := gin.H{"success": false, "message": "Internal server error"}
				if !config.IsProduction() {
					body["errors"] = gin.H{"detail": fmt.Sprint(r)}
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, body)
			}
		}()
		c.Next()
	}
}
