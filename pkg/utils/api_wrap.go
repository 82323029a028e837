package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	TraceIDKey = "trace_id"
	LoggerKey  = "logger"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusCreated, data, message)
}

func respond(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString(TraceIDKey),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString(TraceIDKey),
	})
}

// Logger returns the request-scoped logger set by the logging middleware,
// or a no-op logger outside of it.
func Logger(c *gin.Context) *zap.Logger {
	if v, ok := c.Get(LoggerKey); ok {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	return zap.NewNop()
}

func HandleServiceError(c *gin.Context, err error) {
	var fieldErr *FieldError

	switch {
	case errors.As(err, &fieldErr):
		RespondError(c, http.StatusBadRequest, fieldErr.Error())
	case errors.Is(err, ErrInvalidTransition):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrReservationNotFound):
		RespondError(c, http.StatusNotFound, "Reservation not found")
	case errors.Is(err, ErrProposalNotFound):
		RespondError(c, http.StatusNotFound, "Proposal not found")
	case errors.Is(err, ErrGuestNotFound):
		RespondError(c, http.StatusNotFound, "Guest not found")
	case errors.Is(err, ErrMemberNotFound):
		RespondError(c, http.StatusNotFound, "Member not found")
	case errors.Is(err, ErrDatabaseError):
		Logger(c).Error("database error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		Logger(c).Error("unexpected error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
