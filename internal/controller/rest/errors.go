package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/service"
	"go.uber.org/zap"
)

var errInvalidID = errors.New("invalid id")

// statusCode сопоставляет ошибку сервиса с HTTP кодом
func statusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrStudentNotFound),
		errors.Is(err, service.ErrTutorNotFound),
		errors.Is(err, service.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrGenderRequired),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidDateTime),
		errors.Is(err, service.ErrPasswordTooLong),
		errors.Is(err, errInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage текст ошибки для клиента; детали ошибок хранилища не раскрываются
func errorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrConflict):
		return "username, email or phone number is already taken"
	case statusCode(err) == http.StatusInternalServerError:
		return "internal server error"
	default:
		return err.Error()
	}
}

// fail отвечает JSON ошибкой и логирует её
func (h *Handlers) fail(c *gin.Context, err error) {
	code := statusCode(err)

	fields := []zap.Field{
		zap.String("request_id", requestID(c)),
		zap.String("route", c.FullPath()),
		zap.Int("status", code),
		zap.Error(err),
	}
	if code >= http.StatusInternalServerError {
		h.logger.Error("Request failed", fields...)
	} else {
		h.logger.Warn("Request rejected", fields...)
	}

	c.JSON(code, gin.H{"error": errorMessage(err)})
}

// replyText отвечает строкой: success при err == nil, иначе сообщение
// из messages для первой подходящей ошибки. Остальные ошибки идут в fail.
func (h *Handlers) replyText(c *gin.Context, err error, success string, messages map[error]string) {
	if err == nil {
		c.String(http.StatusOK, success)
		return
	}

	for target, text := range messages {
		if errors.Is(err, target) {
			h.logger.Warn("Request rejected",
				zap.String("request_id", requestID(c)),
				zap.String("route", c.FullPath()),
				zap.Error(err),
			)
			c.String(statusCode(err), text)
			return
		}
	}

	h.fail(c, err)
}
