package handler

import (
	"net/http"

	"members-admin-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type BaseHandler struct {
	logger *logrus.Logger
}

func NewBaseHandler(logger *logrus.Logger) *BaseHandler {
	return &BaseHandler{
		logger: logger,
	}
}

func (h *BaseHandler) logRequest(c echo.Context, operation string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"operation":  operation,
		"method":     c.Request().Method,
		"path":       c.Request().URL.Path,
		"ip":         c.RealIP(),
		"user_agent": c.Request().UserAgent(),
	})
}

// respondError переводит domain ошибку в HTTP ответ
func (h *BaseHandler) respondError(c echo.Context, logEntry *logrus.Entry, err error, message string) error {
	status := getHTTPStatusCode(err)
	if status >= http.StatusInternalServerError {
		logEntry.WithError(err).Error(message)
	} else {
		logEntry.WithError(err).Warn(message)
	}

	if httpErr, exists := domain.ToHTTPError(err); exists {
		return c.JSON(status, toAPIErrorResponse(httpErr))
	}
	return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
}
