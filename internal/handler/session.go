package handler

import (
	"net/http"

	"members-admin-service/api"
	"members-admin-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// SessionHandler обрабатывает монтирование и размонтирование таблиц.
type SessionHandler struct {
	*BaseHandler
	tableUseCase domain.TableUseCase
}

// NewSessionHandler создает новый экземпляр SessionHandler.
func NewSessionHandler(tableUseCase domain.TableUseCase, logger *logrus.Logger) *SessionHandler {
	return &SessionHandler{
		BaseHandler:  NewBaseHandler(logger),
		tableUseCase: tableUseCase,
	}
}

// PostSessions монтирует таблицу и загружает участников.
func (h *SessionHandler) PostSessions(c echo.Context) error {
	logEntry := h.logRequest(c, "mount_table")
	logEntry.Info("Mounting members table")

	session, err := h.tableUseCase.Mount(c.Request().Context())
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to mount members table")
	}

	logEntry.WithFields(logrus.Fields{
		"session_id":   session.ID,
		"total":        session.View.Total,
		"fetch_status": session.View.FetchStatus,
	}).Info("Members table mounted")
	return c.JSON(http.StatusCreated, toAPISession(session))
}

// GetSessionsSessionId возвращает текущее состояние таблицы.
func (h *SessionHandler) GetSessionsSessionId(c echo.Context, sessionId api.SessionIdPath) error {
	logEntry := h.logRequest(c, "get_view").WithField("session_id", sessionId)

	view, err := h.tableUseCase.GetView(c.Request().Context(), sessionId)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to get table view")
	}

	return c.JSON(http.StatusOK, toAPIView(view))
}

// DeleteSessionsSessionId размонтирует таблицу.
func (h *SessionHandler) DeleteSessionsSessionId(c echo.Context, sessionId api.SessionIdPath) error {
	logEntry := h.logRequest(c, "unmount_table").WithField("session_id", sessionId)

	if err := h.tableUseCase.Unmount(c.Request().Context(), sessionId); err != nil {
		return h.respondError(c, logEntry, err, "Failed to unmount members table")
	}

	logEntry.Info("Members table unmounted")
	return c.NoContent(http.StatusNoContent)
}
