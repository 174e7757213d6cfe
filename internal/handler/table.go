package handler

import (
	"net/http"

	"members-admin-service/api"
	"members-admin-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// TableHandler обрабатывает команды пользователя над таблицей участников
type TableHandler struct {
	*BaseHandler
	tableUseCase domain.TableUseCase
}

// NewTableHandler создает новый экземпляр TableHandler
func NewTableHandler(tableUseCase domain.TableUseCase, logger *logrus.Logger) *TableHandler {
	return &TableHandler{
		BaseHandler:  NewBaseHandler(logger),
		tableUseCase: tableUseCase,
	}
}

// PutSessionsSessionIdSearch обрабатывает ввод в поле поиска
func (h *TableHandler) PutSessionsSessionIdSearch(c echo.Context, sessionId api.SessionIdPath) error {
	var req api.PutSessionsSessionIdSearchJSONBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind search request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "search").WithFields(logrus.Fields{
		"session_id": sessionId,
		"query":      req.Query,
	})

	view, err := h.tableUseCase.Search(c.Request().Context(), sessionId, req.Query)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to search members")
	}

	logEntry.WithField("total", view.Total).Debug("Search applied")
	return c.JSON(http.StatusOK, toAPIView(view))
}

// PostSessionsSessionIdSearchSubmit обрабатывает Enter или кнопку поиска
func (h *TableHandler) PostSessionsSessionIdSearchSubmit(c echo.Context, sessionId api.SessionIdPath) error {
	logEntry := h.logRequest(c, "submit_search").WithField("session_id", sessionId)

	view, err := h.tableUseCase.SubmitSearch(c.Request().Context(), sessionId)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to submit search")
	}

	logEntry.WithFields(logrus.Fields{
		"query": view.Query,
		"total": view.Total,
	}).Info("Search submitted")
	return c.JSON(http.StatusOK, toAPIView(view))
}

// PutSessionsSessionIdPage обрабатывает переключение страницы
func (h *TableHandler) PutSessionsSessionIdPage(c echo.Context, sessionId api.SessionIdPath) error {
	var req api.PutSessionsSessionIdPageJSONBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind page request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "set_page").WithFields(logrus.Fields{
		"session_id": sessionId,
		"page":       req.Page,
	})

	view, err := h.tableUseCase.SetPage(c.Request().Context(), sessionId, req.Page)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to set page")
	}

	return c.JSON(http.StatusOK, toAPIView(view))
}

// PostSessionsSessionIdSelectionToggle обрабатывает чекбокс строки
func (h *TableHandler) PostSessionsSessionIdSelectionToggle(c echo.Context, sessionId api.SessionIdPath) error {
	var req api.PostSessionsSessionIdSelectionToggleJSONBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind toggle request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "toggle_row").WithFields(logrus.Fields{
		"session_id": sessionId,
		"row":        req.Row,
	})

	view, err := h.tableUseCase.ToggleRow(c.Request().Context(), sessionId, req.Row)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to toggle row selection")
	}

	return c.JSON(http.StatusOK, toAPIView(view))
}

// PostSessionsSessionIdSelectionPage обрабатывает чекбокс в заголовке таблицы
func (h *TableHandler) PostSessionsSessionIdSelectionPage(c echo.Context, sessionId api.SessionIdPath) error {
	var req api.PostSessionsSessionIdSelectionPageJSONBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind select page request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "select_page").WithFields(logrus.Fields{
		"session_id": sessionId,
		"selected":   req.Selected,
	})

	view, err := h.tableUseCase.SelectPage(c.Request().Context(), sessionId, req.Selected)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to select page")
	}

	return c.JSON(http.StatusOK, toAPIView(view))
}

// PostSessionsSessionIdRowsMemberIdEdit переводит строку в режим редактирования
func (h *TableHandler) PostSessionsSessionIdRowsMemberIdEdit(c echo.Context, sessionId api.SessionIdPath, memberId api.MemberIdPath) error {
	logEntry := h.logRequest(c, "edit_row").WithFields(logrus.Fields{
		"session_id": sessionId,
		"member_id":  memberId,
	})

	view, err := h.tableUseCase.EditRow(c.Request().Context(), sessionId, memberId)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to start row edit")
	}

	logEntry.Info("Row switched to edit mode")
	return c.JSON(http.StatusOK, toAPIView(view))
}

// PutSessionsSessionIdDraft обновляет буфер редактирования
func (h *TableHandler) PutSessionsSessionIdDraft(c echo.Context, sessionId api.SessionIdPath) error {
	var req api.PutSessionsSessionIdDraftJSONRequestBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind draft request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "update_draft").WithField("session_id", sessionId)

	view, err := h.tableUseCase.UpdateDraft(c.Request().Context(), sessionId, domain.MemberDraft{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to update draft")
	}

	return c.JSON(http.StatusOK, toAPIView(view))
}

// PostSessionsSessionIdDraftSave сохраняет буфер редактирования в запись
func (h *TableHandler) PostSessionsSessionIdDraftSave(c echo.Context, sessionId api.SessionIdPath) error {
	logEntry := h.logRequest(c, "save_row").WithField("session_id", sessionId)

	view, err := h.tableUseCase.SaveRow(c.Request().Context(), sessionId)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to save row")
	}

	logEntry.Info("Row saved")
	return c.JSON(http.StatusOK, toAPIView(view))
}

// DeleteSessionsSessionIdRowsMemberId удаляет строку без подтверждения
func (h *TableHandler) DeleteSessionsSessionIdRowsMemberId(c echo.Context, sessionId api.SessionIdPath, memberId api.MemberIdPath) error {
	logEntry := h.logRequest(c, "delete_row").WithFields(logrus.Fields{
		"session_id": sessionId,
		"member_id":  memberId,
	})

	view, err := h.tableUseCase.DeleteRow(c.Request().Context(), sessionId, memberId)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to delete row")
	}

	logEntry.WithField("total", view.Total).Info("Row deleted")
	return c.JSON(http.StatusOK, toAPIView(view))
}

// PostSessionsSessionIdBulkDelete открывает диалог массового удаления
func (h *TableHandler) PostSessionsSessionIdBulkDelete(c echo.Context, sessionId api.SessionIdPath) error {
	logEntry := h.logRequest(c, "open_bulk_delete").WithField("session_id", sessionId)

	view, err := h.tableUseCase.OpenBulkDelete(c.Request().Context(), sessionId)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to open bulk delete dialog")
	}

	return c.JSON(http.StatusOK, toAPIView(view))
}

// PostSessionsSessionIdBulkDeleteClose закрывает диалог массового удаления
func (h *TableHandler) PostSessionsSessionIdBulkDeleteClose(c echo.Context, sessionId api.SessionIdPath) error {
	logEntry := h.logRequest(c, "close_bulk_delete").WithField("session_id", sessionId)

	view, err := h.tableUseCase.CloseBulkDelete(c.Request().Context(), sessionId)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to close bulk delete dialog")
	}

	return c.JSON(http.StatusOK, toAPIView(view))
}

// PostSessionsSessionIdBulkDeleteConfirm удаляет выбранные строки
func (h *TableHandler) PostSessionsSessionIdBulkDeleteConfirm(c echo.Context, sessionId api.SessionIdPath) error {
	logEntry := h.logRequest(c, "confirm_bulk_delete").WithField("session_id", sessionId)

	view, err := h.tableUseCase.ConfirmBulkDelete(c.Request().Context(), sessionId)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to delete selected rows")
	}

	logEntry.WithField("total", view.Total).Info("Selected rows deleted")
	return c.JSON(http.StatusOK, toAPIView(view))
}
