package handler

import (
	"errors"
	"net/http"

	"members-admin-service/api"
	"members-admin-service/internal/domain"
)

// Вспомогательные функции преобразования доменных моделей в API модели

func toAPIMember(member domain.Member) api.Member {
	return api.Member{
		Id:    member.ID,
		Name:  member.Name,
		Email: member.Email,
		Role:  member.Role,
	}
}

func toAPIView(view *domain.TableView) api.TableView {
	rows := make([]api.TableRow, len(view.Rows))
	for i, row := range view.Rows {
		rows[i] = api.TableRow{
			Member:   toAPIMember(row.Member),
			Selected: row.Selected,
			Editing:  row.Editing,
		}
		if row.Draft != nil {
			rows[i].Draft = &api.MemberDraft{
				Name:  row.Draft.Name,
				Email: row.Draft.Email,
				Role:  row.Draft.Role,
			}
		}
	}

	result := api.TableView{
		Query:             view.Query,
		SearchEnabled:     view.SearchEnabled,
		Page:              view.Page,
		PageCount:         view.PageCount,
		PageSize:          view.PageSize,
		Total:             view.Total,
		Rows:              rows,
		SelectedCount:     view.SelectedCount,
		BulkDeleteEnabled: view.BulkDeleteEnabled,
		HighlightOnHover:  true,
		FetchStatus:       api.TableViewFetchStatus(view.FetchStatus),
	}

	if view.EditingID != "" {
		editingID := view.EditingID
		result.EditingId = &editingID
	}

	if view.Dialog != nil {
		result.Dialog = &api.BulkDeleteDialog{
			Prompt:      view.Dialog.Prompt,
			SelectedIds: view.Dialog.SelectedIDs,
			IdList:      view.Dialog.IDList,
		}
	}

	return result
}

func toAPISession(session *domain.Session) api.Session {
	return api.Session{
		SessionId: session.ID,
		View:      toAPIView(session.View),
	}
}

func toErrorResponse(code, message string) api.ErrorResponse {
	var resp api.ErrorResponse
	resp.Error.Code = api.ErrorResponseErrorCode(code)
	resp.Error.Message = message
	return resp
}

func toAPIErrorResponse(httpErr domain.HTTPError) api.ErrorResponse {
	return toErrorResponse(httpErr.Code, httpErr.Message)
}

func getHTTPStatusCode(err error) int {
	switch {
	// Not Found errors (404)
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrMemberNotFound):
		return http.StatusNotFound

	// Bad Request errors (400) - валидация
	case errors.Is(err, domain.ErrInvalidSessionID), errors.Is(err, domain.ErrInvalidMemberID),
		errors.Is(err, domain.ErrPageOutOfRange), errors.Is(err, domain.ErrRowNotOnPage):
		return http.StatusBadRequest

	// Conflict errors (409) - недопустимый переход состояния таблицы
	case errors.Is(err, domain.ErrNotEditing), errors.Is(err, domain.ErrNothingSelected),
		errors.Is(err, domain.ErrDialogNotOpen):
		return http.StatusConflict

	// Upstream errors (502)
	case errors.Is(err, domain.ErrFetchFailed):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}
