package handler_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"members-admin-service/api"
	"members-admin-service/internal/domain"
	"members-admin-service/internal/domain/mocks"
	"members-admin-service/internal/handler"
	"members-admin-service/internal/usecase"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type TableHandlerTestSuite struct {
	suite.Suite
	source    *mocks.MemberSource
	echo      *echo.Echo
	sessionID string
}

func (suite *TableHandlerTestSuite) SetupTest() {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	members := make([]*domain.Member, 23)
	for i := range members {
		members[i] = &domain.Member{
			ID:    fmt.Sprintf("%d", i+1),
			Name:  fmt.Sprintf("Member %d", i+1),
			Email: fmt.Sprintf("member%d@mail.com", i+1),
			Role:  "member",
		}
	}
	members[4].Role = "admin"

	suite.source = &mocks.MemberSource{}
	suite.source.On("FetchMembers", mock.Anything).Return(members, nil)

	tableUC := usecase.NewTableUseCase(suite.source, 10, logger)

	suite.echo = echo.New()
	suite.echo.JSONSerializer = handler.JSONSerializer{}
	suite.echo.Use(handler.LoggingMiddleware(logger))
	api.RegisterHandlers(suite.echo, handler.NewAPIHandler(tableUC, logger))

	rec := suite.do(http.MethodPost, "/sessions", nil)
	suite.Require().Equal(http.StatusCreated, rec.Code)

	var session api.Session
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &session))
	suite.sessionID = session.SessionId
}

func (suite *TableHandlerTestSuite) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	return rec
}

func (suite *TableHandlerTestSuite) view(rec *httptest.ResponseRecorder) api.TableView {
	var view api.TableView
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &view))
	return view
}

func (suite *TableHandlerTestSuite) errorCode(rec *httptest.ResponseRecorder) api.ErrorResponseErrorCode {
	var resp api.ErrorResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Code
}

func (suite *TableHandlerTestSuite) path(suffix string) string {
	return "/sessions/" + suite.sessionID + suffix
}

func (suite *TableHandlerTestSuite) TestGetView() {
	rec := suite.do(http.MethodGet, suite.path(""), nil)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	view := suite.view(rec)
	assert.Equal(suite.T(), 23, view.Total)
	assert.Equal(suite.T(), 3, view.PageCount)
	assert.Len(suite.T(), view.Rows, 10)
	assert.True(suite.T(), view.HighlightOnHover)
	assert.Equal(suite.T(), api.TableViewFetchStatusLOADED, view.FetchStatus)
	assert.False(suite.T(), view.BulkDeleteEnabled)
	assert.Nil(suite.T(), view.Dialog)
	assert.Nil(suite.T(), view.EditingId)
}

func (suite *TableHandlerTestSuite) TestUnknownSession() {
	rec := suite.do(http.MethodGet, "/sessions/unknown", nil)

	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
	assert.Equal(suite.T(), api.NOTFOUND, suite.errorCode(rec))
}

func (suite *TableHandlerTestSuite) TestSearch() {
	rec := suite.do(http.MethodPut, suite.path("/search"), api.PutSessionsSessionIdSearchJSONBody{Query: "ADMIN"})

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	view := suite.view(rec)
	assert.Equal(suite.T(), 1, view.Total)
	assert.Equal(suite.T(), "5", view.Rows[0].Member.Id)
	assert.True(suite.T(), view.SearchEnabled)

	rec = suite.do(http.MethodPost, suite.path("/search/submit"), nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Equal(suite.T(), 1, suite.view(rec).Total)

	rec = suite.do(http.MethodPut, suite.path("/search"), api.PutSessionsSessionIdSearchJSONBody{Query: ""})
	assert.Equal(suite.T(), 23, suite.view(rec).Total)
}

func (suite *TableHandlerTestSuite) TestSearch_InvalidBody() {
	req := httptest.NewRequest(http.MethodPut, suite.path("/search"), bytes.NewReader([]byte(`{"query":`)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	suite.echo.ServeHTTP(rec, req)

	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	assert.Equal(suite.T(), api.INVALIDREQUEST, suite.errorCode(rec))
}

func (suite *TableHandlerTestSuite) TestSetPage() {
	rec := suite.do(http.MethodPut, suite.path("/page"), api.PutSessionsSessionIdPageJSONBody{Page: 3})

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	view := suite.view(rec)
	assert.Equal(suite.T(), 3, view.Page)
	assert.Len(suite.T(), view.Rows, 3)

	rec = suite.do(http.MethodPut, suite.path("/page"), api.PutSessionsSessionIdPageJSONBody{Page: 9})
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	assert.Equal(suite.T(), api.PAGEOUTOFRANGE, suite.errorCode(rec))
}

func (suite *TableHandlerTestSuite) TestSelectionAndBulkDelete() {
	rec := suite.do(http.MethodPost, suite.path("/bulk-delete"), nil)
	assert.Equal(suite.T(), http.StatusConflict, rec.Code)
	assert.Equal(suite.T(), api.NOTHINGSELECTED, suite.errorCode(rec))

	suite.do(http.MethodPost, suite.path("/selection/toggle"), api.PostSessionsSessionIdSelectionToggleJSONBody{Row: 0})
	rec = suite.do(http.MethodPost, suite.path("/selection/toggle"), api.PostSessionsSessionIdSelectionToggleJSONBody{Row: 9})
	view := suite.view(rec)
	assert.Equal(suite.T(), 2, view.SelectedCount)
	assert.True(suite.T(), view.BulkDeleteEnabled)
	assert.True(suite.T(), view.Rows[0].Selected)
	assert.True(suite.T(), view.Rows[9].Selected)

	rec = suite.do(http.MethodPost, suite.path("/selection/toggle"), api.PostSessionsSessionIdSelectionToggleJSONBody{Row: 10})
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	assert.Equal(suite.T(), api.ROWNOTONPAGE, suite.errorCode(rec))

	rec = suite.do(http.MethodPost, suite.path("/bulk-delete"), nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	view = suite.view(rec)
	require.NotNil(suite.T(), view.Dialog)
	assert.Equal(suite.T(), domain.BulkDeletePrompt, view.Dialog.Prompt)
	assert.Equal(suite.T(), "1, 10", view.Dialog.IdList)
	assert.Equal(suite.T(), []string{"1", "10"}, view.Dialog.SelectedIds)

	rec = suite.do(http.MethodPost, suite.path("/bulk-delete/confirm"), nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	view = suite.view(rec)
	assert.Equal(suite.T(), 21, view.Total)
	assert.Zero(suite.T(), view.SelectedCount)
	assert.Nil(suite.T(), view.Dialog)
	assert.Equal(suite.T(), "2", view.Rows[0].Member.Id)

	rec = suite.do(http.MethodPost, suite.path("/bulk-delete/confirm"), nil)
	assert.Equal(suite.T(), http.StatusConflict, rec.Code)
	assert.Equal(suite.T(), api.DIALOGNOTOPEN, suite.errorCode(rec))
}

func (suite *TableHandlerTestSuite) TestSelectPageAndClose() {
	rec := suite.do(http.MethodPost, suite.path("/selection/page"), api.PostSessionsSessionIdSelectionPageJSONBody{Selected: true})
	assert.Equal(suite.T(), 10, suite.view(rec).SelectedCount)

	suite.do(http.MethodPost, suite.path("/bulk-delete"), nil)
	rec = suite.do(http.MethodPost, suite.path("/bulk-delete/close"), nil)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	view := suite.view(rec)
	assert.Nil(suite.T(), view.Dialog)
	assert.Equal(suite.T(), 23, view.Total)
	assert.Equal(suite.T(), 10, view.SelectedCount)
}

func (suite *TableHandlerTestSuite) TestEditAndSave() {
	rec := suite.do(http.MethodPost, suite.path("/draft/save"), nil)
	assert.Equal(suite.T(), http.StatusConflict, rec.Code)
	assert.Equal(suite.T(), api.NOTEDITING, suite.errorCode(rec))

	rec = suite.do(http.MethodPost, suite.path("/rows/404/edit"), nil)
	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)

	rec = suite.do(http.MethodPost, suite.path("/rows/3/edit"), nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	view := suite.view(rec)
	require.NotNil(suite.T(), view.EditingId)
	assert.Equal(suite.T(), "3", *view.EditingId)
	assert.True(suite.T(), view.Rows[2].Editing)
	require.NotNil(suite.T(), view.Rows[2].Draft)
	assert.Equal(suite.T(), "Member 3", view.Rows[2].Draft.Name)

	rec = suite.do(http.MethodPut, suite.path("/draft"), api.MemberDraft{Name: "Carol", Email: "carol@mail.com", Role: "admin"})
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Equal(suite.T(), "Carol", suite.view(rec).Rows[2].Draft.Name)

	rec = suite.do(http.MethodPost, suite.path("/draft/save"), nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	view = suite.view(rec)
	assert.Nil(suite.T(), view.EditingId)
	assert.False(suite.T(), view.Rows[2].Editing)
	assert.Equal(suite.T(), api.Member{Id: "3", Name: "Carol", Email: "carol@mail.com", Role: "admin"}, view.Rows[2].Member)
}

func (suite *TableHandlerTestSuite) TestDeleteRow() {
	rec := suite.do(http.MethodDelete, suite.path("/rows/2"), nil)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	view := suite.view(rec)
	assert.Equal(suite.T(), 22, view.Total)
	assert.Equal(suite.T(), "3", view.Rows[1].Member.Id)

	rec = suite.do(http.MethodDelete, suite.path("/rows/2"), nil)
	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
}

func (suite *TableHandlerTestSuite) TestUnmount() {
	rec := suite.do(http.MethodDelete, suite.path(""), nil)
	assert.Equal(suite.T(), http.StatusNoContent, rec.Code)

	rec = suite.do(http.MethodGet, suite.path(""), nil)
	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
}

func TestTableHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TableHandlerTestSuite))
}

func TestSessionHandler_MountWithFetchFailure(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	source := mocks.NewMemberSource(t)
	source.On("FetchMembers", mock.Anything).Return(nil, domain.ErrFetchFailed).Once()

	h := handler.NewSessionHandler(usecase.NewTableUseCase(source, 10, logger), logger)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/sessions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.PostSessions(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var session api.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.NotEmpty(t, session.SessionId)
	assert.Equal(t, api.TableViewFetchStatusFETCHFAILURE, session.View.FetchStatus)
	assert.Empty(t, session.View.Rows)
}

type failingUseCase struct {
	domain.TableUseCase
}

func (failingUseCase) GetView(ctx context.Context, sessionID string) (*domain.TableView, error) {
	return nil, fmt.Errorf("unexpected")
}

func TestSessionHandler_InternalError(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	h := handler.NewSessionHandler(failingUseCase{}, logger)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/sessions/s1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.GetSessionsSessionId(c, "s1")

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}
