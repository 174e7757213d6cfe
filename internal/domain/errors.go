package domain

import "errors"

// Domain errors (для бизнес-логики)
var (
	// Validation errors
	ErrInvalidSessionID = errors.New("invalid session id")
	ErrInvalidMemberID  = errors.New("invalid member id")
	ErrPageOutOfRange   = errors.New("page out of range")
	ErrRowNotOnPage     = errors.New("row is not on the current page")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Member errors
	ErrMemberNotFound = errors.New("member not found")

	// Row editor errors
	ErrNotEditing = errors.New("no row is being edited")

	// Bulk delete errors
	ErrNothingSelected = errors.New("no rows selected")
	ErrDialogNotOpen   = errors.New("bulk delete dialog is not open")

	// Data source errors
	ErrFetchFailed = errors.New("members fetch failed")
)

// HTTPError для соответствия OpenAPI
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error HTTPError `json:"error"`
}

// Маппинг domain ошибок в HTTP ошибки
var ErrorMapping = map[error]HTTPError{
	ErrInvalidSessionID: {Code: "INVALID_REQUEST", Message: "session id is required"},
	ErrInvalidMemberID:  {Code: "INVALID_REQUEST", Message: "member id is required"},
	ErrPageOutOfRange:   {Code: "PAGE_OUT_OF_RANGE", Message: "page does not exist"},
	ErrRowNotOnPage:     {Code: "ROW_NOT_ON_PAGE", Message: "row is not visible on the current page"},
	ErrSessionNotFound:  {Code: "NOT_FOUND", Message: "session not found"},
	ErrMemberNotFound:   {Code: "NOT_FOUND", Message: "member not found"},
	ErrNotEditing:       {Code: "NOT_EDITING", Message: "no row is in edit mode"},
	ErrNothingSelected:  {Code: "NOTHING_SELECTED", Message: "select at least one row"},
	ErrDialogNotOpen:    {Code: "DIALOG_NOT_OPEN", Message: "bulk delete dialog is not open"},
	ErrFetchFailed:      {Code: "FETCH_FAILURE", Message: "members could not be loaded"},
}

// ToHTTPError преобразует domain ошибку в HTTP ошибку
func ToHTTPError(err error) (HTTPError, bool) {
	for domainErr, httpErr := range ErrorMapping {
		if errors.Is(err, domainErr) {
			return httpErr, true
		}
	}
	return HTTPError{}, false
}
