package domain

// FetchStatus описывает результат загрузки данных при монтировании таблицы.
type FetchStatus string

const (
	FetchStatusLoaded  FetchStatus = "LOADED"
	FetchStatusFailure FetchStatus = "FETCH_FAILURE"
)

// BulkDeletePrompt - текст диалога подтверждения массового удаления.
const BulkDeletePrompt = "Are you sure, you want to delete?"

// RowView представляет одну строку текущей страницы.
type RowView struct {
	Member   Member
	Selected bool
	Editing  bool
	Draft    *MemberDraft
}

// DialogView представляет открытый диалог массового удаления.
type DialogView struct {
	Prompt      string
	SelectedIDs []string
	IDList      string
}

// TableView - снимок состояния таблицы для отрисовки.
type TableView struct {
	Query             string
	SearchEnabled     bool
	Page              int
	PageCount         int
	PageSize          int
	Total             int
	Rows              []RowView
	SelectedCount     int
	BulkDeleteEnabled bool
	EditingID         string
	Dialog            *DialogView
	FetchStatus       FetchStatus
}

// Session - смонтированная таблица, принадлежащая одному клиенту.
type Session struct {
	ID   string
	View *TableView
}
