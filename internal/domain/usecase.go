package domain

import "context"

// TableUseCase определяет операции над таблицей участников в рамках сессии.
type TableUseCase interface {
	Mount(ctx context.Context) (*Session, error)
	Unmount(ctx context.Context, sessionID string) error
	GetView(ctx context.Context, sessionID string) (*TableView, error)

	Search(ctx context.Context, sessionID, query string) (*TableView, error)
	SubmitSearch(ctx context.Context, sessionID string) (*TableView, error)
	SetPage(ctx context.Context, sessionID string, page int) (*TableView, error)

	ToggleRow(ctx context.Context, sessionID string, row int) (*TableView, error)
	SelectPage(ctx context.Context, sessionID string, selected bool) (*TableView, error)

	EditRow(ctx context.Context, sessionID, memberID string) (*TableView, error)
	UpdateDraft(ctx context.Context, sessionID string, draft MemberDraft) (*TableView, error)
	SaveRow(ctx context.Context, sessionID string) (*TableView, error)
	DeleteRow(ctx context.Context, sessionID, memberID string) (*TableView, error)

	OpenBulkDelete(ctx context.Context, sessionID string) (*TableView, error)
	CloseBulkDelete(ctx context.Context, sessionID string) (*TableView, error)
	ConfirmBulkDelete(ctx context.Context, sessionID string) (*TableView, error)
}
