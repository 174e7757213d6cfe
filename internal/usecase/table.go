package usecase

import (
	"context"
	"sync"

	"members-admin-service/internal/domain"
	"members-admin-service/internal/table"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type session struct {
	mu    sync.Mutex
	table *table.Table
}

// TableUseCase управляет таблицами участников, по одной на сессию клиента.
type TableUseCase struct {
	source   domain.MemberSource
	pageSize int
	logger   *logrus.Logger

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewTableUseCase создает новый экземпляр TableUseCase.
func NewTableUseCase(source domain.MemberSource, pageSize int, logger *logrus.Logger) domain.TableUseCase {
	return &TableUseCase{
		source:   source,
		pageSize: pageSize,
		logger:   logger,
		sessions: make(map[string]*session),
	}
}

// Mount создает таблицу и однократно загружает в нее участников.
// Ошибка загрузки не прерывает монтирование: таблица остается пустой.
func (uc *TableUseCase) Mount(ctx context.Context) (*domain.Session, error) {
	tbl := table.New(uc.pageSize)
	sessionID := uuid.NewString()
	logEntry := uc.logger.WithField("session_id", sessionID)

	members, err := uc.source.FetchMembers(ctx)
	if err != nil {
		logEntry.WithError(err).Error("Members fetch failed, table stays empty")
		tbl.MarkFetchFailed()
	} else {
		tbl.Load(members)
		logEntry.WithField("members_count", len(members)).Info("Members loaded")
	}

	uc.mu.Lock()
	uc.sessions[sessionID] = &session{table: tbl}
	uc.mu.Unlock()

	return &domain.Session{
		ID:   sessionID,
		View: tbl.View(),
	}, nil
}

// Unmount удаляет таблицу сессии.
func (uc *TableUseCase) Unmount(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return domain.ErrInvalidSessionID
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, ok := uc.sessions[sessionID]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(uc.sessions, sessionID)
	return nil
}

// GetView возвращает текущее состояние таблицы.
func (uc *TableUseCase) GetView(ctx context.Context, sessionID string) (*domain.TableView, error) {
	return uc.apply(sessionID, func(t *table.Table) error { return nil })
}

// Search применяет строку поиска (нажатие клавиши в поле поиска).
func (uc *TableUseCase) Search(ctx context.Context, sessionID, query string) (*domain.TableView, error) {
	return uc.apply(sessionID, func(t *table.Table) error {
		t.Search(query)
		return nil
	})
}

// SubmitSearch повторно применяет текущий запрос (Enter или кнопка).
func (uc *TableUseCase) SubmitSearch(ctx context.Context, sessionID string) (*domain.TableView, error) {
	return uc.apply(sessionID, func(t *table.Table) error {
		t.Submit()
		return nil
	})
}

// SetPage переключает страницу.
func (uc *TableUseCase) SetPage(ctx context.Context, sessionID string, page int) (*domain.TableView, error) {
	return uc.apply(sessionID, func(t *table.Table) error {
		return t.SetPage(page)
	})
}

// ToggleRow переключает выбор строки текущей страницы.
func (uc *TableUseCase) ToggleRow(ctx context.Context, sessionID string, row int) (*domain.TableView, error) {
	return uc.apply(sessionID, func(t *table.Table) error {
		return t.ToggleRow(row)
	})
}

// SelectPage выбирает или снимает выбор со всех строк текущей страницы.
func (uc *TableUseCase) SelectPage(ctx context.Context, sessionID string, selected bool) (*domain.TableView, error) {
	return uc.apply(sessionID, func(t *table.Table) error {
		t.SelectPage(selected)
		return nil
	})
}

// EditRow переводит строку в режим редактирования.
func (uc *TableUseCase) EditRow(ctx context.Context, sessionID, memberID string) (*domain.TableView, error) {
	if memberID == "" {
		return nil, domain.ErrInvalidMemberID
	}
	return uc.apply(sessionID, func(t *table.Table) error {
		return t.Edit(memberID)
	})
}

// UpdateDraft обновляет черновик редактируемой строки.
func (uc *TableUseCase) UpdateDraft(ctx context.Context, sessionID string, draft domain.MemberDraft) (*domain.TableView, error) {
	return uc.apply(sessionID, func(t *table.Table) error {
		return t.UpdateDraft(draft)
	})
}

// SaveRow сохраняет черновик в запись участника.
func (uc *TableUseCase) SaveRow(ctx context.Context, sessionID string) (*domain.TableView, error) {
	return uc.apply(sessionID, func(t *table.Table) error {
		return t.Save()
	})
}

// DeleteRow удаляет строку по id без подтверждения.
func (uc *TableUseCase) DeleteRow(ctx context.Context, sessionID, memberID string) (*domain.TableView, error) {
	if memberID == "" {
		return nil, domain.ErrInvalidMemberID
	}
	return uc.apply(sessionID, func(t *table.Table) error {
		return t.Delete(memberID)
	})
}

// OpenBulkDelete открывает диалог подтверждения массового удаления.
func (uc *TableUseCase) OpenBulkDelete(ctx context.Context, sessionID string) (*domain.TableView, error) {
	return uc.apply(sessionID, func(t *table.Table) error {
		return t.OpenBulkDelete()
	})
}

// CloseBulkDelete закрывает диалог без изменений.
func (uc *TableUseCase) CloseBulkDelete(ctx context.Context, sessionID string) (*domain.TableView, error) {
	return uc.apply(sessionID, func(t *table.Table) error {
		t.CloseDialog()
		return nil
	})
}

// ConfirmBulkDelete удаляет выбранные строки.
func (uc *TableUseCase) ConfirmBulkDelete(ctx context.Context, sessionID string) (*domain.TableView, error) {
	return uc.apply(sessionID, func(t *table.Table) error {
		return t.ConfirmDelete()
	})
}

// apply выполняет команду над таблицей сессии под ее блокировкой и возвращает новый снимок.
func (uc *TableUseCase) apply(sessionID string, command func(t *table.Table) error) (*domain.TableView, error) {
	if sessionID == "" {
		return nil, domain.ErrInvalidSessionID
	}

	uc.mu.RLock()
	s, ok := uc.sessions[sessionID]
	uc.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := command(s.table); err != nil {
		return nil, err
	}
	return s.table.View(), nil
}
