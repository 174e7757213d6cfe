package table

import (
	"strings"

	"members-admin-service/internal/domain"
)

// DefaultPageSize - количество строк на странице по умолчанию.
const DefaultPageSize = 10

type editState struct {
	id    string
	draft domain.MemberDraft
}

// Table хранит состояние одной таблицы участников: полный набор, отображаемый
// набор, выбранные строки, редактируемую строку и диалог удаления.
// Table не потокобезопасна, синхронизация на стороне владельца.
type Table struct {
	pageSize int

	canonical []*domain.Member
	displayed []*domain.Member
	query     string
	page      int

	// Выбор хранится по ссылке на строку, а не по id.
	selected map[*domain.Member]struct{}
	edit     *editState
	dialog   bool
	status   domain.FetchStatus
}

// New создает пустую таблицу. pageSize <= 0 заменяется на DefaultPageSize.
func New(pageSize int) *Table {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Table{
		pageSize:  pageSize,
		canonical: []*domain.Member{},
		displayed: []*domain.Member{},
		page:      1,
		selected:  make(map[*domain.Member]struct{}),
		status:    domain.FetchStatusLoaded,
	}
}

// Load заполняет полный и отображаемый наборы результатом загрузки.
func (t *Table) Load(members []*domain.Member) {
	canonical := make([]*domain.Member, 0, len(members))
	for _, m := range members {
		if m == nil {
			continue
		}
		member := *m
		canonical = append(canonical, &member)
	}

	t.canonical = canonical
	t.status = domain.FetchStatusLoaded
	t.recompute(true)
}

// MarkFetchFailed оставляет таблицу пустой и помечает неудачную загрузку.
func (t *Table) MarkFetchFailed() {
	t.canonical = []*domain.Member{}
	t.status = domain.FetchStatusFailure
	t.recompute(true)
}

// Search устанавливает строку поиска и пересчитывает отображаемый набор.
func (t *Table) Search(query string) {
	t.query = query
	t.recompute(true)
}

// Submit повторно применяет текущий запрос (Enter или кнопка поиска).
func (t *Table) Submit() {
	t.recompute(true)
}

// SetPage переключает страницу (нумерация с 1).
func (t *Table) SetPage(page int) error {
	if page < 1 || page > t.pageCount() {
		return domain.ErrPageOutOfRange
	}

	before := t.pageRows()
	t.page = page
	t.resetSelectionIfChanged(before)
	return nil
}

// ToggleRow переключает выбор строки row (с 0) текущей страницы.
func (t *Table) ToggleRow(row int) error {
	rows := t.pageRows()
	if row < 0 || row >= len(rows) {
		return domain.ErrRowNotOnPage
	}

	member := rows[row]
	if _, ok := t.selected[member]; ok {
		delete(t.selected, member)
	} else {
		t.selected[member] = struct{}{}
	}
	return nil
}

// SelectPage выбирает или снимает выбор со всех строк текущей страницы.
func (t *Table) SelectPage(selected bool) {
	t.selected = make(map[*domain.Member]struct{})
	if !selected {
		return
	}
	for _, member := range t.pageRows() {
		t.selected[member] = struct{}{}
	}
}

// Edit переводит строку с указанным id в режим редактирования. Черновик
// предыдущей редактируемой строки отбрасывается.
func (t *Table) Edit(id string) error {
	member := t.findDisplayed(id)
	if member == nil {
		return domain.ErrMemberNotFound
	}

	t.edit = &editState{
		id: id,
		draft: domain.MemberDraft{
			Name:  member.Name,
			Email: member.Email,
			Role:  member.Role,
		},
	}
	return nil
}

// UpdateDraft заменяет черновик редактируемой строки.
func (t *Table) UpdateDraft(draft domain.MemberDraft) error {
	if t.edit == nil {
		return domain.ErrNotEditing
	}
	t.edit.draft = draft
	return nil
}

// Save записывает черновик в запись участника и возвращает таблицу в режим просмотра.
func (t *Table) Save() error {
	if t.edit == nil {
		return domain.ErrNotEditing
	}

	for _, member := range t.canonical {
		if member.ID == t.edit.id {
			member.Name = t.edit.draft.Name
			member.Email = t.edit.draft.Email
			member.Role = t.edit.draft.Role
		}
	}

	t.edit = nil
	t.recompute(false)
	return nil
}

// Delete удаляет строку по id из полного и отображаемого наборов.
func (t *Table) Delete(id string) error {
	if t.findDisplayed(id) == nil {
		return domain.ErrMemberNotFound
	}

	canonical := make([]*domain.Member, 0, len(t.canonical))
	for _, member := range t.canonical {
		if member.ID != id {
			canonical = append(canonical, member)
		}
	}
	t.canonical = canonical

	if t.edit != nil && t.edit.id == id {
		t.edit = nil
	}
	t.recompute(false)
	return nil
}

// OpenBulkDelete открывает диалог подтверждения для выбранных строк.
func (t *Table) OpenBulkDelete() error {
	if len(t.selected) == 0 {
		return domain.ErrNothingSelected
	}
	t.dialog = true
	return nil
}

// CloseDialog закрывает диалог без изменений.
func (t *Table) CloseDialog() {
	t.dialog = false
}

// ConfirmDelete удаляет все выбранные строки, очищает выбор и закрывает диалог.
func (t *Table) ConfirmDelete() error {
	if !t.dialog {
		return domain.ErrDialogNotOpen
	}

	canonical := make([]*domain.Member, 0, len(t.canonical))
	for _, member := range t.canonical {
		if _, ok := t.selected[member]; !ok {
			canonical = append(canonical, member)
		}
	}
	t.canonical = canonical

	if t.edit != nil && t.findCanonical(t.edit.id) == nil {
		t.edit = nil
	}

	t.selected = make(map[*domain.Member]struct{})
	t.dialog = false
	t.recompute(false)
	return nil
}

// Canonical возвращает копию полного набора.
func (t *Table) Canonical() []*domain.Member {
	return Filter("", t.canonical)
}

// Displayed возвращает копию отображаемого набора.
func (t *Table) Displayed() []*domain.Member {
	return Filter("", t.displayed)
}

// Selection возвращает выбранные строки в порядке отображения.
func (t *Table) Selection() []*domain.Member {
	result := make([]*domain.Member, 0, len(t.selected))
	for _, member := range t.displayed {
		if _, ok := t.selected[member]; ok {
			result = append(result, member)
		}
	}
	return result
}

// EditingID возвращает id редактируемой строки или пустую строку.
func (t *Table) EditingID() string {
	if t.edit == nil {
		return ""
	}
	return t.edit.id
}

// PageRows возвращает строки текущей страницы.
func (t *Table) PageRows() []*domain.Member {
	return t.pageRows()
}

// View собирает снимок состояния для отрисовки.
func (t *Table) View() *domain.TableView {
	rows := t.pageRows()
	view := &domain.TableView{
		Query:             t.query,
		SearchEnabled:     t.query != "",
		Page:              t.page,
		PageCount:         t.pageCount(),
		PageSize:          t.pageSize,
		Total:             len(t.displayed),
		Rows:              make([]domain.RowView, 0, len(rows)),
		SelectedCount:     len(t.selected),
		BulkDeleteEnabled: len(t.selected) > 0,
		EditingID:         t.EditingID(),
		FetchStatus:       t.status,
	}

	for _, member := range rows {
		_, selected := t.selected[member]
		row := domain.RowView{
			Member:   *member,
			Selected: selected,
		}
		if t.edit != nil && t.edit.id == member.ID {
			draft := t.edit.draft
			row.Editing = true
			row.Draft = &draft
		}
		view.Rows = append(view.Rows, row)
	}

	if t.dialog {
		selection := t.Selection()
		ids := make([]string, len(selection))
		for i, member := range selection {
			ids[i] = member.ID
		}
		view.Dialog = &domain.DialogView{
			Prompt:      domain.BulkDeletePrompt,
			SelectedIDs: ids,
			IDList:      strings.Join(ids, ", "),
		}
	}

	return view
}

// recompute пересобирает отображаемый набор из полного. Выбор сбрасывается,
// если набор строк текущей страницы изменился.
func (t *Table) recompute(resetPage bool) {
	before := t.pageRows()

	t.displayed = Filter(t.query, t.canonical)
	if resetPage {
		t.page = 1
	} else if last := t.pageCount(); t.page > last {
		t.page = last
	}

	t.resetSelectionIfChanged(before)
}

func (t *Table) resetSelectionIfChanged(before []*domain.Member) {
	after := t.pageRows()
	if len(before) == len(after) {
		same := true
		for i := range before {
			if before[i] != after[i] {
				same = false
				break
			}
		}
		if same {
			return
		}
	}

	t.selected = make(map[*domain.Member]struct{})
	t.dialog = false
}

func (t *Table) pageCount() int {
	if len(t.displayed) == 0 {
		return 1
	}
	return (len(t.displayed) + t.pageSize - 1) / t.pageSize
}

func (t *Table) pageRows() []*domain.Member {
	start := (t.page - 1) * t.pageSize
	if start >= len(t.displayed) {
		return nil
	}
	end := start + t.pageSize
	if end > len(t.displayed) {
		end = len(t.displayed)
	}
	return t.displayed[start:end]
}

func (t *Table) findDisplayed(id string) *domain.Member {
	for _, member := range t.displayed {
		if member.ID == id {
			return member
		}
	}
	return nil
}

func (t *Table) findCanonical(id string) *domain.Member {
	for _, member := range t.canonical {
		if member.ID == id {
			return member
		}
	}
	return nil
}
