package domain

import "context"

// Member представляет запись участника, отображаемую в таблице.
type Member struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// MemberDraft - буфер редактирования строки (name/email/role).
type MemberDraft struct {
	Name  string
	Email string
	Role  string
}

// MemberSource определяет контракт однократной загрузки полного списка участников.
type MemberSource interface {
	FetchMembers(ctx context.Context) ([]*Member, error)
}
