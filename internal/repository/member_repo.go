package repository

import (
	"context"
	"database/sql"
	"fmt"

	"members-admin-service/internal/database"
	"members-admin-service/internal/domain"
)

// MemberRepository загружает участников из PostgreSQL. Используется только на чтение.
type MemberRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewMemberRepository создает новый экземпляр MemberRepository.
func NewMemberRepository(db *sql.DB, queries *database.Queries) domain.MemberSource {
	return &MemberRepository{
		db:      db,
		queries: queries,
	}
}

// FetchMembers возвращает всех участников в порядке добавления.
func (r *MemberRepository) FetchMembers(ctx context.Context) ([]*domain.Member, error) {
	rows, err := r.queries.ListMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w: %v", domain.ErrFetchFailed, err)
	}

	members := make([]*domain.Member, 0, len(rows))
	for _, row := range rows {
		members = append(members, &domain.Member{
			ID:    row.MemberID,
			Name:  row.Name,
			Email: row.Email,
			Role:  row.Role,
		})
	}

	return members, nil
}
