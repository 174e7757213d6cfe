package table

import (
	"strings"

	"members-admin-service/internal/domain"
)

// Filter возвращает участников source, у которых id, name, email или role
// содержит query без учета регистра. Пустой query возвращает source целиком.
// Результат всегда новый срез, source не изменяется.
func Filter(query string, source []*domain.Member) []*domain.Member {
	if query == "" {
		result := make([]*domain.Member, len(source))
		copy(result, source)
		return result
	}

	needle := strings.ToLower(query)
	result := make([]*domain.Member, 0, len(source))
	for _, member := range source {
		if matches(member, needle) {
			result = append(result, member)
		}
	}
	return result
}

func matches(member *domain.Member, needle string) bool {
	for _, field := range []string{member.ID, member.Name, member.Email, member.Role} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
