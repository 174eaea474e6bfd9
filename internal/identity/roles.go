package identity

import "strings"

// Role — нормализованная роль вида ROLE_ADMIN.
type Role string

const (
	RolePrefix = "ROLE_"

	RoleUser  Role = "ROLE_USER"
	RoleAdmin Role = "ROLE_ADMIN"

	// Значение поля role по умолчанию.
	DefaultRole = "USER"
	AdminRole   = "ADMIN"
)

// NormalizeRoles разбирает поле role пользователя: роли через запятую,
// пробелы и пустые элементы отбрасываются, регистр верхний, префикс ROLE_
// добавляется, если его нет. Пустое поле означает USER.
func NormalizeRoles(raw string) []Role {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = DefaultRole
	}

	parts := strings.Split(raw, ",")
	roles := make([]Role, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		p = strings.ToUpper(p)
		if !strings.HasPrefix(p, RolePrefix) {
			p = RolePrefix + p
		}
		roles = append(roles, Role(p))
	}
	return roles
}
