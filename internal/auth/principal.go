package auth

import "github.com/google/uuid"

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleOperator Role = "OPERATOR"
	RoleViewer   Role = "VIEWER"
)

type Principal struct {
	UserID uuid.UUID
	Role   Role
}

func (p Principal) IsAdmin() bool    { return p.Role == RoleAdmin }
func (p Principal) IsOperator() bool { return p.Role == RoleOperator }
func (p Principal) IsViewer() bool   { return p.Role == RoleViewer }

// CanEdit reports whether the principal may mutate the record store.
// Viewers get read-only access to listings and reports.
func (p Principal) CanEdit() bool {
	return p.Role == RoleAdmin || p.Role == RoleOperator
}
