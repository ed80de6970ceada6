package models

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
)

// ValidRole reports whether r is one of the roles a user may hold.
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleUser || r == RoleModerator
}

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
