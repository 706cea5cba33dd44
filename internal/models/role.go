package models

// Role links a user to a project with a role label
type Role struct {
	ID        int    `json:"id" db:"id"`
	Username  string `json:"username" db:"username"`
	ProjectID int    `json:"project_id" db:"project_id"`
	Role      string `json:"role" db:"role"`
}
