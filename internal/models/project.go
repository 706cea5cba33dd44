package models

// Project represents a project record in the database
type Project struct {
	ID    int    `json:"id" db:"id"`         // Primary key
	Name  string `json:"name" db:"name"`     // Unique project name
	PType string `json:"p_type" db:"p_type"` // Project type label
}
