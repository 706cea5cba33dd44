package models

// User represents a user record in the database
type User struct {
	Username       string  `json:"username" db:"username"`  // Primary key
	Email          string  `json:"email" db:"email"`        // Unique email
	HashedPassword string  `json:"-" db:"hashed_password"`  // Hashed credential, never serialized
	Gender         *string `json:"gender" db:"gender"`      // Optional gender
	Age            *int    `json:"age" db:"age"`            // Optional age
	IsAdmin        bool    `json:"is_admin" db:"is_admin"`  // Admin flag
}

// UserPatch carries a partial user update: nil fields are left untouched.
type UserPatch struct {
	Email          *string
	HashedPassword *string
	Gender         *string
	Age            *int
	IsAdmin        *bool
}
