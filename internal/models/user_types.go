package models

import "time"

// User Model. There is normally a single row: the blog author seeded at
// startup. Name is nullable in the schema, hence the pointer.
type User struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Name      *string   `json:"name,omitempty" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

type CreateUserInput struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

type UpdateUserInput struct {
	Email *string `json:"email" binding:"omitempty,email"`
	Name  *string `json:"name"`
}
