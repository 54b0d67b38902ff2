package models

import (
	"time"
)

// Chat represents a chat session associated with a project
type Chat struct {
	ID        string    `json:"id" db:"id"`
	ClerkID   string    `json:"clerk_id" db:"clerk_id"`
	ProjectID string    `json:"project_id" db:"project_id"`
	Title     string    `json:"title" db:"title"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
