package models

import (
	"time"
)

// Project is the top-level tenant-owned configuration unit for a retrieval
// pipeline. A project is never visible or mutable by a user other than its
// owner; deleting it cascades to settings, documents, and chats.
type Project struct {
	ID          string    `json:"id" db:"id"`
	ClerkID     string    `json:"clerk_id" db:"clerk_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
