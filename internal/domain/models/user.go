package models

import (
	"time"
)

// User represents a tenant provisioned from a Clerk user.created webhook.
// The clerk_id is the stable opaque identifier issued by Clerk; every
// tenant-owned row in the system is keyed by it. Created exactly once per
// real-world user, never mutated.
type User struct {
	ID        string    `json:"id" db:"id"`
	ClerkID   string    `json:"clerk_id" db:"clerk_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
