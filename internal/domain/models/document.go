package models

import (
	"time"
)

// ProjectDocument is a file uploaded to a project for ingestion by the
// retrieval pipeline. This service only lists documents; upload and chunking
// are handled by the ingestion worker.
type ProjectDocument struct {
	ID        string    `json:"id" db:"id"`
	ClerkID   string    `json:"clerk_id" db:"clerk_id"`
	ProjectID string    `json:"project_id" db:"project_id"`
	Filename  string    `json:"filename" db:"filename"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
