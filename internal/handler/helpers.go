package handler

import (
	"fmt"

	"github.com/google/uuid"
)

// parseResourceID validates a path parameter as a UUID before it reaches the
// store. Rejecting garbage here keeps malformed ids from surfacing as pgx
// type errors.
func parseResourceID(raw string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid resource ID format")
	}
	return id.String(), nil
}
