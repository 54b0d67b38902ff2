package models

import (
	"encoding/json"
)

// UserCreatedEventType is the Clerk event type this service materializes.
// Every other event type is acknowledged and ignored so the provider does
// not retry it.
const UserCreatedEventType = "user.created"

// ProvisioningEvent is the decoded body of a Clerk webhook delivery.
// Data is kept raw because its shape differs per event type; only
// user.created payloads are inspected.
type ProvisioningEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Provisioning outcome statuses. Delivery is at-least-once upstream, so
// "already exists" is a success, not an error.
const (
	ProvisionCreated       = "created"
	ProvisionAlreadyExists = "already_exists"
	ProvisionIgnored       = "ignored"
)

// ProvisionResult reports what handling a provisioning event did.
// User is set only when Status is ProvisionCreated.
type ProvisionResult struct {
	Status  string `json:"status"`
	ClerkID string `json:"clerk_id,omitempty"`
	User    *User  `json:"user,omitempty"`
}
