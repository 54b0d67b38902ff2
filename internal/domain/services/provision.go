package services

import (
	"context"

	"sixfigure/internal/domain/models"
)

// ProvisionService materializes users from Clerk webhook deliveries.
// Deliveries are at-least-once; handling must be idempotent.
type ProvisionService interface {
	// HandleEvent processes a provisioning event. Unrecognized event types
	// succeed with ProvisionIgnored so the provider does not retry them;
	// replays of user.created succeed with ProvisionAlreadyExists.
	HandleEvent(ctx context.Context, event *models.ProvisioningEvent) (*models.ProvisionResult, error)
}
