package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"sixfigure/internal/domain"
	"sixfigure/internal/domain/models"
	"sixfigure/internal/domain/repositories"
	"sixfigure/internal/domain/services"
)

// provisionService implements the ProvisionService interface
type provisionService struct {
	userRepo repositories.UserRepository
	logger   *slog.Logger
}

// NewProvisionService creates a new provisioning service
func NewProvisionService(userRepo repositories.UserRepository, logger *slog.Logger) services.ProvisionService {
	return &provisionService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// userCreatedData is the slice of the Clerk user.created payload this
// service reads. Clerk sends much more; everything else is ignored.
type userCreatedData struct {
	ID string `json:"id"`
}

// HandleEvent processes a Clerk provisioning event.
//
// Delivery is at-least-once, so the same logical event can arrive any number
// of times, including concurrently. Handling is idempotent two ways: a
// check-then-insert fast path, and conversion of the unique-violation from a
// losing concurrent insert into the same "already exists" success. Only the
// constraint makes the guarantee hold under races; the lookup just avoids
// pointless inserts.
func (s *provisionService) HandleEvent(ctx context.Context, event *models.ProvisioningEvent) (*models.ProvisionResult, error) {
	if event == nil || event.Type == "" {
		return nil, fmt.Errorf("%w: missing event type in webhook payload", domain.ErrValidation)
	}

	// Unrecognized event types succeed trivially. Returning an error here
	// would make the provider retry deliveries that can never be handled.
	if event.Type != models.UserCreatedEventType {
		s.logger.Debug("webhook event ignored", "type", event.Type)
		return &models.ProvisionResult{Status: models.ProvisionIgnored}, nil
	}

	var data userCreatedData
	if len(event.Data) == 0 {
		return nil, fmt.Errorf("%w: missing user data in webhook payload", domain.ErrValidation)
	}
	if err := json.Unmarshal(event.Data, &data); err != nil {
		return nil, fmt.Errorf("%w: invalid user data in webhook payload", domain.ErrValidation)
	}
	if data.ID == "" {
		return nil, fmt.Errorf("%w: missing clerk_id in user data", domain.ErrValidation)
	}

	existing, err := s.userRepo.GetByClerkID(ctx, data.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.logger.Info("webhook replay, user already exists", "clerk_id", data.ID)
		return &models.ProvisionResult{
			Status:  models.ProvisionAlreadyExists,
			ClerkID: data.ID,
		}, nil
	}

	user := &models.User{ClerkID: data.ID}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// Lost the check-then-insert race against a concurrent replay.
		// The row exists, which is the outcome the event asked for.
		if errors.Is(err, domain.ErrConflict) {
			s.logger.Info("concurrent webhook replay, user already exists", "clerk_id", data.ID)
			return &models.ProvisionResult{
				Status:  models.ProvisionAlreadyExists,
				ClerkID: data.ID,
			}, nil
		}
		return nil, err
	}

	s.logger.Info("user provisioned", "clerk_id", user.ClerkID, "id", user.ID)

	return &models.ProvisionResult{
		Status:  models.ProvisionCreated,
		ClerkID: user.ClerkID,
		User:    user,
	}, nil
}
