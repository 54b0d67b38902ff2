package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"sixfigure/internal/domain"
	"sixfigure/internal/domain/models"
)

func userCreatedEvent(clerkID string) *models.ProvisioningEvent {
	data, _ := json.Marshal(map[string]string{"id": clerkID})
	return &models.ProvisioningEvent{
		Type: models.UserCreatedEventType,
		Data: data,
	}
}

func TestHandleEvent_CreatesUserOnce(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewProvisionService(userRepo, testLogger())
	ctx := context.Background()

	// First delivery creates the user
	first, err := svc.HandleEvent(ctx, userCreatedEvent("user_abc"))
	if err != nil {
		t.Fatalf("HandleEvent() unexpected error: %v", err)
	}
	if first.Status != models.ProvisionCreated {
		t.Errorf("first delivery status = %q, want %q", first.Status, models.ProvisionCreated)
	}
	if first.User == nil || first.User.ClerkID != "user_abc" {
		t.Errorf("first delivery user = %+v, want clerk_id user_abc", first.User)
	}

	// Replay of the same delivery succeeds without a second write
	second, err := svc.HandleEvent(ctx, userCreatedEvent("user_abc"))
	if err != nil {
		t.Fatalf("HandleEvent() replay unexpected error: %v", err)
	}
	if second.Status != models.ProvisionAlreadyExists {
		t.Errorf("replay status = %q, want %q", second.Status, models.ProvisionAlreadyExists)
	}

	if len(userRepo.users) != 1 {
		t.Errorf("user rows = %d, want exactly 1", len(userRepo.users))
	}
}

func TestHandleEvent_ConcurrentReplayConvertsConflict(t *testing.T) {
	userRepo := newFakeUserRepo()
	// Simulate losing the check-then-insert race: the lookup sees no row,
	// then the insert collides with a concurrent replay's row.
	userRepo.raceOnCreate = true
	svc := NewProvisionService(userRepo, testLogger())

	result, err := svc.HandleEvent(context.Background(), userCreatedEvent("user_abc"))
	if err != nil {
		t.Fatalf("HandleEvent() unexpected error: %v", err)
	}
	if result.Status != models.ProvisionAlreadyExists {
		t.Errorf("status = %q, want %q (duplicate insert must convert to success)", result.Status, models.ProvisionAlreadyExists)
	}
	if len(userRepo.users) != 1 {
		t.Errorf("user rows = %d, want exactly 1", len(userRepo.users))
	}
}

func TestHandleEvent_IgnoresOtherEventTypes(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewProvisionService(userRepo, testLogger())

	data, _ := json.Marshal(map[string]string{"id": "user_abc"})
	result, err := svc.HandleEvent(context.Background(), &models.ProvisioningEvent{
		Type: "user.updated",
		Data: data,
	})
	if err != nil {
		t.Fatalf("HandleEvent() unexpected error: %v", err)
	}
	if result.Status != models.ProvisionIgnored {
		t.Errorf("status = %q, want %q", result.Status, models.ProvisionIgnored)
	}
	if len(userRepo.users) != 0 {
		t.Errorf("ignored event performed a write: %d rows", len(userRepo.users))
	}
}

func TestHandleEvent_RejectsMalformedPayloads(t *testing.T) {
	svc := NewProvisionService(newFakeUserRepo(), testLogger())
	ctx := context.Background()

	tests := []struct {
		name  string
		event *models.ProvisioningEvent
	}{
		{
			name:  "nil event",
			event: nil,
		},
		{
			name:  "missing type",
			event: &models.ProvisioningEvent{Data: json.RawMessage(`{"id":"user_abc"}`)},
		},
		{
			name:  "missing data",
			event: &models.ProvisioningEvent{Type: models.UserCreatedEventType},
		},
		{
			name: "data not an object",
			event: &models.ProvisioningEvent{
				Type: models.UserCreatedEventType,
				Data: json.RawMessage(`"user_abc"`),
			},
		},
		{
			name: "missing clerk id",
			event: &models.ProvisioningEvent{
				Type: models.UserCreatedEventType,
				Data: json.RawMessage(`{"email":"a@b.c"}`),
			},
		},
		{
			name: "clerk id not a string",
			event: &models.ProvisioningEvent{
				Type: models.UserCreatedEventType,
				Data: json.RawMessage(`{"id":42}`),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.HandleEvent(ctx, tt.event)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("HandleEvent() error = %v, want ErrValidation", err)
			}
		})
	}
}
