package interfaces

import (
	"context"
	"errors"

	"control_plagas/internal/domain/entities"
)

// ErrEventNotFound classifies provider "event does not exist" failures.
// Gateway implementations wrap it so callers can errors.Is against it without
// knowing the provider's error types.
var ErrEventNotFound = errors.New("calendar event not found")

// CalendarEventRef identifies an event stored at the provider.
type CalendarEventRef struct {
	EventID  string
	HTMLLink string
}

// ICalendarGateway abstracts the external calendar provider (Google Calendar).
//
// The target calendar id is fixed at construction; the gateway exposes only
// the narrow insert/update/delete surface the sync use case needs.
type ICalendarGateway interface {
	InsertEvent(ctx context.Context, ev entities.CalendarEvent) (CalendarEventRef, error)
	UpdateEvent(ctx context.Context, eventID string, ev entities.CalendarEvent) (CalendarEventRef, error)
	DeleteEvent(ctx context.Context, eventID string) error
}
