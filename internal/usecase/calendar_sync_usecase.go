package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"control_plagas/internal/domain/entities"
	"control_plagas/internal/usecase/interfaces"
)

var (
	ErrCalendarNotConfigured = errors.New("calendar sync not configured")
	ErrCalendarUpstream      = errors.New("calendar provider failure")
	ErrCalendarEventNotFound = errors.New("calendar event not found at provider")
	ErrOrderNotSchedulable   = errors.New("work order has no scheduled timestamp")
	ErrInvalidEventID        = errors.New("invalid calendar event id")
)

// CalendarHealth is the read-only sync status surface.
type CalendarHealth struct {
	Configured bool `json:"configured"`
}

// ICalendarSyncUseCase mirrors work orders into the external calendar.
//
// Every mutating operation checks the configuration gate first: with no
// gateway wired at startup the call fails with ErrCalendarNotConfigured before
// any repository load, payload construction or network call. There is no
// partial mode and no retry; a persistence write and a calendar call are never
// linked transactionally.
type ICalendarSyncUseCase interface {
	CreateEvent(ctx context.Context, orderID string) (interfaces.CalendarEventRef, error)
	UpdateEvent(ctx context.Context, eventID, orderID string) (interfaces.CalendarEventRef, error)
	RemoveEvent(ctx context.Context, eventID string) error
	Health() CalendarHealth
}

type CalendarSyncUseCase struct {
	gateway      interfaces.ICalendarGateway
	orderRepo    interfaces.IWorkOrderRepository
	neighborRepo interfaces.INeighborRepository
}

var _ ICalendarSyncUseCase = (*CalendarSyncUseCase)(nil)

// NewCalendarSyncUseCase wires the sync use case. gateway may be nil when the
// provider credentials were absent at startup; the use case then reports
// unconfigured and refuses every mutating call.
func NewCalendarSyncUseCase(gateway interfaces.ICalendarGateway, orderRepo interfaces.IWorkOrderRepository, neighborRepo interfaces.INeighborRepository) *CalendarSyncUseCase {
	return &CalendarSyncUseCase{gateway: gateway, orderRepo: orderRepo, neighborRepo: neighborRepo}
}

func (u *CalendarSyncUseCase) CreateEvent(ctx context.Context, orderID string) (interfaces.CalendarEventRef, error) {
	if u.gateway == nil {
		return interfaces.CalendarEventRef{}, ErrCalendarNotConfigured
	}

	ev, err := u.buildEvent(ctx, orderID)
	if err != nil {
		return interfaces.CalendarEventRef{}, err
	}

	ref, err := u.gateway.InsertEvent(ctx, ev)
	if err != nil {
		log.Printf("[calendar][usecase] insert failed order_id=%s err=%v", orderID, err)
		return interfaces.CalendarEventRef{}, fmt.Errorf("%w: %v", ErrCalendarUpstream, err)
	}
	log.Printf("[calendar][usecase] event created order_id=%s event_id=%s", orderID, ref.EventID)
	return ref, nil
}

func (u *CalendarSyncUseCase) UpdateEvent(ctx context.Context, eventID, orderID string) (interfaces.CalendarEventRef, error) {
	if u.gateway == nil {
		return interfaces.CalendarEventRef{}, ErrCalendarNotConfigured
	}
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return interfaces.CalendarEventRef{}, ErrInvalidEventID
	}

	ev, err := u.buildEvent(ctx, orderID)
	if err != nil {
		return interfaces.CalendarEventRef{}, err
	}

	ref, err := u.gateway.UpdateEvent(ctx, eventID, ev)
	if err != nil {
		if errors.Is(err, interfaces.ErrEventNotFound) {
			return interfaces.CalendarEventRef{}, ErrCalendarEventNotFound
		}
		log.Printf("[calendar][usecase] update failed event_id=%s err=%v", eventID, err)
		return interfaces.CalendarEventRef{}, fmt.Errorf("%w: %v", ErrCalendarUpstream, err)
	}
	return ref, nil
}

// RemoveEvent deletes the provider event. A provider "not found" is treated
// as success: the desired end state, event absent, already holds.
func (u *CalendarSyncUseCase) RemoveEvent(ctx context.Context, eventID string) error {
	if u.gateway == nil {
		return ErrCalendarNotConfigured
	}
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return ErrInvalidEventID
	}

	if err := u.gateway.DeleteEvent(ctx, eventID); err != nil {
		if errors.Is(err, interfaces.ErrEventNotFound) {
			log.Printf("[calendar][usecase] event already absent event_id=%s", eventID)
			return nil
		}
		log.Printf("[calendar][usecase] delete failed event_id=%s err=%v", eventID, err)
		return fmt.Errorf("%w: %v", ErrCalendarUpstream, err)
	}
	return nil
}

func (u *CalendarSyncUseCase) Health() CalendarHealth {
	return CalendarHealth{Configured: u.gateway != nil}
}

// buildEvent loads the order and its neighbor and derives the event payload.
// Orders without a scheduled timestamp cannot be mirrored.
func (u *CalendarSyncUseCase) buildEvent(ctx context.Context, orderID string) (entities.CalendarEvent, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.CalendarEvent{}, ErrInvalidWorkOrderID
	}

	o, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return entities.CalendarEvent{}, err
	}
	if o.ID == "" {
		return entities.CalendarEvent{}, ErrWorkOrderNotFound
	}
	if o.ScheduledAt == nil {
		return entities.CalendarEvent{}, ErrOrderNotSchedulable
	}

	n, err := u.neighborRepo.GetByID(ctx, o.NeighborID)
	if err != nil {
		return entities.CalendarEvent{}, err
	}
	if n.ID == "" {
		return entities.CalendarEvent{}, ErrNeighborNotFound
	}

	return BuildCalendarEvent(o, n), nil
}
