package calendar

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"control_plagas/internal/domain/entities"
	"control_plagas/internal/usecase/interfaces"

	gcalendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

var ErrMissingCalendarCredentials = errors.New("missing GOOGLE_CALENDAR_CREDENTIALS_FILE")
var ErrMissingCalendarID = errors.New("missing GOOGLE_CALENDAR_ID")

// Outbound calls are bounded; past this the request fails and surfaces as an
// upstream error.
const callTimeout = 10 * time.Second

// GoogleCalendarGateway talks to one Google calendar through the official
// client. Construction either fully succeeds (valid credentials, calendar id)
// or fails; there is no degraded mode. Callers that get an error here wire a
// nil gateway instead.
type GoogleCalendarGateway struct {
	svc        *gcalendar.Service
	calendarID string
}

var _ interfaces.ICalendarGateway = (*GoogleCalendarGateway)(nil)

func NewGoogleCalendarGateway(ctx context.Context, credentialsFile, calendarID string) (*GoogleCalendarGateway, error) {
	if credentialsFile == "" {
		log.Printf("[calendar][gateway] missing GOOGLE_CALENDAR_CREDENTIALS_FILE")
		return nil, ErrMissingCalendarCredentials
	}
	if calendarID == "" {
		log.Printf("[calendar][gateway] missing GOOGLE_CALENDAR_ID")
		return nil, ErrMissingCalendarID
	}

	svc, err := gcalendar.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gcalendar.CalendarEventsScope),
	)
	if err != nil {
		log.Printf("[calendar][gateway] failed creating calendar client err=%v", err)
		return nil, err
	}
	log.Printf("[calendar][gateway] Google Calendar client initialized calendar_id=%s", calendarID)

	return &GoogleCalendarGateway{svc: svc, calendarID: calendarID}, nil
}

func (g *GoogleCalendarGateway) InsertEvent(ctx context.Context, ev entities.CalendarEvent) (interfaces.CalendarEventRef, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	created, err := g.svc.Events.Insert(g.calendarID, toGoogleEvent(ev)).Context(ctx).Do()
	if err != nil {
		log.Printf("[calendar][gateway] insert failed err=%v", err)
		return interfaces.CalendarEventRef{}, classifyError(err)
	}
	log.Printf("[calendar][gateway] insert success event_id=%s", created.Id)
	return interfaces.CalendarEventRef{EventID: created.Id, HTMLLink: created.HtmlLink}, nil
}

func (g *GoogleCalendarGateway) UpdateEvent(ctx context.Context, eventID string, ev entities.CalendarEvent) (interfaces.CalendarEventRef, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	updated, err := g.svc.Events.Update(g.calendarID, eventID, toGoogleEvent(ev)).Context(ctx).Do()
	if err != nil {
		log.Printf("[calendar][gateway] update failed event_id=%s err=%v", eventID, err)
		return interfaces.CalendarEventRef{}, classifyError(err)
	}
	return interfaces.CalendarEventRef{EventID: updated.Id, HTMLLink: updated.HtmlLink}, nil
}

func (g *GoogleCalendarGateway) DeleteEvent(ctx context.Context, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	if err := g.svc.Events.Delete(g.calendarID, eventID).Context(ctx).Do(); err != nil {
		log.Printf("[calendar][gateway] delete failed event_id=%s err=%v", eventID, err)
		return classifyError(err)
	}
	return nil
}

func toGoogleEvent(ev entities.CalendarEvent) *gcalendar.Event {
	return &gcalendar.Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		Location:    ev.Location,
		ColorId:     ev.ColorID,
		Start:       &gcalendar.EventDateTime{DateTime: ev.Start.Format(time.RFC3339)},
		End:         &gcalendar.EventDateTime{DateTime: ev.End.Format(time.RFC3339)},
		Reminders: &gcalendar.EventReminders{
			UseDefault: false,
			Overrides: []*gcalendar.EventReminder{
				{Method: "email", Minutes: ev.EmailReminderMinutes},
				{Method: "popup", Minutes: ev.PopupReminderMinutes},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}
}

// classifyError wraps provider "event gone" responses (404, plus 410 for
// already-deleted events) into interfaces.ErrEventNotFound.
func classifyError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && (gerr.Code == http.StatusNotFound || gerr.Code == http.StatusGone) {
		return fmt.Errorf("%w: %v", interfaces.ErrEventNotFound, err)
	}
	return err
}
