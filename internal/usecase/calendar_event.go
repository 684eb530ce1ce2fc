package usecase

import (
	"fmt"
	"strings"
	"time"

	"control_plagas/internal/domain/entities"
)

// Event timing is fixed: every service slot lasts two hours, rendered in the
// office's time zone.
const eventDuration = 2 * time.Hour

// Argentina has no DST, so the fixed-offset fallback is exact even when the
// host lacks a tz database.
var eventTimeZone = func() *time.Location {
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	if err != nil {
		return time.FixedZone("-03", -3*60*60)
	}
	return loc
}()

// problemColorIDs maps a problem type to the provider color code. Unknown
// types fall back to defaultColorID.
var problemColorIDs = map[string]string{
	"Rodents":      "11",
	"Disinfection": "9",
	"Insecticide":  "10",
	"Hive":         "5",
	"Inspection":   "8",
}

const defaultColorID = "1"

const (
	emailReminderMinutes = 24 * 60
	popupReminderMinutes = 60

	placeholderTechnicians  = "Unassigned"
	placeholderObservations = "No observations"
)

// EventColorID resolves the provider color code for a problem type.
func EventColorID(problemType string) string {
	if id, ok := problemColorIDs[problemType]; ok {
		return id
	}
	return defaultColorID
}

// BuildCalendarEvent derives the external calendar payload from a work order
// and its neighbor. Pure: no clock reads, no side effects. The order must
// carry a scheduled timestamp; callers check that before calling.
//
// Technicians and observations come from the order's most recent visit when
// one exists, with placeholders otherwise.
func BuildCalendarEvent(o entities.WorkOrder, n entities.Neighbor) entities.CalendarEvent {
	address := n.Address.Format()
	start := o.ScheduledAt.In(eventTimeZone)

	technicians := placeholderTechnicians
	observations := placeholderObservations
	if len(o.Visits) > 0 {
		last := o.Visits[len(o.Visits)-1]
		if len(last.Technicians) > 0 {
			technicians = strings.Join(last.Technicians, ", ")
		}
		if strings.TrimSpace(last.Observations) != "" {
			observations = last.Observations
		}
	}

	description := fmt.Sprintf(
		"Neighbor: %s\nAddress: %s\nPhone: %s\nService type: %s\nProblem type: %s\nTechnicians: %s\nObservations: %s",
		n.Name, address, n.Phone, o.ServiceType, o.ProblemType, technicians, observations,
	)

	return entities.CalendarEvent{
		Summary:              fmt.Sprintf("%s - %s - %s", o.ProblemType, n.Name, address),
		Description:          description,
		Location:             address,
		Start:                start,
		End:                  start.Add(eventDuration),
		ColorID:              EventColorID(o.ProblemType),
		EmailReminderMinutes: emailReminderMinutes,
		PopupReminderMinutes: popupReminderMinutes,
	}
}
