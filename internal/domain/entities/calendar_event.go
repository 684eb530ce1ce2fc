package entities

import "time"

// CalendarEvent is the derived payload pushed to the external calendar
// provider. It is never persisted locally; the provider owns the event id.
type CalendarEvent struct {
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	ColorID     string    `json:"color_id"`

	// Reminder policy is fixed per event: one email and one popup, expressed
	// in minutes before start.
	EmailReminderMinutes int64 `json:"email_reminder_minutes"`
	PopupReminderMinutes int64 `json:"popup_reminder_minutes"`
}
