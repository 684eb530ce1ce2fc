package response

import "control_plagas/internal/usecase/interfaces"

type CalendarEventResponse struct {
	EventID  string `json:"event_id"`
	HTMLLink string `json:"html_link"`
}

func FromCalendarEventRef(ref interfaces.CalendarEventRef) CalendarEventResponse {
	return CalendarEventResponse{EventID: ref.EventID, HTMLLink: ref.HTMLLink}
}

type CalendarHealthResponse struct {
	Configured bool `json:"configured"`
}
