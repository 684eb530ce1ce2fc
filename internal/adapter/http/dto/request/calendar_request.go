package request

// CalendarEventRequest names the work order to mirror into the external
// calendar. The event id, when relevant, travels in the URL.
type CalendarEventRequest struct {
	OrderID string `json:"order_id" binding:"required"`
}
