package routes

import (
	"control_plagas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathNeighbors  = "/neighbors"
	PathWorkOrders = "/work-orders"
	PathCalendar   = "/calendar"
)

func addPestControlRoutes(
	rg *gin.RouterGroup,
	neighborHandler *handlers.NeighborHandler,
	orderHandler *handlers.WorkOrderHandler,
	calendarHandler *handlers.CalendarHandler,
) {
	neighbors := rg.Group(PathNeighbors)
	{
		neighbors.GET("", neighborHandler.ListNeighbors)
		neighbors.POST("", neighborHandler.CreateNeighbor)
		neighbors.GET("/:id", neighborHandler.GetNeighbor)
		neighbors.PUT("/:id", neighborHandler.UpdateNeighbor)
		neighbors.DELETE("/:id", neighborHandler.DeleteNeighbor)
	}

	orders := rg.Group(PathWorkOrders)
	{
		orders.GET("", orderHandler.ListWorkOrders)
		orders.POST("", orderHandler.CreateWorkOrder)
		orders.GET("/:id", orderHandler.GetWorkOrder)
		orders.PUT("/:id", orderHandler.UpdateWorkOrder)
		orders.DELETE("/:id", orderHandler.DeleteWorkOrder)
		orders.POST("/:id/visits", orderHandler.AppendVisit)
		orders.PATCH("/:id/complete", orderHandler.CompleteWorkOrder)
	}

	cal := rg.Group(PathCalendar)
	{
		cal.GET("/health", calendarHandler.Health)
		cal.POST("/events", calendarHandler.CreateEvent)
		cal.PUT("/events/:event_id", calendarHandler.UpdateEvent)
		cal.DELETE("/events/:event_id", calendarHandler.RemoveEvent)
	}
}
