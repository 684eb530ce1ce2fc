package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "control_plagas/docs" // This will be auto-generated
	"control_plagas/internal/adapter/http/handlers"
	repository2 "control_plagas/internal/adapter/persistence/repository"
	"control_plagas/internal/infrastructure/calendar"
	"control_plagas/internal/infrastructure/database"
	"control_plagas/internal/usecase"
	"control_plagas/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	neighborRepo := repository2.NewNeighborDynamoRepository(ddb)
	orderRepo := repository2.NewWorkOrderDynamoRepository(ddb)

	neighborUseCase := usecase.NewNeighborUseCase(neighborRepo)
	orderUseCase := usecase.NewWorkOrderUseCase(orderRepo, neighborRepo)

	// The calendar gateway is configured once at startup or not at all; with
	// no credentials the sync endpoints answer 503 and nothing else changes.
	var calendarGateway interfaces.ICalendarGateway
	gcal, err := calendar.NewGoogleCalendarGateway(
		context.Background(),
		os.Getenv("GOOGLE_CALENDAR_CREDENTIALS_FILE"),
		os.Getenv("GOOGLE_CALENDAR_ID"),
	)
	if err != nil {
		log.Printf("Google Calendar gateway not configured: %v", err)
	} else {
		calendarGateway = gcal
	}

	calendarUseCase := usecase.NewCalendarSyncUseCase(calendarGateway, orderRepo, neighborRepo)

	neighborHandler := handlers.NewNeighborHandler(neighborUseCase)
	orderHandler := handlers.NewWorkOrderHandler(orderUseCase)
	calendarHandler := handlers.NewCalendarHandler(calendarUseCase)

	// Rutas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPestControlRoutes(v1, neighborHandler, orderHandler, calendarHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
