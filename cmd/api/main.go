package main

import (
	_ "control_plagas/docs"
	"control_plagas/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Pest Control Work Order API
// @version         1.0
// @description     Work order tracking for pest-control service requests (neighbors, orders, visits) with optional Google Calendar mirroring, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
