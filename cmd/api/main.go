package main

import (
	_ "dynamic_shipping/docs"
	"dynamic_shipping/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Dynamic Shipping API
// @version         1.0
// @description     Shipping service (quotes, shipments, tracking, payments) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey UserID
// @in header
// @name X-User-ID
// @description Caller identity forwarded by the edge proxy.

func main() {
	routes.Run()
}
