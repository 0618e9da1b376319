package main

import (
	"treatment_planner/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Treatment Plan Orchestrator API
// @version         1.0
// @description     Treatment plan workflow: approval, ordering, pricing, scheduling and booking hand-off.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Capabilities
// @in header
// @name X-Plan-Capabilities
// @description Comma-separated capabilities: edit, approve, edit_pricing, book.

func main() {
	routes.Run()
}
