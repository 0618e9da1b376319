package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	_ "treatment_planner/docs" // swag init output
	"treatment_planner/internal/adapter/http/handlers"
	"treatment_planner/internal/adapter/http/middleware"
	"treatment_planner/internal/adapter/persistence/repository"
	"treatment_planner/internal/infrastructure/database"
	"treatment_planner/internal/infrastructure/notify"
	"treatment_planner/internal/infrastructure/planservice"
	"treatment_planner/internal/usecase"
	"treatment_planner/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const DefaultPort = 8080

// Run will start the server
func Run() {
	planUseCase, err := buildPlanUseCase(context.Background())
	if err != nil {
		log.Fatalf("Failed to configure the plan service: %v", err)
	}
	defer planUseCase.Close()

	limiter := middleware.NewRateLimiter(getenvFloat("RATE_LIMIT_RPS", 0), int(getenvFloat("RATE_LIMIT_BURST", 0)))
	router := NewRouter(handlers.NewPlanHandler(planUseCase), limiter)

	port := int(getenvFloat("PORT", DefaultPort))
	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter registers every route on a fresh engine.
func NewRouter(planHandler *handlers.PlanHandler, limiter *middleware.RateLimiter) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, limiter)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPlanRoutes(v1, planHandler)
	return router
}

func buildPlanUseCase(ctx context.Context) (*usecase.PlanUseCase, error) {
	service, err := planservice.NewFromEnv()
	if err != nil {
		return nil, err
	}

	deps := usecase.WorkspaceDeps{
		Service:     service,
		Notifier:    buildNotifier(),
		ReloadDelay: getenvDuration("REORDER_RELOAD_DELAY"),
		IdleTTL:     getenvDuration("WORKSPACE_IDLE_TTL"),
	}
	// A nil *BookingForwarder must not reach the interface.
	if fwd := planservice.NewBookingForwarderFromEnv(); fwd != nil {
		deps.Booking = fwd
	}
	if ddb := database.ConnectDynamoDB(ctx); ddb != nil {
		deps.Audit = usecase.NewAuditRecorder(
			repository.NewPlanEventDynamoRepository(ddb),
			repository.NewPriceRevisionDynamoRepository(ddb),
		)
	}
	return usecase.NewPlanUseCase(deps), nil
}

func buildNotifier() interfaces.INotifier {
	sinks := notify.Fanout{notify.LogNotifier{}}
	if client := database.ConnectRedis(); client != nil {
		channel := os.Getenv("NOTIFY_CHANNEL")
		if channel == "" {
			channel = notify.DefaultChannel
		}
		sinks = append(sinks, notify.NewRedisNotifier(client, channel))
	}
	return sinks
}

func setMiddlewares(router *gin.Engine, limiter *middleware.RateLimiter) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	if limiter != nil {
		router.Use(limiter.RateLimit())
	}
}

func getenvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("[plan][config] invalid %s=%q, using %v", key, v, def)
		return def
	}
	return f
}

func getenvDuration(key string) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("[plan][config] invalid %s=%q, using default", key, v)
		return 0
	}
	return d
}
