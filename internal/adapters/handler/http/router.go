package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/comitanigiacomo/floor-ceiling-tracker/docs"
	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/adapters/cache"
	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/adapters/database"
	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/adapters/handler/http/middleware"
)

const (
	statusConnected   = "connected"
	statusUnreachable = "unreachable"
	statusDisabled    = "disabled"
)

type RouterDependencies struct {
	UserHandler     *UserHandler
	GoalHandler     *GoalHandler
	LogHandler      *LogHandler
	ProgressHandler *ProgressHandler

	// DB and Redis are optional; a nil value is reported as disabled.
	DB    *sqlx.DB
	Redis *redis.Client

	RateLimit       int
	RateLimitWindow time.Duration

	Logger    *slog.Logger
	StartTime time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(logger), middleware.CORS())

	if deps.Redis != nil && deps.RateLimit > 0 {
		router.Use(middleware.RateLimiter(deps.Redis, deps.RateLimit, deps.RateLimitWindow))
	}

	router.GET("/health", deps.health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")
	apiV1.Use(middleware.UserIdentity())
	{
		deps.UserHandler.RegisterRoutes(apiV1)
		deps.GoalHandler.RegisterRoutes(apiV1)
		deps.LogHandler.RegisterRoutes(apiV1)
		deps.ProgressHandler.RegisterRoutes(apiV1)
	}

	return router
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
	Uptime   string `json:"uptime"`
}

// health godoc
// @Summary Service health
// @Tags system
// @Produce json
// @Success 200 {object} healthResponse
// @Failure 503 {object} healthResponse
// @Router /health [get]
func (deps RouterDependencies) health(c *gin.Context) {
	ctx := c.Request.Context()
	resp := healthResponse{
		Status:   "ok",
		Database: statusDisabled,
		Redis:    statusDisabled,
		Uptime:   time.Since(deps.StartTime).Round(time.Second).String(),
	}

	if deps.DB != nil {
		resp.Database = statusConnected
		if err := database.Ping(ctx, deps.DB); err != nil {
			resp.Database = statusUnreachable
		}
	}
	if deps.Redis != nil {
		resp.Redis = statusConnected
		if err := cache.Ping(ctx, deps.Redis); err != nil {
			resp.Redis = statusUnreachable
		}
	}

	code := http.StatusOK
	if resp.Database == statusUnreachable || resp.Redis == statusUnreachable {
		resp.Status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, resp)
}
