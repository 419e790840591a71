package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/authdash/dashboard-api/internal/api/handler"
	"github.com/authdash/dashboard-api/internal/api/middleware"
	"github.com/authdash/dashboard-api/internal/core/ports"
	"github.com/authdash/dashboard-api/internal/core/service"
	"github.com/authdash/dashboard-api/internal/pkg/hash"
	"github.com/authdash/dashboard-api/internal/pkg/token"
)

// Deps carries everything the router needs. Mongo and Redis handles are only
// used by the readiness probe and may be nil in tests.
type Deps struct {
	Users      ports.UserRepository
	Dashboard  ports.DashboardProvider
	Tokens     *token.Service
	TokenTTL   time.Duration
	BcryptCost int
	CORSOrigin string
	Mongo      *mongo.Database
	Redis      *redis.Client
	Log        zerolog.Logger
}

// echoprometheus registers its collectors with the default registry, which
// tolerates exactly one registration per process. Routers share one instance.
var (
	promOnce sync.Once
	promMW   echo.MiddlewareFunc
)

func prometheusMiddleware() echo.MiddlewareFunc {
	promOnce.Do(func() {
		promMW = echoprometheus.NewMiddleware("authdash")
	})
	return promMW
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(prometheusMiddleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{d.CORSOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// --- Dependencies ---
	authService := service.NewAuthService(d.Users, hash.NewBcrypt(d.BcryptCost), d.Tokens, d.TokenTTL)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler()
	dashboardHandler := handler.NewDashboardHandler(d.Dashboard)
	authGate := middleware.Auth(d.Tokens, d.Users)

	// --- Public routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Protected routes ---
	users := e.Group("/users", authGate)
	users.GET("/me", userHandler.Me)

	dashboard := e.Group("/dashboard", authGate)
	dashboard.GET("/stats", dashboardHandler.Stats)
	dashboard.GET("/recent-activities", dashboardHandler.RecentActivities)

	// --- Operational surface (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	if d.Mongo != nil {
		readiness := handler.NewReadinessHandler(d.Mongo, d.Redis)
		e.GET("/health/ready", readiness.Readiness)
	}

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
