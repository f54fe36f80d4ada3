package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/labcel/storefront/docs"
	"github.com/labcel/storefront/internal/api/handler"
	"github.com/labcel/storefront/internal/api/middleware"
	"github.com/labcel/storefront/internal/core/domain"
	"github.com/labcel/storefront/internal/core/ports"
)

const (
	uploadPath = "/api/upload/image"
	// Upload bodies up to this multiple of the image cap reach the handler.
	uploadBodyFactor = 4
)

// Services are the use cases exposed over HTTP.
type Services struct {
	Auth          ports.AuthService
	Users         ports.UserService
	Catalog       ports.CatalogService
	Orders        ports.OrderService
	Images        ports.ImageService
	Stats         ports.StatsService
	Notifications ports.NotificationService
}

// Options tune the HTTP surface.
type Options struct {
	AllowedOrigins  []string
	Cookies         handler.CookieConfig
	UploadMaxBytes  int64
	AuthRateLimit   rate.Limit
	UploadRateLimit rate.Limit
	ReadinessChecks map[string]handler.DependencyCheck
	// Registerer receives the HTTP metrics; nil means the default registry.
	Registerer prometheus.Registerer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, opts Options, log zerolog.Logger) *echo.Echo {
	if opts.UploadMaxBytes <= 0 {
		opts.UploadMaxBytes = domain.MaxImageBytes
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     opts.AllowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	// The upload route carries its own, larger limit; the image cap itself is
	// enforced by the handler and the image service.
	e.Use(echomiddleware.BodyLimitWithConfig(echomiddleware.BodyLimitConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == uploadPath
		},
		Limit: fmt.Sprintf("%dK", opts.UploadMaxBytes/1024+1024),
	}))
	registerer := opts.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
		Subsystem:  "storefront",
		Registerer: registerer,
	}))

	// --- Operational endpoints (root, no auth) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(svc.Auth, opts.Cookies)
	userHandler := handler.NewUserHandler(svc.Users)
	catalogHandler := handler.NewCatalogHandler(svc.Catalog)
	orderHandler := handler.NewOrderHandler(svc.Orders)
	imageHandler := handler.NewImageHandler(svc.Images, opts.UploadMaxBytes)
	adminHandler := handler.NewAdminHandler(svc.Stats, svc.Notifications)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(opts.ReadinessChecks)

	requireAuth := middleware.RequireAuth(svc.Auth)
	optionalAuth := middleware.OptionalAuth(svc.Auth)
	admin := []echo.MiddlewareFunc{requireAuth, middleware.RequireAdmin()}

	api := e.Group("/api")

	// --- Auth ---
	api.POST("/auth/session", authHandler.CreateSession, limiter(opts.AuthRateLimit))
	api.GET("/auth/me", authHandler.Me, requireAuth)
	api.POST("/auth/logout", authHandler.Logout, optionalAuth)

	// --- Users (admin) ---
	users := api.Group("/users", admin...)
	users.GET("", userHandler.List)
	users.GET("/:user_id", userHandler.Get)
	users.PUT("/:user_id", userHandler.Update)
	users.PUT("/:user_id/role", userHandler.ChangeRole)

	// --- Catalog ---
	api.GET("/phone-brands", catalogHandler.ListBrands)
	api.POST("/phone-brands", catalogHandler.CreateBrand, admin...)
	api.GET("/phone-models", catalogHandler.ListModels)
	api.POST("/phone-models", catalogHandler.CreateModel, admin...)
	api.GET("/products", catalogHandler.ListProducts)
	api.GET("/products/:product_id", catalogHandler.GetProduct)
	api.POST("/products", catalogHandler.CreateProduct, admin...)
	api.PUT("/products/:product_id", catalogHandler.UpdateProduct, admin...)
	api.DELETE("/products/:product_id", catalogHandler.DeleteProduct, admin...)
	api.POST("/seed", catalogHandler.Seed)

	// --- Orders ---
	api.POST("/orders", orderHandler.Create, optionalAuth)
	api.GET("/orders", orderHandler.List, requireAuth)
	api.GET("/orders/track/:order_id", orderHandler.Track)
	api.GET("/orders/:order_id", orderHandler.Get, requireAuth)
	api.PUT("/orders/:order_id/status", orderHandler.UpdateStatus, admin...)
	api.POST("/orders/:order_id/design-proposal", orderHandler.SendDesignProposal, admin...)
	api.PUT("/orders/:order_id/approve-design", orderHandler.ApproveDesign, admin...)

	// --- Uploads ---
	api.POST("/upload/image", imageHandler.Upload,
		limiter(opts.UploadRateLimit),
		echomiddleware.BodyLimit(fmt.Sprintf("%dK", opts.UploadMaxBytes*uploadBodyFactor/1024)))
	api.GET("/upload/image/:image_id", imageHandler.Get)

	// --- Admin dashboard ---
	adminGroup := api.Group("/admin", admin...)
	adminGroup.GET("/stats", adminHandler.Stats)
	adminGroup.GET("/notifications", adminHandler.Notifications)

	// --- Health probes (no auth required) ---
	api.GET("/health", healthHandler.Liveness)
	api.GET("/health/ready", readinessHandler.Readiness)

	return e
}

// limiter applies a per-client-IP token bucket; a zero limit disables it.
func limiter(limit rate.Limit) echo.MiddlewareFunc {
	if limit <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return echomiddleware.RateLimiter(echomiddleware.NewRateLimiterMemoryStore(limit))
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			switch {
			case v.Status >= http.StatusInternalServerError:
				ev = log.Error().Err(v.Error)
			case v.Error != nil:
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
