package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"

	_ "github.com/dealerhub/dealer-portal/docs"
	"github.com/dealerhub/dealer-portal/internal/api/handler"
	"github.com/dealerhub/dealer-portal/internal/api/middleware"
	"github.com/dealerhub/dealer-portal/internal/core/domain"
	"github.com/dealerhub/dealer-portal/internal/core/ports"
	"github.com/dealerhub/dealer-portal/internal/core/service"
	"github.com/dealerhub/dealer-portal/internal/infrastructure/config"
	memorystore "github.com/dealerhub/dealer-portal/internal/infrastructure/db/memory"
	redisstore "github.com/dealerhub/dealer-portal/internal/infrastructure/db/redis"
	"github.com/dealerhub/dealer-portal/internal/infrastructure/upstream"
)

// loginRatePerSecond bounds credential guessing through the portal. The
// backend is the real authority; this just keeps the portal from being a
// convenient amplifier.
const loginRatePerSecond = 5

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil when the memory session backend is configured; db may be nil
// when the audit trail is disabled.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, audit ports.AuditSink, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	var store ports.SessionStore
	if cfg.SessionBackend == "memory" {
		store = memorystore.NewSessionStore()
	} else {
		store = redisstore.NewSessionStore(rdb, cfg.SessionTTL)
	}

	backend := upstream.New(cfg.Backend.URL, cfg.Backend.Timeout, log)
	sessions := service.NewSessionService(store, upstream.NewAuthClient(backend), audit, log)
	guard := middleware.NewRouteGuard(sessions, audit)

	authHandler := handler.NewAuthHandler(sessions, cfg.SessionSecret, cfg.SessionTTL)
	dashboardHandler := handler.NewDashboardHandler()
	ticketsHandler := handler.NewTicketsHandler(upstream.NewSalespersonClient(backend), upstream.NewMechanicClient(backend))
	profileHandler := handler.NewProfileHandler(upstream.NewCustomerClient(backend))
	salesHandler := handler.NewSalespersonHandler(upstream.NewSalespersonClient(backend))
	mechHandler := handler.NewMechanicHandler(upstream.NewMechanicClient(backend))
	custHandler := handler.NewCustomerHandler(upstream.NewCustomerClient(backend))

	// Every route sees the resolved session state.
	e.Use(middleware.Resolver(sessions, cfg.SessionSecret))

	// --- Auth routes ---
	loginLimiter := echomiddleware.RateLimiter(
		echomiddleware.NewRateLimiterMemoryStore(rate.Limit(loginRatePerSecond)),
	)
	e.GET("/login", authHandler.LoginEntry)
	e.POST("/login", authHandler.Login, loginLimiter)
	e.POST("/logout", authHandler.Logout)

	// --- Authenticated, role-neutral routes ---
	e.GET("/dashboard", dashboardHandler.Overview, guard.Authenticated())
	e.GET("/service-tickets", ticketsHandler.List, guard.Authenticated())
	e.GET("/profile", profileHandler.Show, guard.Authenticated())

	// --- Salesperson area ---
	sales := e.Group("/salesperson", guard.Require(domain.RoleSalesperson))
	sales.GET("/customers", salesHandler.Customers)
	sales.POST("/customers", salesHandler.CreateCustomer)
	sales.PUT("/customers/:id", salesHandler.UpdateCustomer)
	sales.DELETE("/customers/:id", salesHandler.DeleteCustomer)
	sales.GET("/customers/search", salesHandler.SearchCustomers)
	sales.GET("/cars", salesHandler.Cars)
	sales.POST("/cars", salesHandler.CreateCar)
	sales.PUT("/cars/:id", salesHandler.UpdateCar)
	sales.DELETE("/cars/:id", salesHandler.DeleteCar)
	sales.GET("/cars/search", salesHandler.SearchCars)
	sales.GET("/parts", salesHandler.Parts)
	sales.POST("/parts", salesHandler.CreatePart)
	sales.PUT("/parts/:id", salesHandler.UpdatePart)
	sales.DELETE("/parts/:id", salesHandler.DeletePart)
	sales.GET("/parts/search", salesHandler.SearchParts)
	sales.GET("/invoices", salesHandler.Invoices)
	sales.POST("/invoices", salesHandler.CreateInvoice)
	sales.GET("/service-tickets", salesHandler.ServiceTickets)
	sales.POST("/service-tickets", salesHandler.CreateServiceTicket)
	sales.GET("/service-tickets/:id", salesHandler.ServiceTicket)
	sales.GET("/reports/:name", salesHandler.Report)

	// --- Mechanic area ---
	mech := e.Group("/mechanic", guard.Require(domain.RoleMechanic))
	mech.GET("/service-tickets", mechHandler.ServiceTickets)
	mech.GET("/service-tickets/search", mechHandler.SearchServiceTickets)
	mech.GET("/service-tickets/:id", mechHandler.ServiceTicket)
	mech.PUT("/service-tickets/:id", mechHandler.UpdateServiceTicket)
	mech.PATCH("/service-tickets/:id/update-work", mechHandler.UpdateWork)
	mech.GET("/services", mechHandler.Services)
	mech.POST("/services", mechHandler.CreateService)
	mech.PUT("/services/:id", mechHandler.UpdateService)
	mech.DELETE("/services/:id", mechHandler.DeleteService)

	// --- Customer area ---
	cust := e.Group("/customer", guard.Require(domain.RoleCustomer))
	cust.GET("/service-tickets", custHandler.ServiceTickets)
	cust.GET("/service-tickets/:id", custHandler.ServiceTicket)
	cust.GET("/invoices", custHandler.Invoices)
	cust.GET("/invoices/:id", custHandler.Invoice)
	cust.PUT("/profile", custHandler.UpdateProfile)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(rdb, db, backend)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Unknown navigation lands on the dashboard; the guard takes it from
	// there for anonymous visitors.
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, middleware.DashboardPath)
	})
	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, middleware.DashboardPath)
	})

	return e
}
