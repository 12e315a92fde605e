package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"  // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9" // redis client for the response cache middleware

	"github.com/welcomehome/inventory/internal/config"     // cache configuration for lookup routes
	"github.com/welcomehome/inventory/internal/handler"    // import the handlers that implement the API surface
	"github.com/welcomehome/inventory/internal/middleware" // middleware for JWT authentication and role enforcement
	"github.com/welcomehome/inventory/internal/model"      // role enumeration used for staff gating
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Used by load balancers and monitoring to verify the service is up.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication endpoints.  Register and
// login live under /v1/auth and need no token; logout and /v1/me
// require a valid session token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Logout needs the token so the handler can find which session to clear.
	g.POST("/logout", a.Logout, middleware.JWTAuth(jwtSecret))

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// RegisterInventory registers the donation, order and lookup endpoints.
// All routes require a valid session token.  Mutating staff operations
// additionally require an elevated role; lookup GETs are wrapped in the
// Redis response cache when a client is available.
func RegisterInventory(e *echo.Echo, d *handler.DonationHandler, o *handler.OrderHandler, i *handler.ItemHandler, jwtSecret string, rdb *redis.Client, cacheCfg config.CacheConfig) {
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))

	// Staff operations: donor registration, donation intake, the order
	// lifecycle and taxonomy maintenance.  RequireRole rejects clients
	// and volunteers with 403; the service re-checks the session role
	// underneath.
	staff := auth.Group("")
	staff.Use(middleware.RequireRole(model.RoleStaff, model.RoleAdmin))
	staff.POST("/donors", d.CreateDonor)
	staff.POST("/donations", d.Accept)
	staff.POST("/orders", o.Start)
	staff.POST("/orders/active/items", o.AddItem)
	staff.POST("/orders/:id/prepare", o.Prepare)
	staff.POST("/categories", i.CreateCategory)

	// Authenticated lookups.  Responses are cached briefly; inventory
	// changes slowly between intakes.
	cache := middleware.NewRedisCache(cacheCfg, rdb)
	auth.GET("/orders", o.List)
	auth.GET("/orders/:id/items", o.Items, cache)
	auth.GET("/items", i.Available, cache)
	auth.GET("/items/:id/locations", i.Locations, cache)
	auth.GET("/categories", i.Categories, cache)
	auth.GET("/donors/:id/donations", d.DonorDonations)
}
