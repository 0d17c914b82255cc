package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/bloghub/bloghub-api/docs"
	"github.com/bloghub/bloghub-api/internal/api/handler"
	"github.com/bloghub/bloghub-api/internal/api/middleware"
	"github.com/bloghub/bloghub-api/internal/core/ports"
	"github.com/bloghub/bloghub-api/pkg/logger"
)

// Dependencies carries everything the router needs to register routes.
type Dependencies struct {
	Auth      ports.AuthService
	Posts     ports.PostService
	Admin     ports.AdminService
	About     ports.AboutService
	Generator ports.ContentGenerator
	Guard     ports.Guard
	Cookies   handler.CookiePolicy

	Mongo *mongo.Database
	Redis *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("bloghub"))

	requireAuth := middleware.RequireAuth(deps.Guard)
	optionalAuth := middleware.OptionalAuth(deps.Guard)
	requireAdmin := middleware.RequireAdmin(deps.Guard)

	// --- Auth ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Cookies)
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me, optionalAuth)
	e.DELETE("/auth/delete-account", authHandler.DeleteAccount, requireAuth)

	// --- Profile ---
	profileHandler := handler.NewProfileHandler(deps.Auth)
	e.PUT("/profile", profileHandler.Update, requireAuth)

	// --- Posts ---
	postHandler := handler.NewPostHandler(deps.Posts)
	e.GET("/posts", postHandler.List)
	e.GET("/posts/:id", postHandler.Get)
	e.POST("/posts", postHandler.Create)
	e.PUT("/posts/:id", postHandler.Update)
	e.PATCH("/posts/:id", postHandler.Patch)
	e.DELETE("/posts/:id", postHandler.Delete)

	// --- Content generation ---
	generateHandler := handler.NewGenerateHandler(deps.Generator)
	e.POST("/generate-blog", generateHandler.Generate, requireAuth)

	// --- About page ---
	aboutHandler := handler.NewAboutHandler(deps.About)
	e.GET("/about", aboutHandler.Get)

	// --- Admin back office ---
	adminUsers := handler.NewAdminUsersHandler(deps.Admin)
	adminPosts := handler.NewAdminPostsHandler(deps.Admin)
	adminAbout := handler.NewAdminAboutHandler(deps.About)

	admin := e.Group("/admin", requireAdmin)
	admin.GET("/users", adminUsers.List)
	admin.POST("/users", adminUsers.Create)
	admin.PUT("/users", adminUsers.Update)
	admin.PATCH("/users", adminUsers.ToggleAdmin)
	admin.DELETE("/users", adminUsers.Delete)

	admin.GET("/posts", adminPosts.List)
	admin.PUT("/posts", adminPosts.Update)
	admin.DELETE("/posts", adminPosts.Delete)

	admin.GET("/about", adminAbout.Get)
	admin.POST("/about", adminAbout.Post)
	admin.PUT("/about", adminAbout.UpdateTeamMember)
	admin.PATCH("/about", adminAbout.ReorderTeam)
	admin.DELETE("/about", adminAbout.DeleteTeamMember)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational surface ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
