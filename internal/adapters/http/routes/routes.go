package routes

import (
	"schoolconnect/internal/adapters/http/handlers"
	"schoolconnect/internal/adapters/http/middleware"
	"schoolconnect/internal/adapters/persistence/repositories"
	"schoolconnect/internal/config"
	"schoolconnect/internal/core/policy"
	"schoolconnect/internal/core/services"
	"schoolconnect/internal/pkg/jwt"
	"schoolconnect/internal/pkg/password"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *config.Database, cfg *config.Config, log *zap.Logger) {
	// Initialize repositories
	repos := repositories.NewRepositories(db.DB)

	// Initialize services
	tokens := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TokenTTL)
	authService := services.NewAuthService(repos.Users, password.NewHasher(cfg.BcryptCost), tokens, log)
	schoolService := services.NewSchoolService(repos.Schools, repos.Mandals)
	communityService := services.NewCommunityService(repos)
	fundingService := services.NewFundingService(repos.Donations, repos.SchoolNeeds, log)
	adminService := services.NewAdminService(repos, log)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, cfg)
	authHandler := handlers.NewAuthHandler(authService, log)
	schoolHandler := handlers.NewSchoolHandler(schoolService, log)
	communityHandler := handlers.NewCommunityHandler(communityService, log)
	fundingHandler := handlers.NewFundingHandler(fundingService, log)
	adminHandler := handlers.NewAdminHandler(adminService, log)
	placeholderHandler := handlers.NewPlaceholderHandler()

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)
	app.Get("/metrics", middleware.MetricsHandler())

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	g := &gate{
		auth:   middleware.AuthMiddleware(authService),
		policy: policy.New(nil),
	}

	api := app.Group("/api")
	setupAuthRoutes(api.Group("/auth"), authHandler, g, cfg)
	setupSchoolRoutes(api, schoolHandler, g)
	setupCommunityRoutes(api, communityHandler, g)
	setupFundingRoutes(api, fundingHandler, g)
	setupAdminRoutes(api.Group("/admin"), adminHandler, g)
	setupPlaceholderRoutes(api, placeholderHandler, g)
}

// gate builds the authentication and authorization chain for protected routes
type gate struct {
	auth   fiber.Handler
	policy *policy.Policy
}

// protected prepends authentication and the policy check for action to handler
func (g *gate) protected(action policy.Action, handler fiber.Handler) []fiber.Handler {
	return []fiber.Handler{g.auth, middleware.Require(g.policy, action), handler}
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, g *gate, cfg *config.Config) {
	// Public routes, rate limited per IP in production
	public := []fiber.Handler{}
	if cfg.IsProd() {
		public = append(public, middleware.AuthRateLimiter())
	}
	router.Post("/register", append(public, handler.Register)...)
	router.Post("/login", append(public, handler.Login)...)

	// Protected routes
	router.Get("/me", g.protected(policy.ActionViewSelf, handler.Me)...)
}

// setupSchoolRoutes configures school and mandal routes
func setupSchoolRoutes(router fiber.Router, handler *handlers.SchoolHandler, g *gate) {
	router.Get("/schools", handler.ListSchools)
	router.Get("/schools/:id", handler.GetSchool)
	router.Post("/schools", g.protected(policy.ActionCreateSchool, handler.CreateSchool)...)
	router.Put("/schools/:id", g.protected(policy.ActionUpdateSchool, handler.UpdateSchool)...)

	router.Get("/mandals", handler.ListMandals)
}

// setupCommunityRoutes configures alumni, event, forum, bulletin, news and gallery routes
func setupCommunityRoutes(router fiber.Router, handler *handlers.CommunityHandler, g *gate) {
	router.Get("/alumni", handler.ListAlumni)
	router.Post("/alumni", g.protected(policy.ActionCreateAlumni, handler.CreateAlumni)...)

	router.Get("/events", handler.ListEvents)
	router.Post("/events", g.protected(policy.ActionCreateEvent, handler.CreateEvent)...)

	router.Get("/forums/posts", handler.ListPosts)
	router.Post("/forums/posts", g.protected(policy.ActionCreatePost, handler.CreatePost)...)

	router.Get("/bulletins", handler.ListBulletins)
	router.Post("/bulletins", g.protected(policy.ActionCreateBulletin, handler.CreateBulletin)...)

	router.Get("/news", handler.ListNews)
	router.Post("/news", g.protected(policy.ActionCreateNews, handler.CreateNews)...)

	router.Get("/galleries", handler.ListGalleries)
	router.Post("/galleries", g.protected(policy.ActionCreateGallery, handler.CreateGallery)...)
}

// setupFundingRoutes configures donation and school need routes
func setupFundingRoutes(router fiber.Router, handler *handlers.FundingHandler, g *gate) {
	// Donations are open to anonymous donors
	router.Get("/donations", handler.ListDonations)
	router.Post("/donations", handler.CreateDonation)

	router.Get("/school-needs", handler.ListNeeds)
	router.Post("/school-needs", g.protected(policy.ActionCreateNeed, handler.CreateNeed)...)
}

// setupAdminRoutes configures admin console routes (admin and MEO only)
func setupAdminRoutes(router fiber.Router, handler *handlers.AdminHandler, g *gate) {
	router.Get("/stats", g.protected(policy.ActionViewStats, handler.Stats)...)
	router.Get("/users", g.protected(policy.ActionListUsers, handler.ListUsers)...)
	router.Put("/users/:id/approve", g.protected(policy.ActionApproveUser, handler.ApproveUser)...)
}

// setupPlaceholderRoutes configures routes for features not built yet
func setupPlaceholderRoutes(router fiber.Router, handler *handlers.PlaceholderHandler, g *gate) {
	router.Get("/chat/conversations", g.protected(policy.ActionViewChat, handler.Conversations)...)
	router.Get("/mentors", handler.Mentors)
	router.Get("/notifications", g.protected(policy.ActionViewNotices, handler.Notifications)...)
}
