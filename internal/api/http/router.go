package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/nagarseva/internal/api/http/handlers"
	"github.com/spec-kit/nagarseva/internal/domain"
	"github.com/spec-kit/nagarseva/internal/ratelimit"
	"github.com/spec-kit/nagarseva/internal/shell"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Issues    *handlers.IssuesHandler
	Analytics *handlers.AnalyticsHandler
	Pages     *handlers.PagesHandler
	Session   *shell.Middleware
	Limiter   ratelimit.Limiter
	Logger    *zap.Logger
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	limiter := cfg.Limiter
	if limiter == nil {
		limiter = ratelimit.Disabled{}
	}
	limitReports := reportRateLimit(limiter, cfg.Logger)

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Analytics.Metrics)

	api := app.Group("/api")
	api.Get("/issues", cfg.Issues.ListIssues)
	api.Post("/issues", limitReports, cfg.Issues.CreateIssue)
	api.Get("/issues/:id", cfg.Issues.GetIssue)
	api.Patch("/issues/:id", cfg.Issues.UpdateIssueStatus)
	api.Get("/analytics", cfg.Analytics.Overview)

	pages := app.Group("", cfg.Session.Handle)
	pages.Get("/", cfg.Pages.Home)
	pages.Post("/shell/role", cfg.Pages.SelectRole)
	pages.Post("/shell/view", cfg.Pages.Navigate)
	pages.Post("/shell/logout", cfg.Pages.Logout)
	pages.Post("/citizen/reports", shell.RequireRole(domain.RoleCitizen), limitReports, cfg.Pages.SubmitReport)
	pages.Post("/admin/issues/:id/status", shell.RequireRole(domain.RoleAdmin), cfg.Pages.UpdateStatus)
}
