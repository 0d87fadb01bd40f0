package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/nagarseva/internal/observability"
	"github.com/spec-kit/nagarseva/internal/service"
)

// AnalyticsHandler exposes the analytics overview and request metrics.
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
	metrics   *observability.Metrics
}

// NewAnalyticsHandler constructs handler.
func NewAnalyticsHandler(analytics *service.AnalyticsService, metrics *observability.Metrics) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics, metrics: metrics}
}

// Overview GET /api/analytics.
func (h *AnalyticsHandler) Overview(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.analytics.Overview(c.UserContext())})
}

// Metrics GET /metrics.
func (h *AnalyticsHandler) Metrics(c *fiber.Ctx) error {
	return c.JSON(h.metrics.Snapshot())
}
