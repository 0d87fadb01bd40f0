package http

import (
	"context"
	"errors"
	"math"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/nagarseva/internal/observability"
	"github.com/spec-kit/nagarseva/internal/ratelimit"
	"github.com/spec-kit/nagarseva/internal/web"
	apperrors "github.com/spec-kit/nagarseva/pkg/util/errorutil"
)

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) {
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(errorHandlingMiddleware(logger, metrics))
	app.Use(observability.RequestLogger(logger, metrics))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// errorHandlingMiddleware turns returned errors and panics into responses: the
// JSON envelope for API callers, an error page for browsers.
func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err != nil {
				domainErr := toDomainError(err)
				metrics.RecordError(c.Path(), c.Method(), domainErr.Code)
				if domainErr.HTTPStatus >= 500 {
					logger.Error("request failed", zap.Error(domainErr))
				}
				if retry, ok := domainErr.Details["retry_after"].(float64); ok {
					c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(math.Ceil(retry))))
				}
				c.Status(domainErr.HTTPStatus)
				if wantsHTML(c) {
					if renderErr := renderErrorPage(c, domainErr); renderErr == nil {
						err = nil
						return
					}
				}
				response := fiber.Map{"error": fiber.Map{
					"code":    domainErr.Code,
					"message": domainErr.Message,
				}}
				if len(domainErr.Details) > 0 {
					response["error"].(fiber.Map)["details"] = domainErr.Details
				}
				_ = c.JSON(response)
				err = nil
			}
		}()
		return c.Next()
	}
}

func toDomainError(err error) *apperrors.DomainError {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return apperrors.FromStatus(fiberErr.Code, fiberErr.Message)
	}
	return apperrors.ToDomainError(err)
}

func wantsHTML(c *fiber.Ctx) bool {
	path := c.Path()
	if strings.HasPrefix(path, "/api") || strings.HasPrefix(path, "/health") || path == "/metrics" {
		return false
	}
	return c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMETextHTML
}

func renderErrorPage(c *fiber.Ctx, domainErr *apperrors.DomainError) error {
	return c.Render("error", fiber.Map{
		"Chrome": fiber.Map{"Title": "Error"},
		"Page": fiber.Map{
			"Status":  domainErr.HTTPStatus,
			"Code":    domainErr.Code,
			"Message": domainErr.Message,
		},
	}, web.Layout)
}

// reportRateLimit caps report submissions per client IP.
func reportRateLimit(limiter ratelimit.Limiter, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		decision, err := limiter.Allow(c.UserContext(), c.IP())
		if err != nil {
			// Limiter backend errors let the request through.
			logger.Warn("rate limiter unavailable", zap.Error(err))
			return c.Next()
		}
		if !decision.Allowed {
			return apperrors.NewRateLimited(decision.RetryAfter.Seconds())
		}
		return c.Next()
	}
}
