package shell

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/nagarseva/internal/config"
)

const stateKey = "shell_state"

var expiredAt = time.Date(2009, time.November, 10, 23, 0, 0, 0, time.UTC)

// Middleware loads the shell state from its cookie and writes it back on change.
type Middleware struct {
	codec  *Codec
	cfg    config.SessionConfig
	logger *zap.Logger
}

// NewMiddleware constructs middleware.
func NewMiddleware(codec *Codec, cfg config.SessionConfig, logger *zap.Logger) *Middleware {
	if cfg.CookieName == "" {
		cfg.CookieName = "nagarseva_shell"
	}
	return &Middleware{codec: codec, cfg: cfg, logger: logger}
}

// Handle decodes the cookie into the request locals. A missing, tampered or
// expired cookie yields the initial state.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	state := Initial()
	if raw := c.Cookies(m.cfg.CookieName); raw != "" {
		decoded, err := m.codec.Decode(raw)
		if err != nil {
			m.logger.Debug("discarding shell cookie", zap.Error(err))
		} else {
			state = decoded
		}
	}
	c.Locals(stateKey, state)
	return c.Next()
}

// Save stores state for the rest of the request and in the response cookie.
func (m *Middleware) Save(c *fiber.Ctx, state State) error {
	token, expiresAt, err := m.codec.Encode(state)
	if err != nil {
		return err
	}
	c.Locals(stateKey, state)
	c.Cookie(m.cookie(token, expiresAt))
	return nil
}

// Clear expires the cookie and resets the request state. The expired cookie
// carries the same path and flags as the one Save wrote.
func (m *Middleware) Clear(c *fiber.Ctx) {
	c.Locals(stateKey, Initial())
	c.Cookie(m.cookie("", expiredAt))
}

func (m *Middleware) cookie(value string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     m.cfg.CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   m.cfg.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

// StateFromContext returns the state loaded by Handle, or the initial state.
func StateFromContext(c *fiber.Ctx) State {
	if state, ok := c.Locals(stateKey).(State); ok {
		return state
	}
	return Initial()
}
