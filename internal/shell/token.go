package shell

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/nagarseva/internal/domain"
)

// Codec signs and verifies the shell state cookie.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec builds a codec. A non-positive ttl defaults to twelve hours.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Claims describes the cookie payload.
type Claims struct {
	Role domain.Role `json:"role,omitempty"`
	View domain.View `json:"view"`
	jwt.RegisteredClaims
}

// Encode signs state and returns the token with its expiry.
func (c *Codec) Encode(state State) (string, time.Time, error) {
	now := c.now()
	expiresAt := now.Add(c.ttl)
	claims := &Claims{
		Role: state.Role,
		View: state.View,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Decode verifies tokenStr and returns the state it carries. Values that no
// longer name a known role or view are normalised rather than rejected.
func (c *Codec) Decode(tokenStr string) (State, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now))
	if err != nil {
		return Initial(), err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return Initial(), errors.New("invalid shell claims")
	}
	if !claims.Role.Valid() {
		return Initial(), nil
	}
	return State{Role: claims.Role}.Navigate(claims.View), nil
}
