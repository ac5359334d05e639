package token

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("missing authorization token")
)

const defaultTTLHours = 24

// Claims carries the external uid of the authenticated user.
type Claims struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// Config holds the signing parameters. It is built once at startup and passed
// to every collaborator that issues or verifies tokens; nothing reads the
// environment after construction.
type Config struct {
	Secret []byte
	TTL    time.Duration
	Issuer string
}

// ConfigFromEnv reads JWT_SECRET and TOKEN_TTL_HOURS, falling back to defaults.
func ConfigFromEnv(issuer string) Config {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your-super-secret-key-change-in-production"
	}

	ttl := defaultTTLHours * time.Hour
	if raw := os.Getenv("TOKEN_TTL_HOURS"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			ttl = time.Duration(hours) * time.Hour
		}
	}

	return Config{Secret: []byte(secret), TTL: ttl, Issuer: issuer}
}

// Manager issues and verifies HS256 tokens.
type Manager struct {
	cfg Config
}

func NewManager(cfg Config) *Manager {
	return &Manager{cfg: cfg}
}

// Generate signs a token for the given user identity and returns it together
// with its expiry time.
func (m *Manager) Generate(uid, email, name string) (string, time.Time, error) {
	expiresAt := time.Now().Add(m.cfg.TTL)

	claims := &Claims{
		UID:   uid,
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    m.cfg.Issuer,
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(m.cfg.Secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify parses a token string and returns its claims.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.cfg.Secret, nil
	})

	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims, ok := tok.Claims.(*Claims); ok && tok.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
