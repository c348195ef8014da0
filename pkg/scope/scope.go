package scope

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"personal-task-sync/internal/model"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingOwner = errors.New("token has no owner")
)

// Payload is the identity carried by a bearer token.
type Payload struct {
	OwnerID string `json:"owner_id"`
	jwt.RegisteredClaims
}

// Manager issues and verifies HS256 identity tokens.
type Manager interface {
	CreateToken(ownerID string) (string, error)
	Verify(token string) (Payload, error)
}

type implManager struct {
	secret []byte
	ttl    time.Duration
}

// New creates a Manager. A zero ttl defaults to 24h.
func New(secret string, ttl time.Duration) Manager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &implManager{secret: []byte(secret), ttl: ttl}
}

func (m *implManager) CreateToken(ownerID string) (string, error) {
	now := time.Now()
	claims := Payload{
		OwnerID: ownerID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ownerID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses the token and returns its payload. The owner id is taken from
// the owner_id claim, falling back to sub.
func (m *implManager) Verify(tokenString string) (Payload, error) {
	var payload Payload
	token, err := jwt.ParseWithClaims(tokenString, &payload, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return Payload{}, ErrInvalidToken
	}

	if payload.OwnerID == "" {
		payload.OwnerID = payload.Subject
	}
	if payload.OwnerID == "" {
		return Payload{}, ErrMissingOwner
	}
	return payload, nil
}

type payloadCtxKey struct{}

// SetPayloadToContext stores the payload on ctx.
func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, payloadCtxKey{}, payload)
}

// GetPayloadFromContext returns the payload stored on ctx, if any.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	payload, ok := ctx.Value(payloadCtxKey{}).(Payload)
	return payload, ok
}

// GetScopeFromContext returns the caller's scope. Anonymous callers get an
// empty scope.
func GetScopeFromContext(ctx context.Context) model.Scope {
	payload, ok := GetPayloadFromContext(ctx)
	if !ok {
		return model.Scope{}
	}
	return model.Scope{OwnerID: payload.OwnerID}
}
