// Package auth implements the role-scoped gate every protected route passes
// through: bearer-token verification and capability checks. The gate is
// stateless; a Gate value is safe for concurrent use.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"credtrack/internal/apperror"
	"credtrack/internal/model"
)

// Identity is the authenticated principal extracted from a verified token.
type Identity struct {
	AccountID string
	Role      model.Role
}

// Claims is the signed-claims payload carried by access tokens.
type Claims struct {
	AccountID string `json:"account_id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// Gate issues and verifies HS256 signed-claims tokens and enforces role
// requirements. The signing secret is injected at construction, never read
// from ambient state.
type Gate struct {
	signingKey []byte
	ttl        time.Duration
}

func NewGate(signingSecret string, ttl time.Duration) *Gate {
	return &Gate{signingKey: []byte(signingSecret), ttl: ttl}
}

// Issue creates a signed token for the given account.
func (g *Gate) Issue(accountID string, role model.Role) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		AccountID: accountID,
		Role:      string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(g.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        uuid.NewString(),
		},
	})
	return token.SignedString(g.signingKey)
}

// Authenticate verifies the Authorization header value and returns the
// identity it carries. A missing header is Unauthenticated; a malformed,
// unsigned, or expired token is InvalidSession.
func (g *Gate) Authenticate(authHeader string) (Identity, error) {
	if authHeader == "" {
		return Identity{}, apperror.New(apperror.CodeUnauthenticated, "missing bearer token")
	}
	raw := strings.TrimPrefix(authHeader, "Bearer ")

	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return g.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, apperror.New(apperror.CodeInvalidSession, "token has expired")
		}
		return Identity{}, apperror.New(apperror.CodeInvalidSession, "invalid token")
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return Identity{}, apperror.New(apperror.CodeInvalidSession, "invalid token claims")
	}

	role := model.Role(claims.Role)
	if claims.AccountID == "" || !role.Valid() {
		return Identity{}, apperror.New(apperror.CodeInvalidSession, "invalid token claims")
	}

	return Identity{AccountID: claims.AccountID, Role: role}, nil
}

// Authorize fails with Forbidden unless the identity carries the required role.
func (g *Gate) Authorize(id Identity, required model.Role) error {
	if id.Role != required {
		return apperror.New(apperror.CodeForbidden, "insufficient role")
	}
	return nil
}
