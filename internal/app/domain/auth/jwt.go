package auth

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// TokenCookie carries the signed JWT between requests.
	TokenCookie = "auth_token"

	tokenIssuer = "cms-admin"
)

// JWTConfig holds JWT authentication configuration
type JWTConfig struct {
	SecretKey       string
	TokenExpiration time.Duration
	Logger          *zap.Logger
}

// Claims is what the admin shell needs to know about the signed-in user:
// an id to key preferences on and a name for the user menu.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// Tokens issues and parses admin session tokens for one JWTConfig.
type Tokens struct {
	config JWTConfig
	parser *jwt.Parser
}

func NewTokens(config JWTConfig) *Tokens {
	return &Tokens{
		config: config,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(tokenIssuer),
			jwt.WithExpirationRequired(),
		),
	}
}

// Issue signs a token for userID that expires after the configured lifetime.
func (t *Tokens) Issue(userID, username string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(t.config.TokenExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(t.config.SecretKey))
	if err != nil {
		if t.config.Logger != nil {
			t.config.Logger.Error("Failed to sign admin token", zap.String("user_id", userID), zap.Error(err))
		}
		return "", errors.Wrap(err, "sign admin token")
	}
	return signed, nil
}

// Parse validates signature, issuer and expiry and returns the claims.
func (t *Tokens) Parse(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := t.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte(t.config.SecretKey), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse admin token")
	}
	if claims.UserID == "" {
		return nil, errors.New("admin token has no user_id")
	}
	return claims, nil
}

// TokenFromRequest returns the token of the auth cookie, falling back to an
// "Authorization: Bearer" header for API clients.
func TokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(TokenCookie); err == nil && token != "" {
		return token
	}
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
