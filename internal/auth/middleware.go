package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/hasanarofid/lms-assessment/config"
	"github.com/hasanarofid/lms-assessment/internal/dto"
)

var ErrInvalidToken = errors.New("invalid or expired token")

const identityKey = "auth_user_id"

// Claims carried by the access token. Only the numeric user id is consumed
// here; issuing users and roles is the identity provider's concern.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

type Middleware struct {
	secret []byte
}

func NewMiddleware(cfg *config.Config) *Middleware {
	return &Middleware{secret: []byte(cfg.JWTSecret)}
}

// RequireUser aborts with 401 unless the request carries a valid bearer token,
// and stores the authenticated user id in the gin context.
func (m *Middleware) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Access token required"})
			return
		}
		claims, err := m.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid token"})
			return
		}
		c.Set(identityKey, claims.UserID)
		c.Next()
	}
}

func (m *Middleware) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Sign mints an access token for the given user. Used by the seeder and tests;
// real tokens come from the identity service.
func (m *Middleware) Sign(userID uint, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// UserID extracts the authenticated user id set by RequireUser.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
