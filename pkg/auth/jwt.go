package auth

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// UsernameKey is where the verified identity lands on the gin context.
const UsernameKey = "x-username"

const tokenTTL = 3 * time.Hour

type JWT struct {
	Secret string
}

func NewJWT(secret string) *JWT {
	return &JWT{Secret: secret}
}

// IssueToken mints a signed, time-bounded bearer token carrying the
// username claim.
func (j *JWT) IssueToken(username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": username,
		"jti": uuid.NewString(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(tokenTTL).Unix(),
	})

	return token.SignedString([]byte(j.Secret))
}

// VerifyToken checks signature and expiry and returns the username claim.
func (j *JWT) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(j.Secret), nil
	})

	if err != nil {
		slog.Warn("Error verifying token", "error", err)
		return "", err
	}

	if !token.Valid {
		return "", fmt.Errorf("invalid access token")
	}

	claims := token.Claims.(jwt.MapClaims)

	username, err := claims.GetSubject()

	if err != nil || username == "" {
		return "", fmt.Errorf("token carries no subject")
	}

	return username, nil
}

// Middleware rejects requests without a valid bearer token and exposes
// the verified username to downstream handlers.
func (j *JWT) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		bearer := c.GetHeader("Authorization")

		if bearer == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"errors": []string{"Unauthorized request"},
			})

			c.Abort()
			return
		}

		if !strings.HasPrefix(bearer, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{
				"errors": []string{"Invalid authorization format"},
			})

			c.Abort()
			return
		}

		username, err := j.VerifyToken(bearer[len("Bearer "):])

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"errors": []string{"Unauthorized request"},
			})

			c.Abort()
			return
		}

		c.Set(UsernameKey, username)
		c.Next()
	}
}
