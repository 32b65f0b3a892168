package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type Mode string

const (
	ModeNone   Mode = "none"
	ModeAPIKey Mode = "api_key"
	ModeJWT    Mode = "jwt"
)

func ParseAuthMode() (Mode, error) {
	mode := Mode(os.Getenv("AUTH_MODE"))
	switch mode {
	case "":
		return ModeNone, nil
	case ModeNone, ModeAPIKey, ModeJWT:
		return mode, nil
	default:
		return "", errors.New("invalid auth mode")
	}
}

type AuthConfig struct {
	Mode      Mode
	APIKey    string
	JWTSecret []byte
}

// AuthMiddleware guards the admin surface. api_key compares the X-API-Key
// header in constant time; jwt verifies an HS256 bearer token and exposes its
// subject as user_id on the echo context.
func AuthMiddleware(cfg AuthConfig) (echo.MiddlewareFunc, error) {
	switch cfg.Mode {
	case ModeNone, ModeAPIKey, ModeJWT:
	default:
		return nil, errors.New("invalid auth mode")
	}
	if cfg.Mode == ModeAPIKey && cfg.APIKey == "" {
		return nil, errors.New("API_KEY is required when AUTH_MODE=api_key")
	}
	if cfg.Mode == ModeJWT && len(cfg.JWTSecret) == 0 {
		return nil, errors.New("JWT_SECRET is required when AUTH_MODE=jwt")
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch cfg.Mode {
			case ModeNone:
				return next(c)
			case ModeAPIKey:
				given := c.Request().Header.Get("X-API-Key")
				if subtle.ConstantTimeCompare([]byte(given), []byte(cfg.APIKey)) != 1 {
					return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid api key"})
				}
				return next(c)
			case ModeJWT:
				return verifyBearer(c, next, cfg.JWTSecret)
			default:
				return echo.NewHTTPError(http.StatusInternalServerError, "invalid auth mode")
			}
		}
	}, nil
}

func verifyBearer(c echo.Context, next echo.HandlerFunc, secret []byte) error {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing authorization token"})
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
	if tokenString == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid authorization token"})
	}
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "token missing subject"})
	}
	c.Set("user_id", sub)
	return next(c)
}
