package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/gl_ledger_service/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Identity headers injected by the API gateway.
const (
	HeaderUserID    = "X-User-ID"
	HeaderCompanyID = "X-Company-ID"
)

// IdentityMiddleware reads the caller's user and company from the gateway headers.
// When jwtSecret is non-empty the bearer token is verified as well and its subject
// must match the X-User-ID header.
func IdentityMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if userID == "" {
			logger.Warn("User header missing")
			abort(c, http.StatusUnauthorized, "UNAUTHORIZED", HeaderUserID+" header required")
			return
		}
		companyID := strings.TrimSpace(c.GetHeader(HeaderCompanyID))
		if companyID == "" {
			logger.Warn("Company header missing", slog.String("user_id", userID))
			abort(c, http.StatusBadRequest, "VALIDATION_ERROR", HeaderCompanyID+" header required")
			return
		}

		if jwtSecret != "" {
			subject, msg := verifyBearer(c.GetHeader("Authorization"), jwtSecret)
			if msg != "" {
				logger.Warn("Bearer verification failed", slog.String("reason", msg))
				abort(c, http.StatusUnauthorized, "UNAUTHORIZED", msg)
				return
			}
			if subject != userID {
				logger.Warn("Token subject does not match user header", slog.String("user_id", userID))
				abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token subject does not match "+HeaderUserID)
				return
			}
		}

		enrichedLogger := logger.With(slog.String("user_id", userID), slog.String("company_id", companyID))
		ctx := WithIdentity(c.Request.Context(), userID, companyID)
		c.Request = c.Request.WithContext(WithLogger(ctx, enrichedLogger))
		c.Set(string(userIDKey), userID)
		c.Set(string(companyIDKey), companyID)

		c.Next()
	}
}

// verifyBearer returns the token subject, or a caller-facing message describing why it was rejected.
func verifyBearer(authHeader, jwtSecret string) (string, string) {
	if authHeader == "" {
		return "", "Authorization header required"
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", "Authorization header format must be Bearer {token}"
	}

	token, err := jwt.ParseWithClaims(parts[1], &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", "Token has expired"
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return "", "Token not valid yet"
		}
		return "", "Invalid token"
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", "Invalid token claims"
	}
	return claims.Subject, ""
}

func abort(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: msg, Code: code})
}
