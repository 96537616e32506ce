package middleware

import (
	"strings"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"github.com/shakibkumnale/souldistribution/internal/common"
	"github.com/shakibkumnale/souldistribution/internal/global"
	"github.com/shakibkumnale/souldistribution/internal/logger"
)

// TokenClaims chứa các claim trong JWT token của khu vực admin
type TokenClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.StandardClaims
}

// AuthMiddleware middleware xác thực JWT cho Fiber.
// Token được truyền qua header Authorization dạng "Bearer <token>".
// Sau khi xác thực thành công, user_id và user_email được lưu vào Locals.
func AuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		tokenStr := parts[1]

		// Parse và verify token với secret từ config
		claims := &TokenClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, common.ErrTokenInvalid
			}
			return []byte(global.ServerConfig.JwtSecret), nil
		})
		if err != nil {
			if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
				HandleErrorResponse(c, common.ErrTokenExpired)
				return nil
			}
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Token verification failed")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}
		if !token.Valid {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", claims.UserID)
		c.Locals("user_email", claims.Email)

		return c.Next()
	}
}
