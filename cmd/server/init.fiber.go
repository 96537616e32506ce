package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	catalogrouter "github.com/shakibkumnale/souldistribution/internal/api/catalog/router"
	revenuerouter "github.com/shakibkumnale/souldistribution/internal/api/revenue/router"
	apirouter "github.com/shakibkumnale/souldistribution/internal/api/router"
	"github.com/shakibkumnale/souldistribution/internal/common"
	"github.com/shakibkumnale/souldistribution/internal/global"
	"github.com/shakibkumnale/souldistribution/internal/logger"
)

// InitFiberApp khởi tạo ứng dụng Fiber với các middleware cần thiết
func InitFiberApp() (*fiber.App, error) {
	cfg := global.ServerConfig

	app := fiber.New(fiber.Config{
		AppName:       "Soul Distribution API",
		ServerHeader:  "Soul Distribution API",
		StrictRouting: true, // /foo và /foo/ là khác nhau
		CaseSensitive: true, // /Foo và /foo là khác nhau
		UnescapePath:  true, // Tự động decode URL-encoded paths, cần cho tên file báo cáo trong path

		// File CSV báo cáo quý có thể lớn, giới hạn theo cấu hình
		BodyLimit: cfg.UploadBodyLimitMB * 1024 * 1024,

		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,

		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"
			errorCode := common.ErrCodeInternalServer.Code

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
				switch code {
				case fiber.StatusBadRequest:
					errorCode = common.ErrCodeValidationInput.Code
				case fiber.StatusUnauthorized:
					errorCode = common.ErrCodeAuthToken.Code
				case fiber.StatusNotFound, fiber.StatusConflict:
					errorCode = common.ErrCodeDatabaseQuery.Code
				}
			}

			logger.WithRequest(c).WithFields(map[string]interface{}{
				"code":      code,
				"errorCode": errorCode,
				"message":   message,
			}).Error("Request error")

			return c.Status(code).JSON(fiber.Map{
				"code":    errorCode,
				"message": message,
				"status":  "error",
			})
		},
	})

	// Request ID để trace request qua log
	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return fmt.Sprintf("%d", time.Now().UnixNano())
		},
	}))

	// CORS đặt trước các middleware khác để xử lý preflight
	corsOrigins := cfg.CORS_Origins
	var allowOrigins []string
	if corsOrigins == "*" {
		allowOrigins = []string{"*"}
	} else {
		allowOrigins = strings.Split(corsOrigins, ",")
		for i, origin := range allowOrigins {
			allowOrigins[i] = strings.TrimSpace(origin)
		}
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Request-ID",
			"X-Requested-With",
		},
		AllowCredentials: cfg.CORS_AllowCredentials,
		ExposeHeaders:    []string{"Content-Length", "Content-Range", "X-Request-ID"},
		MaxAge:           24 * 60 * 60,
	}))

	// Security headers
	app.Use(func(c fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		return c.Next()
	})

	// Rate limiting theo IP
	if cfg.RateLimit_Enabled && cfg.RateLimit_Max > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit_Max,
			Expiration: time.Duration(cfg.RateLimit_Window) * time.Second,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"code":    common.ErrCodeBusinessState.Code,
					"message": "Quá nhiều yêu cầu, vui lòng thử lại sau",
					"status":  "error",
				})
			},
			Next: func(c fiber.Ctx) bool {
				// Health check và preflight không tính vào rate limit
				return c.Path() == "/health" || c.Method() == "OPTIONS"
			},
		}))
		logger.GetAppLogger().Infof("Rate limiting enabled: %d requests per %d seconds", cfg.RateLimit_Max, cfg.RateLimit_Window)
	} else {
		logger.GetAppLogger().Info("Rate limiting disabled")
	}

	// Recover để panic không kéo sập server
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.WithRequest(c).WithFields(map[string]interface{}{
				"panic": e,
			}).Error("Panic recovered")
		},
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))

	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	if err := apirouter.SetupRoutes(app, catalogrouter.Register, revenuerouter.Register); err != nil {
		return nil, fmt.Errorf("thiết lập routes: %w", err)
	}

	return app, nil
}
