package main

import (
	"crypto/tls"
	"fmt"
	"net"
	"os"

	"github.com/gofiber/fiber/v3"

	"github.com/shakibkumnale/souldistribution/internal/global"
	"github.com/shakibkumnale/souldistribution/internal/logger"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables để cấu hình chi tiết
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// mainThread khởi tạo và chạy Fiber server
func mainThread() {
	app, err := InitFiberApp()
	if err != nil {
		logger.GetAppLogger().Fatalf("Failed to initialize Fiber app: %v", err)
	}

	cfg := global.ServerConfig
	address := cfg.Address
	log := logger.GetAppLogger()

	if cfg.EnableTLS && cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		if _, err := os.Stat(cfg.TLSCertFile); os.IsNotExist(err) {
			log.Fatalf("TLS certificate file not found: %s", cfg.TLSCertFile)
		}
		if _, err := os.Stat(cfg.TLSKeyFile); os.IsNotExist(err) {
			log.Fatalf("TLS key file not found: %s", cfg.TLSKeyFile)
		}

		cert, err := tls.LoadX509KeyPair(cfg.TLSCertFile, cfg.TLSKeyFile)
		if err != nil {
			log.Fatalf("Error loading TLS certificate: %v", err)
		}

		ln, err := net.Listen("tcp", address)
		if err != nil {
			log.Fatalf("Error creating listener: %v", err)
		}

		tlsConfig := &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}
		tlsListener := tls.NewListener(ln, tlsConfig)

		log.WithFields(map[string]interface{}{
			"address": address,
			"cert":    cfg.TLSCertFile,
		}).Info("Starting server with HTTPS/TLS")

		if err := app.Listener(tlsListener); err != nil {
			log.Fatalf("Error in Fiber Listener with TLS: %v", err)
		}
	} else {
		log.WithFields(map[string]interface{}{
			"address":  address,
			"protocol": "HTTP",
		}).Info("Starting server with HTTP")

		if err := app.Listen(address, fiber.ListenConfig{}); err != nil {
			log.Fatalf("Error in Fiber Listen: %v", err)
		}
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục: collection names, validator, config, database
	InitGlobal()

	// Đăng ký collections và tạo index
	InitRegistry()

	// Chạy Fiber server
	mainThread()
}
