package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng:
// địa chỉ server, kết nối MongoDB, CORS, rate limit, JWT.
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:":8080"`                // Địa chỉ server
	JwtSecret             string `env:"JWT_SECRET,required"`                       // Bí mật JWT cho khu vực admin
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // Tên cơ sở dữ liệu
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting
	UploadBodyLimitMB     int    `env:"UPLOAD_BODY_LIMIT_MB" envDefault:"10"`      // Giới hạn body upload CSV (MB)
	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Bật HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Đường dẫn file certificate (.crt hoặc .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Đường dẫn file private key (.key)
}

// getEnvPath trả về đường dẫn file env theo môi trường (GO_ENV, mặc định development)
func getEnvPath() string {
	envName := os.Getenv("GO_ENV")
	if envName == "" {
		envName = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Dùng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Đi lên từ thư mục hiện tại tìm config/env
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", envName))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc cấu hình từ file env và environment variables
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			// File env không bắt buộc; environment variables vẫn được đọc bên dưới
			fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Không thể parse cấu hình từ environment: %v\n", err)
		return nil
	}

	return &cfg
}
