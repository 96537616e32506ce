package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// loggers map lưu các logger instances theo tên
	loggers   = make(map[string]*logrus.Logger)
	loggersMu sync.Mutex

	// config chứa cấu hình logging
	config *LogConfig

	// rootDir lưu đường dẫn gốc của project
	rootDir string
)

// Init khởi tạo hệ thống logging với cấu hình.
// Nếu cfg là nil, dùng DefaultConfig (tự đọc environment variables).
func Init(cfg *LogConfig) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	config = cfg

	if err := initRootDir(); err != nil {
		return fmt.Errorf("failed to initialize root directory: %w", err)
	}

	// Tạo thư mục logs nếu chưa tồn tại
	logPath := getLogPath()
	if err := os.MkdirAll(logPath, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	return nil
}

// initRootDir khởi tạo rootDir của project
func initRootDir() error {
	if rootDir != "" {
		return nil
	}

	// Ưu tiên environment variable LOG_ROOT_DIR
	if envRootDir := os.Getenv("LOG_ROOT_DIR"); envRootDir != "" {
		if resolvedPath, err := filepath.EvalSymlinks(envRootDir); err == nil {
			rootDir = resolvedPath
			return nil
		}
		rootDir = envRootDir
		return nil
	}

	// Thử lấy từ executable path (2 cấp trên thư mục cmd/server)
	if executable, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(executable); err == nil {
			executable = resolved
		}
		candidate := filepath.Dir(filepath.Dir(filepath.Dir(executable)))
		if _, err := os.Stat(filepath.Join(candidate, "config")); err == nil {
			rootDir = candidate
			return nil
		}
	}

	// Fallback: đi lên từ working directory tìm thư mục config
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("could not get executable or working directory: %v", err)
	}

	currentDir := wd
	for i := 0; i < 5; i++ {
		if _, err := os.Stat(filepath.Join(currentDir, "config")); err == nil {
			rootDir = currentDir
			return nil
		}
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	rootDir = wd
	return nil
}

// getLogPath trả về đường dẫn thư mục logs
func getLogPath() string {
	if filepath.IsAbs(config.LogPath) {
		return config.LogPath
	}
	return filepath.Join(rootDir, config.LogPath)
}

// GetLogger trả về logger theo tên (app, error)
func GetLogger(name string) *logrus.Logger {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	// Nếu chưa init, init với config mặc định
	if config == nil {
		if err := Init(nil); err != nil {
			panic(fmt.Sprintf("Failed to initialize logger: %v", err))
		}
	}

	if logger, ok := loggers[name]; ok {
		return logger
	}

	logger := createLogger(name)
	loggers[name] = logger

	return logger
}

// createLogger tạo một logger mới với cấu hình
func createLogger(name string) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if config.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
				logrus.FieldKeyFunc:  "function",
				logrus.FieldKeyFile:  "file",
			},
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
			CallerPrettyfier: func(f *runtime.Frame) (string, string) {
				s := strings.Split(f.Function, ".")
				funcName := s[len(s)-1]
				return funcName, fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
			},
		})
	}

	// Tách writers: file (có rotation qua lumberjack) và stdout.
	// Ghi qua AsyncHook để file I/O chậm không block request handling.
	var writers []io.Writer

	if config.Output == "file" || config.Output == "both" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   getLogFilePath(name),
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		})
	}

	if config.Output == "stdout" || config.Output == "both" {
		writers = append(writers, os.Stdout)
	}

	if len(writers) > 0 {
		asyncHook := NewAsyncHook(writers, 1000)
		logger.AddHook(asyncHook)
		// Hook xử lý toàn bộ output, discard để tránh ghi trùng
		logger.SetOutput(io.Discard)
	}

	logger.SetReportCaller(true)

	return logger
}

// getLogFilePath trả về đường dẫn file log cho logger name
func getLogFilePath(name string) string {
	logPath := getLogPath()
	var filename string

	switch name {
	case "app":
		filename = config.AppFile
	case "error":
		filename = config.ErrorFile
	default:
		filename = fmt.Sprintf("%s.log", name)
	}

	return filepath.Join(logPath, filename)
}

// GetAppLogger trả về logger chính của ứng dụng
func GetAppLogger() *logrus.Logger {
	return GetLogger("app")
}

// GetErrorLogger trả về logger cho errors
func GetErrorLogger() *logrus.Logger {
	return GetLogger("error")
}
