package main

import (
	"github.com/sirupsen/logrus"

	"github.com/shakibkumnale/souldistribution/config"
	"github.com/shakibkumnale/souldistribution/internal/database"
	"github.com/shakibkumnale/souldistribution/internal/global"
)

// InitGlobal khởi tạo các biến toàn cục theo đúng thứ tự phụ thuộc
func InitGlobal() {
	initColNames()         // Tên các collection trong database
	initValidator()        // Validator với các custom rule
	initConfig()           // Cấu hình server từ env
	initDatabase_MongoDB() // Kết nối database
}

// initColNames khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Artists = "artists"
	global.MongoDB_ColNames.Releases = "releases"
	global.MongoDB_ColNames.RevenueData = "revenue_data"

	logrus.Info("Initialized collection names")
}

// initValidator đăng ký các custom validator (no_xss, isrc, slug)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// initConfig khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// initDatabase_MongoDB khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")
}
