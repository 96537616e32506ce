package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shakibkumnale/souldistribution/config"
	"github.com/shakibkumnale/souldistribution/internal/logger"
)

// GetInstance khởi tạo và trả về *mongo.Client từ connection URI trong cấu hình.
// Kết nối được ping thử trước khi trả về.
func GetInstance(c *config.Configuration) (*mongo.Client, error) {
	if c.MongoDB_ConnectionURI == "" {
		return nil, fmt.Errorf("database connection URL is empty")
	}

	// Cài đặt các options cho client
	clientOptions := options.Client().ApplyURI(c.MongoDB_ConnectionURI).
		SetMaxPoolSize(50).                 // Giới hạn tối đa 50 connections
		SetMinPoolSize(10).                 // Giữ tối thiểu 10 connections trong pool
		SetConnectTimeout(5 * time.Second). // Timeout khi kết nối
		SetSocketTimeout(10 * time.Second)  // Timeout khi gửi nhận dữ liệu

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Kiểm tra kết nối
	ctxPing, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancelPing()

	if err := client.Ping(ctxPing, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.GetAppLogger().Info("Successfully connected to MongoDB")
	return client, nil
}

// CloseInstance đóng kết nối MongoDB client
func CloseInstance(client *mongo.Client) error {
	if err := client.Disconnect(context.TODO()); err != nil {
		logger.GetAppLogger().WithError(err).Error("Failed to disconnect MongoDB client")
		return err
	}
	logger.GetAppLogger().Info("Successfully disconnected from MongoDB")
	return nil
}
