package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shakibkumnale/souldistribution/config"
	"github.com/shakibkumnale/souldistribution/internal/database"
	"github.com/shakibkumnale/souldistribution/internal/global"
)

// InitRegistry đăng ký các collection vào registry dùng chung và tạo index.
// Phải chạy sau InitGlobal: cần session database và tên collection đã khởi tạo.
func InitRegistry() {
	if err := initCollections(global.MongoDB_Session, global.ServerConfig); err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")

	db := global.MongoDB_Session.Database(global.ServerConfig.MongoDB_DBName)
	ctx := context.Background()
	if err := database.CreateCatalogIndexes(ctx, db); err != nil {
		logrus.Fatalf("Failed to create catalog indexes: %v", err)
	}
	if err := database.CreateRevenueIndexes(ctx, db); err != nil {
		logrus.Fatalf("Failed to create revenue indexes: %v", err)
	}
	logrus.Info("Ensured database indexes")
}

// initCollections đăng ký các collection MongoDB vào registry
func initCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)
	colNames := []string{
		global.MongoDB_ColNames.Artists,
		global.MongoDB_ColNames.Releases,
		global.MongoDB_ColNames.RevenueData,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}
	}

	return nil
}
