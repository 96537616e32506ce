package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shakibkumnale/souldistribution/config"
	"github.com/shakibkumnale/souldistribution/internal/registry"
)

// CollectionNames chứa tên các collection trong MongoDB
type CollectionNames struct {
	Artists     string // Tên collection cho nghệ sĩ
	Releases    string // Tên collection cho bản phát hành (track/release)
	RevenueData string // Tên collection cho dữ liệu doanh thu (một dòng CSV = một document)
}

// Các biến toàn cục
var Validate *validator.Validate         // Validator dùng chung cho DTO
var MongoDB_Session *mongo.Client        // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration   // Cấu hình của server
var MongoDB_ColNames = CollectionNames{} // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
