// Package models - RevenueEntry thuộc domain revenue (revenue_data).
// Mỗi document là một dòng trong file báo cáo doanh thu đã upload.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RevenueEntry lưu một dòng doanh thu đã chuẩn hóa (revenue_data).
// Document bất biến sau khi tạo: chỉ bị xóa hàng loạt khi xóa cả file báo cáo (cascade theo reportFile).
// Các trường thời gian lưu Unix millis.
type RevenueEntry struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// Liên kết catalog: releaseId được matcher gán khi ISRC khớp, có thể vắng
	ReleaseID primitive.ObjectID `json:"releaseId,omitempty" bson:"releaseId,omitempty" index:"single:1,sparse"`
	ISRC      string             `json:"isrc,omitempty" bson:"isrc,omitempty" index:"single:1,compound:revenue_isrc_payment"`

	// Chi tiết thanh toán / kỳ báo cáo
	PaymentDate          int64 `json:"paymentDate" bson:"paymentDate" index:"single:1,compound:revenue_isrc_payment"`
	ReportingPeriodStart int64 `json:"reportingPeriodStart" bson:"reportingPeriodStart"`
	ReportingPeriodEnd   int64 `json:"reportingPeriodEnd" bson:"reportingPeriodEnd"`

	// Chi tiết cửa hàng
	Store        string `json:"store" bson:"store" index:"compound:revenue_store_country"`
	StoreService string `json:"storeService,omitempty" bson:"storeService,omitempty"`
	Country      string `json:"country,omitempty" bson:"country,omitempty" index:"compound:revenue_store_country"`

	// Chi tiết track (chỉ để hiển thị)
	Album string `json:"album,omitempty" bson:"album,omitempty"`
	UPC   string `json:"upc,omitempty" bson:"upc,omitempty"`
	Track string `json:"track,omitempty" bson:"track,omitempty"`

	// Số liệu doanh thu
	Quantity        int64   `json:"quantity" bson:"quantity"`
	GrossEarnings   float64 `json:"grossEarnings" bson:"grossEarnings"`
	NetEarnings     float64 `json:"netEarnings" bson:"netEarnings"`
	SharePercentage float64 `json:"sharePercentage" bson:"sharePercentage"`

	// Metadata
	ReportFile string `json:"reportFile" bson:"reportFile" index:"single:1"`
	UploadDate int64  `json:"uploadDate" bson:"uploadDate"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
