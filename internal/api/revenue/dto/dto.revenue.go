// Package dto - DTO cho domain revenue.
package dto

import (
	catalogmodels "github.com/shakibkumnale/souldistribution/internal/api/catalog/models"
	catalogsvc "github.com/shakibkumnale/souldistribution/internal/api/catalog/service"
	revenuemodels "github.com/shakibkumnale/souldistribution/internal/api/revenue/models"
)

// UploadResult kết quả xử lý một file báo cáo doanh thu.
// Bất biến: InsertedCount + SkippedRowCount == tổng số dòng dữ liệu trong file.
type UploadResult struct {
	InsertedCount   int    `json:"insertedCount"`
	SkippedRowCount int    `json:"skippedRowCount"`
	ReportFile      string `json:"reportFile"`
}

// AnalyticsQuery bộ lọc cho truy vấn doanh thu, nhận từ query string.
type AnalyticsQuery struct {
	Release string `json:"release,omitempty"` // ObjectID hex của bản phát hành
	Artist  string `json:"artist,omitempty"`  // ObjectID hex của nghệ sĩ
	Store   string `json:"store,omitempty"`
	Country string `json:"country,omitempty"`
	From    string `json:"from,omitempty"`  // Ngày YYYY-MM-DD, bao gồm cả biên
	To      string `json:"to,omitempty"`    // Ngày YYYY-MM-DD, bao gồm cả biên
	Track   string `json:"track,omitempty"` // ObjectID hex, slug hoặc ISRC
	Limit   int64  `json:"limit,omitempty"` // Mặc định 100
}

// RevenueSummary tổng doanh thu trên tập đã lọc.
// Tập rỗng trả về object toàn số 0, không bao giờ null.
type RevenueSummary struct {
	TotalGrossEarnings float64 `json:"totalGrossEarnings" bson:"totalGrossEarnings"`
	TotalNetEarnings   float64 `json:"totalNetEarnings" bson:"totalNetEarnings"`
	TotalQuantity      int64   `json:"totalQuantity" bson:"totalQuantity"`
}

// DimensionTotal tổng doanh thu theo một chiều (store hoặc country).
type DimensionTotal struct {
	Name        string  `json:"name" bson:"_id"`
	NetEarnings float64 `json:"netEarnings" bson:"netEarnings"`
	Quantity    int64   `json:"quantity" bson:"quantity"`
}

// ReleaseInfo thông tin hiển thị của bản phát hành gắn vào mỗi entry.
// Entry không resolve được catalog nhận placeholder {title: track|'Unknown Track', slug:'', coverImage:'', artists:[]}.
type ReleaseInfo struct {
	Title      string                    `json:"title"`
	Slug       string                    `json:"slug"`
	CoverImage string                    `json:"coverImage"`
	Artists    []catalogmodels.ArtistRef `json:"artists"`
}

// EnrichedEntry là RevenueEntry kèm thông tin catalog đã resolve.
type EnrichedEntry struct {
	revenuemodels.RevenueEntry

	Release ReleaseInfo `json:"release"`
}

// AnalyticsResponse là response đầy đủ của GET /revenue/analytics.
type AnalyticsResponse struct {
	Revenue        []EnrichedEntry                 `json:"revenue"`
	Summary        RevenueSummary                  `json:"summary"`
	TopStores      []DimensionTotal                `json:"topStores"`
	TopCountries   []DimensionTotal                `json:"topCountries"`
	RecentPayments []string                        `json:"recentPayments"`
	Artists        []catalogsvc.ArtistWithReleases `json:"artists"`
	CurrentArtist  *catalogmodels.Artist           `json:"currentArtist"`
}

// RollupEntryRef một dòng doanh thu gốc nằm trong breakdown theo quốc gia của rollup.
type RollupEntryRef struct {
	PaymentDate  int64   `json:"paymentDate"`
	Store        string  `json:"store"`
	StoreService string  `json:"storeService"`
	Quantity     int64   `json:"quantity"`
	NetEarnings  float64 `json:"netEarnings"`
	ReportFile   string  `json:"reportFile"`
}

// CountryBreakdown doanh thu gộp theo quốc gia, kèm các dòng gốc.
type CountryBreakdown struct {
	Name        string           `json:"name"`
	Quantity    int64            `json:"quantity"`
	NetEarnings float64          `json:"netEarnings"`
	Entries     []RollupEntryRef `json:"entries"`
}

// StoreBreakdown doanh thu gộp theo store, bên trong chia tiếp theo quốc gia.
type StoreBreakdown struct {
	Name        string             `json:"name"`
	Quantity    int64              `json:"quantity"`
	NetEarnings float64            `json:"netEarnings"`
	Countries   []CountryBreakdown `json:"countries"`
}

// TrackRollup doanh thu của một track gộp trên toàn bộ tập đã lọc.
// TrackID lấy ISRC khi có, không thì tên track chữ thường, cuối cùng là "unknown".
type TrackRollup struct {
	TrackID            string             `json:"trackId"`
	Title              string             `json:"title"`
	ISRC               string             `json:"isrc"`
	TotalQuantity      int64              `json:"totalQuantity"`
	TotalGrossEarnings float64            `json:"totalGrossEarnings"`
	TotalNetEarnings   float64            `json:"totalNetEarnings"`
	AveragePerUnit     float64            `json:"averagePerUnit"`
	LatestPaymentDate  int64              `json:"latestPaymentDate"`
	LatestReportDate   int64              `json:"latestReportDate"`
	Stores             []StoreBreakdown   `json:"stores"`
	Countries          []CountryBreakdown `json:"countries"`
}

// ReportSummary một file báo cáo trong registry (GET /revenue/reports).
type ReportSummary struct {
	Filename           string  `json:"filename" bson:"_id"`
	UploadDate         int64   `json:"uploadDate" bson:"uploadDate"`
	EntriesCount       int64   `json:"entriesCount" bson:"entriesCount"`
	TotalNetEarnings   float64 `json:"totalNetEarnings" bson:"totalNetEarnings"`
	TotalGrossEarnings float64 `json:"totalGrossEarnings" bson:"totalGrossEarnings"`
	TotalQuantity      int64   `json:"totalQuantity" bson:"totalQuantity"`
}

// DeleteReportResult kết quả xóa một file báo cáo.
type DeleteReportResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
