// Package database - Index cho dữ liệu doanh thu và catalog.
// Các index compound theo truy vấn của aggregation engine, không định nghĩa được qua model tags.
package database

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shakibkumnale/souldistribution/internal/global"
)

// CreateRevenueIndexes tạo các index cho collection revenue_data.
// Gọi một lần khi khởi động server, sau khi đăng ký collections.
func CreateRevenueIndexes(ctx context.Context, db *mongo.Database) error {
	revenueData := db.Collection(global.MongoDB_ColNames.RevenueData)

	// (isrc, paymentDate): filter theo track + khoảng ngày thanh toán
	if _, err := revenueData.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "isrc", Value: 1},
			{Key: "paymentDate", Value: 1},
		},
		Options: options.Index().SetName("revenue_isrc_payment_date"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// (store, country): group theo store/country cho top-N
	if _, err := revenueData.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "store", Value: 1},
			{Key: "country", Value: 1},
		},
		Options: options.Index().SetName("revenue_store_country"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// (reportingPeriodStart, reportingPeriodEnd): truy vấn theo kỳ báo cáo
	if _, err := revenueData.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "reportingPeriodStart", Value: 1},
			{Key: "reportingPeriodEnd", Value: 1},
		},
		Options: options.Index().SetName("revenue_reporting_period"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// reportFile: group của report registry và cascade delete theo file
	if _, err := revenueData.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "reportFile", Value: 1}},
		Options: options.Index().SetName("revenue_report_file"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// releaseId sparse: enrichment và filter theo release
	if _, err := revenueData.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "releaseId", Value: 1}},
		Options: options.Index().SetName("revenue_release_id").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

// CreateCatalogIndexes tạo index cho artists/releases.
func CreateCatalogIndexes(ctx context.Context, db *mongo.Database) error {
	releases := db.Collection(global.MongoDB_ColNames.Releases)

	// isrc sparse unique: join key với revenue_data
	if _, err := releases.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "isrc", Value: 1}},
		Options: options.Index().SetName("release_isrc").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// slug unique: lookup theo slug của trang public
	if _, err := releases.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetName("release_slug").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// artists multikey: lookup releases theo nghệ sĩ
	if _, err := releases.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "artists", Value: 1}},
		Options: options.Index().SetName("release_artists"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	artists := db.Collection(global.MongoDB_ColNames.Artists)
	if _, err := artists.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetName("artist_slug").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
