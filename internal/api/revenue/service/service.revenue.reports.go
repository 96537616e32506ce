package revenuesvc

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	revenuedto "github.com/shakibkumnale/souldistribution/internal/api/revenue/dto"
	"github.com/shakibkumnale/souldistribution/internal/common"
	"github.com/shakibkumnale/souldistribution/internal/logger"
)

// ListReports trả về mỗi file báo cáo đã nhập một dòng: số entry, tổng tiền
// và lần upload gần nhất, file mới nhất trước. Cùng tên file upload nhiều lần
// vẫn là một dòng với uploadDate lớn nhất.
func (s *RevenueService) ListReports(ctx context.Context) ([]revenuedto.ReportSummary, error) {
	var results []revenuedto.ReportSummary
	if err := s.Aggregate(ctx, listReportsPipeline(), &results); err != nil {
		return nil, err
	}
	if results == nil {
		results = []revenuedto.ReportSummary{}
	}
	return results, nil
}

// listReportsPipeline gộp revenue_data theo reportFile thành registry các file đã nhập.
func listReportsPipeline() []bson.D {
	return []bson.D{
		{{Key: "$group", Value: bson.M{
			"_id":                "$reportFile",
			"uploadDate":         bson.M{"$max": "$uploadDate"},
			"entriesCount":       bson.M{"$sum": 1},
			"totalNetEarnings":   bson.M{"$sum": "$netEarnings"},
			"totalGrossEarnings": bson.M{"$sum": "$grossEarnings"},
			"totalQuantity":      bson.M{"$sum": "$quantity"},
		}}},
		{{Key: "$sort", Value: bson.M{"uploadDate": -1}}},
	}
}

// DeleteReport xóa toàn bộ entry thuộc một file báo cáo.
// File không tồn tại trong registry trả về ErrReportNotFound.
func (s *RevenueService) DeleteReport(ctx context.Context, filename string) (*revenuedto.DeleteReportResult, error) {
	if filename == "" {
		return nil, common.ErrRequiredField
	}

	filter := bson.M{"reportFile": filename}
	exists, err := s.DocumentExists(ctx, filter)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.ErrReportNotFound
	}

	deleted, err := s.DeleteMany(ctx, filter)
	if err != nil {
		return nil, err
	}

	logger.GetAppLogger().WithFields(logrus.Fields{
		"reportFile": filename,
		"deleted":    deleted,
	}).Info("Đã xóa file báo cáo doanh thu")

	return &revenuedto.DeleteReportResult{DeletedCount: deleted}, nil
}
