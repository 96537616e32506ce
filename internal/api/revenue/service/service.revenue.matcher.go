package revenuesvc

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	revenuedto "github.com/shakibkumnale/souldistribution/internal/api/revenue/dto"
	revenuemodels "github.com/shakibkumnale/souldistribution/internal/api/revenue/models"
	"github.com/shakibkumnale/souldistribution/internal/logger"
	"github.com/shakibkumnale/souldistribution/internal/utility"
)

// MatchEntries gắn ReleaseID cho các entry theo ISRC bằng một query duy nhất cho cả lô.
// Entry không khớp catalog vẫn được giữ nguyên (ReleaseID rỗng) để không mất dữ liệu doanh thu,
// có thể link lại sau khi release được tạo.
func (s *RevenueService) MatchEntries(ctx context.Context, entries []revenuemodels.RevenueEntry) error {
	isrcs := make([]string, 0, len(entries))
	for _, e := range entries {
		isrcs = append(isrcs, e.ISRC)
	}

	// Catalog lỗi không được chặn việc ghi doanh thu: giữ entry không link,
	// link lại sau khi catalog phục hồi.
	releaseMap, err := s.catalog.IsrcReleaseMap(ctx, utility.UniqueStrings(isrcs))
	if err != nil {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"total": len(entries),
			"error": err.Error(),
		}).Warn("Không truy vấn được catalog khi khớp ISRC, giữ các entry không link")
		return nil
	}

	unmatched := 0
	for i := range entries {
		if id, ok := releaseMap[entries[i].ISRC]; ok {
			entries[i].ReleaseID = id
		} else {
			unmatched++
		}
	}

	if unmatched > 0 {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"unmatched": unmatched,
			"total":     len(entries),
		}).Warn("Một số dòng doanh thu không khớp ISRC nào trong catalog")
	}

	return nil
}

// ProcessUpload chạy trọn pipeline nhập một file báo cáo: chuẩn hóa CSV,
// khớp ISRC với catalog rồi ghi hàng loạt vào revenue_data.
func (s *RevenueService) ProcessUpload(ctx context.Context, r io.Reader, reportFile string) (*revenuedto.UploadResult, error) {
	uploadDate := time.Now().UnixMilli()

	entries, skipped, err := NormalizeReport(r, reportFile, uploadDate)
	if err != nil {
		return nil, err
	}

	if len(entries) > 0 {
		if err := s.MatchEntries(ctx, entries); err != nil {
			return nil, err
		}
		if _, err := s.InsertMany(ctx, entries); err != nil {
			return nil, err
		}
	}

	logger.GetAppLogger().WithFields(logrus.Fields{
		"reportFile": reportFile,
		"inserted":   len(entries),
		"skipped":    skipped,
	}).Info("Đã nhập file báo cáo doanh thu")

	return &revenuedto.UploadResult{
		InsertedCount:   len(entries),
		SkippedRowCount: skipped,
		ReportFile:      reportFile,
	}, nil
}
