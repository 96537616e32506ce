// Package catalogsvc - Service tổng hợp số liệu dashboard quản trị.
package catalogsvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	catalogmodels "github.com/shakibkumnale/souldistribution/internal/api/catalog/models"
	"github.com/shakibkumnale/souldistribution/internal/logger"
)

// PlanCounts đếm số nghệ sĩ active theo từng loại gói.
type PlanCounts struct {
	Basic   int64 `json:"basic"`
	Pro     int64 `json:"pro"`
	Premium int64 `json:"premium"`
	Aoc     int64 `json:"aoc"`
}

// DashboardStats là số liệu tổng quan cho trang quản trị.
type DashboardStats struct {
	TotalArtists   int64                  `json:"totalArtists"`
	TotalReleases  int64                  `json:"totalReleases"`
	PlanCounts     PlanCounts             `json:"planCounts"`
	PopularArtists []catalogmodels.Artist `json:"popularArtists"`
}

// DashboardService tổng hợp số liệu từ catalog.
type DashboardService struct {
	artistSvc  *ArtistService
	releaseSvc *ReleaseService
}

// NewDashboardService tạo DashboardService mới.
func NewDashboardService() (*DashboardService, error) {
	artistSvc, err := NewArtistService()
	if err != nil {
		return nil, fmt.Errorf("tạo ArtistService: %w", err)
	}
	releaseSvc, err := NewReleaseService()
	if err != nil {
		return nil, fmt.Errorf("tạo ReleaseService: %w", err)
	}
	return &DashboardService{
		artistSvc:  artistSvc,
		releaseSvc: releaseSvc,
	}, nil
}

// GetStats trả về số liệu tổng quan.
// Các bước đếm độc lập với nhau: lỗi của một bước không làm hỏng cả response,
// chỉ log warning và giữ giá trị 0 cho bước đó.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{
		PopularArtists: []catalogmodels.Artist{},
	}
	log := logger.GetAppLogger()

	if count, err := s.artistSvc.CountDocuments(ctx, bson.M{}); err == nil {
		stats.TotalArtists = count
	} else {
		log.WithFields(logrus.Fields{"error": err.Error()}).Warn("Đếm nghệ sĩ thất bại")
	}

	if count, err := s.releaseSvc.CountDocuments(ctx, bson.M{}); err == nil {
		stats.TotalReleases = count
	} else {
		log.WithFields(logrus.Fields{"error": err.Error()}).Warn("Đếm bản phát hành thất bại")
	}

	planTargets := []struct {
		planType string
		dest     *int64
	}{
		{"basic", &stats.PlanCounts.Basic},
		{"pro", &stats.PlanCounts.Pro},
		{"premium", &stats.PlanCounts.Premium},
		{"aoc", &stats.PlanCounts.Aoc},
	}
	for _, target := range planTargets {
		count, err := s.artistSvc.CountByPlanType(ctx, target.planType)
		if err != nil {
			log.WithFields(logrus.Fields{"planType": target.planType, "error": err.Error()}).Warn("Đếm gói phân phối thất bại")
			continue
		}
		*target.dest = count
	}

	if artists, err := s.artistSvc.FindPopular(ctx, 10); err == nil {
		stats.PopularArtists = artists
	} else {
		log.WithFields(logrus.Fields{"error": err.Error()}).Warn("Lấy nghệ sĩ nổi bật thất bại")
	}

	return stats, nil
}
