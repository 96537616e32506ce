package revenuesvc

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	catalogmodels "github.com/shakibkumnale/souldistribution/internal/api/catalog/models"
	catalogsvc "github.com/shakibkumnale/souldistribution/internal/api/catalog/service"
	revenuedto "github.com/shakibkumnale/souldistribution/internal/api/revenue/dto"
	revenuemodels "github.com/shakibkumnale/souldistribution/internal/api/revenue/models"
	"github.com/shakibkumnale/souldistribution/internal/common"
)

// defaultEntryLimit giới hạn số entry trả về khi query không chỉ định limit.
const defaultEntryLimit = 100

// topDimensionLimit số store/country nhiều doanh thu nhất được trả về.
const topDimensionLimit = 10

// GetAnalytics trả về trang analytics đầy đủ: entries đã enrich, tổng, top store/country,
// các ngày thanh toán gần nhất và roster nghệ sĩ.
func (s *RevenueService) GetAnalytics(ctx context.Context, q revenuedto.AnalyticsQuery) (*revenuedto.AnalyticsResponse, error) {
	ef, err := s.buildEntryFilter(ctx, q)
	if err != nil {
		return nil, err
	}

	response := &revenuedto.AnalyticsResponse{
		Revenue:        []revenuedto.EnrichedEntry{},
		TopStores:      []revenuedto.DimensionTotal{},
		TopCountries:   []revenuedto.DimensionTotal{},
		RecentPayments: []string{},
	}

	if !ef.empty {
		entries, err := s.findEntries(ctx, ef.filter, q.Limit)
		if err != nil {
			return nil, err
		}

		response.Revenue, err = s.enrichEntries(ctx, entries)
		if err != nil {
			return nil, err
		}

		response.Summary, err = s.summarize(ctx, ef.filter)
		if err != nil {
			return nil, err
		}

		response.TopStores, err = s.topByDimension(ctx, ef.filter, "store")
		if err != nil {
			return nil, err
		}

		response.TopCountries, err = s.topByDimension(ctx, ef.filter, "country")
		if err != nil {
			return nil, err
		}
	}

	// Danh sách ngày thanh toán luôn tính trên toàn bộ dữ liệu, không theo bộ lọc,
	// để dropdown chọn kỳ không bị thu hẹp theo chính nó
	response.RecentPayments, err = s.RecentPaymentDates(ctx)
	if err != nil {
		return nil, err
	}

	response.Artists, err = s.catalog.ArtistsWithReleases(ctx)
	if err != nil {
		return nil, err
	}
	if response.Artists == nil {
		response.Artists = []catalogsvc.ArtistWithReleases{}
	}

	if !ef.artistID.IsZero() {
		artist, err := s.catalog.ArtistByID(ctx, ef.artistID)
		if err != nil {
			if !errors.Is(err, common.ErrNotFound) {
				return nil, err
			}
		} else {
			response.CurrentArtist = &artist
		}
	}

	return response, nil
}

// findEntries lấy các entry theo bộ lọc, mới nhất trước.
func (s *RevenueService) findEntries(ctx context.Context, filter bson.M, limit int64) ([]revenuemodels.RevenueEntry, error) {
	return s.Find(ctx, filter, entryPageOptions(limit))
}

// entryPageOptions dựng option chung cho một trang entries: mới nhất trước,
// luôn có limit để chi phí query không phụ thuộc tổng số dòng.
func entryPageOptions(limit int64) *mongoopts.FindOptions {
	if limit <= 0 {
		limit = defaultEntryLimit
	}
	return mongoopts.Find().
		SetSort(bson.D{{Key: "paymentDate", Value: -1}}).
		SetLimit(limit)
}

// summarize tính tổng gross/net/quantity trên tập đã lọc.
// Tập rỗng trả về struct toàn 0.
func (s *RevenueService) summarize(ctx context.Context, filter bson.M) (revenuedto.RevenueSummary, error) {
	pipeline := []bson.D{
		{{Key: "$match", Value: filter}},
		{{Key: "$group", Value: bson.M{
			"_id":                nil,
			"totalGrossEarnings": bson.M{"$sum": "$grossEarnings"},
			"totalNetEarnings":   bson.M{"$sum": "$netEarnings"},
			"totalQuantity":      bson.M{"$sum": "$quantity"},
		}}},
	}

	var results []revenuedto.RevenueSummary
	if err := s.Aggregate(ctx, pipeline, &results); err != nil {
		return revenuedto.RevenueSummary{}, err
	}
	if len(results) == 0 {
		return revenuedto.RevenueSummary{}, nil
	}
	return results[0], nil
}

// topByDimension gộp doanh thu theo một field (store hoặc country),
// xếp theo netEarnings giảm dần, tối đa 10 dòng.
func (s *RevenueService) topByDimension(ctx context.Context, filter bson.M, field string) ([]revenuedto.DimensionTotal, error) {
	pipeline := []bson.D{
		{{Key: "$match", Value: filter}},
		{{Key: "$group", Value: bson.M{
			"_id":         "$" + field,
			"netEarnings": bson.M{"$sum": "$netEarnings"},
			"quantity":    bson.M{"$sum": "$quantity"},
		}}},
		{{Key: "$sort", Value: bson.M{"netEarnings": -1}}},
		{{Key: "$limit", Value: topDimensionLimit}},
	}

	var results []revenuedto.DimensionTotal
	if err := s.Aggregate(ctx, pipeline, &results); err != nil {
		return nil, err
	}
	if results == nil {
		results = []revenuedto.DimensionTotal{}
	}
	return results, nil
}

// RecentPaymentDates trả về tối đa 10 ngày thanh toán khác nhau gần nhất (YYYY-MM-DD),
// mới nhất trước, tính trên toàn bộ collection.
func (s *RevenueService) RecentPaymentDates(ctx context.Context) ([]string, error) {
	// paymentDate lưu dạng UnixMilli nên phải $toDate trước khi format
	pipeline := []bson.D{
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   bson.M{"$toDate": "$paymentDate"},
			}},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": -1}}},
		{{Key: "$limit", Value: topDimensionLimit}},
	}

	var results []struct {
		Date string `bson:"_id"`
	}
	if err := s.Aggregate(ctx, pipeline, &results); err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(results))
	for _, r := range results {
		dates = append(dates, r.Date)
	}
	return dates, nil
}

// enrichEntries gắn thông tin release/nghệ sĩ vào từng entry bằng hai lượt:
// gom hết releaseId và ISRC của trang kết quả, một query catalog, rồi map lại trong bộ nhớ.
// Entry không resolve được nhận placeholder với title lấy từ tên track trong báo cáo.
func (s *RevenueService) enrichEntries(ctx context.Context, entries []revenuemodels.RevenueEntry) ([]revenuedto.EnrichedEntry, error) {
	enriched := make([]revenuedto.EnrichedEntry, 0, len(entries))
	if len(entries) == 0 {
		return enriched, nil
	}

	ids := make([]primitive.ObjectID, 0, len(entries))
	isrcs := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.ReleaseID.IsZero() {
			ids = append(ids, e.ReleaseID)
		}
		if e.ISRC != "" {
			isrcs = append(isrcs, e.ISRC)
		}
	}

	releases, err := s.catalog.ReleasesWithArtists(ctx, ids, isrcs)
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]*catalogmodels.ReleaseWithArtists, len(releases))
	byISRC := make(map[string]*catalogmodels.ReleaseWithArtists, len(releases))
	for i := range releases {
		r := &releases[i]
		byID[r.ID] = r
		if r.ISRC != "" {
			byISRC[r.ISRC] = r
		}
	}

	for _, e := range entries {
		release, ok := byID[e.ReleaseID]
		if !ok {
			release, ok = byISRC[e.ISRC]
		}

		info := revenuedto.ReleaseInfo{
			Title:   e.Track,
			Artists: []catalogmodels.ArtistRef{},
		}
		if info.Title == "" {
			info.Title = "Unknown Track"
		}
		if ok {
			info = revenuedto.ReleaseInfo{
				Title:      release.Title,
				Slug:       release.Slug,
				CoverImage: release.CoverImage,
				Artists:    release.ArtistDetails,
			}
			if info.Artists == nil {
				info.Artists = []catalogmodels.ArtistRef{}
			}
		}

		enriched = append(enriched, revenuedto.EnrichedEntry{
			RevenueEntry: e,
			Release:      info,
		})
	}

	return enriched, nil
}
