package revenuesvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	revenuedto "github.com/shakibkumnale/souldistribution/internal/api/revenue/dto"
	"github.com/shakibkumnale/souldistribution/internal/common"
	"github.com/shakibkumnale/souldistribution/internal/utility"
)

// entryFilter là bộ lọc Mongo đã build cùng các cờ phụ cho phần enrichment.
type entryFilter struct {
	filter bson.M

	// empty báo tập kết quả chắc chắn rỗng (nghệ sĩ không có bản phát hành nào),
	// bỏ qua query luôn thay vì gửi filter vô nghĩa xuống Mongo.
	empty bool

	artistID primitive.ObjectID
}

// buildEntryFilter dịch AnalyticsQuery thành filter Mongo trên revenue_data.
// Các điều kiện độc lập kết hợp AND; from/to bao gồm cả hai biên.
func (s *RevenueService) buildEntryFilter(ctx context.Context, q revenuedto.AnalyticsQuery) (*entryFilter, error) {
	result := &entryFilter{filter: bson.M{}}

	if q.Release != "" {
		id, err := primitive.ObjectIDFromHex(q.Release)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat,
				"release không phải ObjectID hợp lệ", common.StatusBadRequest,
				map[string]interface{}{"release": q.Release})
		}
		result.filter["releaseId"] = id
	}

	// Track và artist đều sinh khối $or riêng; khi có cả hai thì gộp dưới $and
	var orBlocks []bson.M

	if q.Track != "" {
		block, err := s.trackCondition(ctx, q.Track)
		if err != nil {
			return nil, err
		}
		orBlocks = append(orBlocks, block)
	}

	if q.Artist != "" {
		block, err := s.artistCondition(ctx, result, q.Artist)
		if err != nil {
			return nil, err
		}
		if block != nil {
			orBlocks = append(orBlocks, block)
		}
	}

	switch len(orBlocks) {
	case 0:
	case 1:
		result.filter = utility.MergeMaps(result.filter, orBlocks[0])
	default:
		result.filter["$and"] = orBlocks
	}

	if q.Store != "" {
		result.filter["store"] = q.Store
	}
	if q.Country != "" {
		result.filter["country"] = q.Country
	}

	if q.From != "" || q.To != "" {
		dateFilter := bson.M{}
		if q.From != "" {
			from, err := parseFilterDate(q.From)
			if err != nil {
				return nil, err
			}
			dateFilter["$gte"] = from
		}
		if q.To != "" {
			to, err := parseFilterDate(q.To)
			if err != nil {
				return nil, err
			}
			// Hết ngày: cộng một ngày trừ 1ms để biên phải bao gồm trọn ngày
			dateFilter["$lte"] = to + 24*time.Hour.Milliseconds() - 1
		}
		result.filter["paymentDate"] = dateFilter
	}

	return result, nil
}

// trackCondition build điều kiện lọc theo track: resolve key qua catalog trước,
// không resolve được thì coi key là ISRC thô trên chính dữ liệu doanh thu.
func (s *RevenueService) trackCondition(ctx context.Context, key string) (bson.M, error) {
	track, err := s.catalog.ResolveTrack(ctx, key)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return bson.M{"isrc": key}, nil
		}
		return nil, err
	}

	conditions := []bson.M{{"releaseId": track.ID}}
	if track.ISRC != "" {
		conditions = append(conditions, bson.M{"isrc": track.ISRC})
	}
	return bson.M{"$or": conditions}, nil
}

// artistCondition build điều kiện lọc theo nghệ sĩ: gom releaseId và ISRC của cả roster.
// Nghệ sĩ chưa có bản phát hành nào thì tập kết quả rỗng theo định nghĩa.
func (s *RevenueService) artistCondition(ctx context.Context, result *entryFilter, artist string) (bson.M, error) {
	artistID, err := primitive.ObjectIDFromHex(artist)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat,
			"artist không phải ObjectID hợp lệ", common.StatusBadRequest,
			map[string]interface{}{"artist": artist})
	}
	result.artistID = artistID

	releases, err := s.catalog.ReleasesByArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}
	if len(releases) == 0 {
		result.empty = true
		return nil, nil
	}

	releaseIDs := make([]primitive.ObjectID, 0, len(releases))
	isrcs := make([]string, 0, len(releases))
	for _, r := range releases {
		releaseIDs = append(releaseIDs, r.ID)
		if r.ISRC != "" {
			isrcs = append(isrcs, r.ISRC)
		}
	}

	conditions := []bson.M{{"releaseId": bson.M{"$in": releaseIDs}}}
	if len(isrcs) > 0 {
		conditions = append(conditions, bson.M{"isrc": bson.M{"$in": isrcs}})
	}
	return bson.M{"$or": conditions}, nil
}

// parseFilterDate parse ngày YYYY-MM-DD của query thành UnixMilli đầu ngày UTC.
func parseFilterDate(s string) (int64, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return 0, common.NewError(common.ErrCodeValidationFormat,
			fmt.Sprintf("ngày %q không đúng định dạng YYYY-MM-DD", s),
			common.StatusBadRequest, nil)
	}
	return t.UnixMilli(), nil
}
