// Package catalogsvc - Service bản phát hành (releases).
package catalogsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/shakibkumnale/souldistribution/internal/api/base/service"
	catalogmodels "github.com/shakibkumnale/souldistribution/internal/api/catalog/models"
	"github.com/shakibkumnale/souldistribution/internal/common"
	"github.com/shakibkumnale/souldistribution/internal/global"
)

// ReleaseService xử lý CRUD và tra cứu bản phát hành.
type ReleaseService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Release]
}

// NewReleaseService tạo ReleaseService mới.
func NewReleaseService() (*ReleaseService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Releases)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Releases, common.ErrNotFound)
	}
	return &ReleaseService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Release](coll),
	}, nil
}

// FindIsrcReleaseMap trả về map ISRC → ReleaseID cho danh sách ISRC.
// Dùng khi nhập báo cáo doanh thu: một query duy nhất cho cả file thay vì query từng dòng.
func (s *ReleaseService) FindIsrcReleaseMap(ctx context.Context, isrcs []string) (map[string]primitive.ObjectID, error) {
	result := make(map[string]primitive.ObjectID)
	if len(isrcs) == 0 {
		return result, nil
	}

	filter := bson.M{"isrc": bson.M{"$in": isrcs}}
	opts := mongoopts.Find().SetProjection(bson.M{"isrc": 1})
	releases, err := s.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	for _, release := range releases {
		if release.ISRC != "" {
			result[release.ISRC] = release.ID
		}
	}

	return result, nil
}

// FindByArtist trả về các bản phát hành của một nghệ sĩ, mới nhất trước.
func (s *ReleaseService) FindByArtist(ctx context.Context, artistID primitive.ObjectID) ([]catalogmodels.Release, error) {
	filter := bson.M{"artists": artistID}
	opts := mongoopts.Find().SetSort(bson.D{{Key: "releaseDate", Value: -1}})
	return s.Find(ctx, filter, opts)
}

// FindTrack tìm track theo chuỗi key với thứ tự fallback: ObjectID → slug → ISRC.
// Kết quả kèm danh sách nghệ sĩ đã populate.
func (s *ReleaseService) FindTrack(ctx context.Context, key string) (*catalogmodels.ReleaseWithArtists, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, common.ErrRequiredField
	}

	// Thử lần lượt từng cách tra cứu
	var filters []bson.M
	if primitive.IsValidObjectID(key) {
		id, _ := primitive.ObjectIDFromHex(key)
		filters = append(filters, bson.M{"_id": id})
	}
	filters = append(filters, bson.M{"slug": key}, bson.M{"isrc": key})

	for _, filter := range filters {
		track, err := s.findOneWithArtists(ctx, filter)
		if err == nil {
			return track, nil
		}
		if !errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
	}

	return nil, common.ErrNotFound
}

// FindManyWithArtists trả về các release khớp theo _id hoặc ISRC, kèm nghệ sĩ đã populate.
// Dùng cho enrichment hàng loạt: một query cho cả trang kết quả doanh thu.
func (s *ReleaseService) FindManyWithArtists(ctx context.Context, ids []primitive.ObjectID, isrcs []string) ([]catalogmodels.ReleaseWithArtists, error) {
	var conditions []bson.M
	if len(ids) > 0 {
		conditions = append(conditions, bson.M{"_id": bson.M{"$in": ids}})
	}
	if len(isrcs) > 0 {
		conditions = append(conditions, bson.M{"isrc": bson.M{"$in": isrcs}})
	}
	if len(conditions) == 0 {
		return []catalogmodels.ReleaseWithArtists{}, nil
	}

	pipeline := []bson.D{
		{{Key: "$match", Value: bson.M{"$or": conditions}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Artists,
			"localField":   "artists",
			"foreignField": "_id",
			"as":           "artistDetails",
		}}},
		{{Key: "$project", Value: bson.M{
			"artistDetails.bio":         0,
			"artistDetails.plans":       0,
			"artistDetails.spotifyData": 0,
		}}},
	}

	var results []catalogmodels.ReleaseWithArtists
	if err := s.Aggregate(ctx, pipeline, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// findOneWithArtists tìm một release theo filter và populate nghệ sĩ qua $lookup.
func (s *ReleaseService) findOneWithArtists(ctx context.Context, filter bson.M) (*catalogmodels.ReleaseWithArtists, error) {
	pipeline := []bson.D{
		{{Key: "$match", Value: filter}},
		{{Key: "$limit", Value: 1}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Artists,
			"localField":   "artists",
			"foreignField": "_id",
			"as":           "artistDetails",
		}}},
		{{Key: "$project", Value: bson.M{
			"artistDetails.bio":         0,
			"artistDetails.plans":       0,
			"artistDetails.spotifyData": 0,
		}}},
	}

	var results []catalogmodels.ReleaseWithArtists
	if err := s.Aggregate(ctx, pipeline, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, common.ErrNotFound
	}

	return &results[0], nil
}
