// Package catalogsvc - Service nghệ sĩ (artists).
package catalogsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/shakibkumnale/souldistribution/internal/api/base/service"
	catalogmodels "github.com/shakibkumnale/souldistribution/internal/api/catalog/models"
	"github.com/shakibkumnale/souldistribution/internal/common"
	"github.com/shakibkumnale/souldistribution/internal/global"
)

// ArtistService xử lý CRUD và tra cứu nghệ sĩ.
type ArtistService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Artist]
}

// NewArtistService tạo ArtistService mới.
func NewArtistService() (*ArtistService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Artists)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Artists, common.ErrNotFound)
	}
	return &ArtistService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Artist](coll),
	}, nil
}

// ArtistWithReleases là Artist kèm các bản phát hành thuộc sở hữu (kết quả $lookup).
// Dùng cho roster của trang analytics: mỗi nghệ sĩ và danh sách ISRC của họ.
type ArtistWithReleases struct {
	catalogmodels.Artist `bson:",inline"`

	Releases []catalogmodels.Release `json:"releases" bson:"releases"`
}

// FindBySlug tìm nghệ sĩ theo slug.
func (s *ArtistService) FindBySlug(ctx context.Context, slug string) (catalogmodels.Artist, error) {
	return s.FindOne(ctx, bson.M{"slug": slug}, nil)
}

// FindWithReleases trả về tất cả nghệ sĩ kèm các bản phát hành của họ ($lookup).
// Kết quả dùng để build bộ lọc doanh thu theo nghệ sĩ: tập ISRC của roster.
func (s *ArtistService) FindWithReleases(ctx context.Context) ([]ArtistWithReleases, error) {
	pipeline := []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Releases,
			"localField":   "_id",
			"foreignField": "artists",
			"as":           "releases",
		}}},
		// Nghệ sĩ chưa có bản phát hành không vào roster
		{{Key: "$match", Value: bson.M{"releases": bson.M{"$ne": bson.A{}}}}},
		{{Key: "$project", Value: bson.M{
			"name":                1,
			"slug":                1,
			"image":               1,
			"releases._id":        1,
			"releases.title":      1,
			"releases.slug":       1,
			"releases.isrc":       1,
			"releases.coverImage": 1,
		}}},
		{{Key: "$sort", Value: bson.M{"name": 1}}},
	}

	var results []ArtistWithReleases
	if err := s.Aggregate(ctx, pipeline, &results); err != nil {
		return nil, err
	}

	return results, nil
}

// FindPopular trả về các nghệ sĩ có nhiều follower nhất.
func (s *ArtistService) FindPopular(ctx context.Context, limit int64) ([]catalogmodels.Artist, error) {
	if limit <= 0 {
		limit = 10
	}
	opts := mongoopts.Find().
		SetSort(bson.D{{Key: "spotifyData.followers", Value: -1}}).
		SetLimit(limit).
		SetProjection(bson.M{"name": 1, "slug": 1, "image": 1, "spotifyData.followers": 1})
	return s.Find(ctx, bson.M{}, opts)
}

// CountByPlanType đếm số nghệ sĩ đang active theo loại gói phân phối.
func (s *ArtistService) CountByPlanType(ctx context.Context, planType string) (int64, error) {
	filter := bson.M{
		"plans": bson.M{
			"$elemMatch": bson.M{
				"type":   planType,
				"status": "active",
			},
		},
	}
	return s.CountDocuments(ctx, filter)
}

// EnsureUniqueSlug kiểm tra slug chưa bị dùng bởi nghệ sĩ khác (excludeID có thể là NilObjectID khi tạo mới).
func (s *ArtistService) EnsureUniqueSlug(ctx context.Context, slug string, excludeID primitive.ObjectID) error {
	filter := bson.M{"slug": slug}
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	exists, err := s.DocumentExists(ctx, filter)
	if err != nil {
		return err
	}
	if exists {
		return common.ErrDuplicate
	}
	return nil
}
