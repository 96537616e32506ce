// Package revenuesvc - Service doanh thu: nhập báo cáo CSV, truy vấn analytics,
// gộp theo track và quản lý registry file báo cáo.
package revenuesvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/shakibkumnale/souldistribution/internal/api/base/service"
	catalogmodels "github.com/shakibkumnale/souldistribution/internal/api/catalog/models"
	catalogsvc "github.com/shakibkumnale/souldistribution/internal/api/catalog/service"
	revenuemodels "github.com/shakibkumnale/souldistribution/internal/api/revenue/models"
	"github.com/shakibkumnale/souldistribution/internal/common"
	"github.com/shakibkumnale/souldistribution/internal/global"
)

// CatalogLookup là phần catalog mà service doanh thu cần: map ISRC khi nhập báo cáo,
// resolve track/nghệ sĩ khi build bộ lọc và enrich kết quả.
// Tách interface để test service doanh thu với catalog giả, không cần MongoDB.
type CatalogLookup interface {
	// IsrcReleaseMap trả về map ISRC → ReleaseID cho danh sách ISRC.
	IsrcReleaseMap(ctx context.Context, isrcs []string) (map[string]primitive.ObjectID, error)

	// ReleasesByArtist trả về các bản phát hành của một nghệ sĩ.
	ReleasesByArtist(ctx context.Context, artistID primitive.ObjectID) ([]catalogmodels.Release, error)

	// ResolveTrack tìm track theo ObjectID hex, slug hoặc ISRC.
	ResolveTrack(ctx context.Context, key string) (*catalogmodels.ReleaseWithArtists, error)

	// ReleasesWithArtists trả về các release khớp _id hoặc ISRC, kèm nghệ sĩ.
	ReleasesWithArtists(ctx context.Context, ids []primitive.ObjectID, isrcs []string) ([]catalogmodels.ReleaseWithArtists, error)

	// ArtistsWithReleases trả về roster: tất cả nghệ sĩ kèm bản phát hành của họ.
	ArtistsWithReleases(ctx context.Context) ([]catalogsvc.ArtistWithReleases, error)

	// ArtistByID tìm nghệ sĩ theo ID.
	ArtistByID(ctx context.Context, id primitive.ObjectID) (catalogmodels.Artist, error)
}

// catalogAdapter nối CatalogLookup vào ArtistService/ReleaseService thật.
type catalogAdapter struct {
	artists  *catalogsvc.ArtistService
	releases *catalogsvc.ReleaseService
}

func (a *catalogAdapter) IsrcReleaseMap(ctx context.Context, isrcs []string) (map[string]primitive.ObjectID, error) {
	return a.releases.FindIsrcReleaseMap(ctx, isrcs)
}

func (a *catalogAdapter) ReleasesByArtist(ctx context.Context, artistID primitive.ObjectID) ([]catalogmodels.Release, error) {
	return a.releases.FindByArtist(ctx, artistID)
}

func (a *catalogAdapter) ResolveTrack(ctx context.Context, key string) (*catalogmodels.ReleaseWithArtists, error) {
	return a.releases.FindTrack(ctx, key)
}

func (a *catalogAdapter) ReleasesWithArtists(ctx context.Context, ids []primitive.ObjectID, isrcs []string) ([]catalogmodels.ReleaseWithArtists, error) {
	return a.releases.FindManyWithArtists(ctx, ids, isrcs)
}

func (a *catalogAdapter) ArtistsWithReleases(ctx context.Context) ([]catalogsvc.ArtistWithReleases, error) {
	return a.artists.FindWithReleases(ctx)
}

func (a *catalogAdapter) ArtistByID(ctx context.Context, id primitive.ObjectID) (catalogmodels.Artist, error) {
	return a.artists.FindOneById(ctx, id)
}

// RevenueService xử lý toàn bộ pipeline doanh thu trên collection revenue_data.
type RevenueService struct {
	*basesvc.BaseServiceMongoImpl[revenuemodels.RevenueEntry]

	catalog CatalogLookup
}

// NewRevenueService tạo RevenueService với catalog lookup mặc định.
func NewRevenueService() (*RevenueService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.RevenueData)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.RevenueData, common.ErrNotFound)
	}

	artistSvc, err := catalogsvc.NewArtistService()
	if err != nil {
		return nil, err
	}
	releaseSvc, err := catalogsvc.NewReleaseService()
	if err != nil {
		return nil, err
	}

	return &RevenueService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[revenuemodels.RevenueEntry](coll),
		catalog:              &catalogAdapter{artists: artistSvc, releases: releaseSvc},
	}, nil
}

// NewRevenueServiceWithCatalog tạo RevenueService với catalog lookup tùy chỉnh.
func NewRevenueServiceWithCatalog(base *basesvc.BaseServiceMongoImpl[revenuemodels.RevenueEntry], catalog CatalogLookup) *RevenueService {
	return &RevenueService{
		BaseServiceMongoImpl: base,
		catalog:              catalog,
	}
}
