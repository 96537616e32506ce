package revenuesvc

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	catalogmodels "github.com/shakibkumnale/souldistribution/internal/api/catalog/models"
	catalogsvc "github.com/shakibkumnale/souldistribution/internal/api/catalog/service"
	revenuedto "github.com/shakibkumnale/souldistribution/internal/api/revenue/dto"
	"github.com/shakibkumnale/souldistribution/internal/common"
)

// fakeCatalog là CatalogLookup trong bộ nhớ để test service doanh thu không cần MongoDB.
type fakeCatalog struct {
	isrcMap          map[string]primitive.ObjectID
	isrcErr          error
	releasesByArtist map[primitive.ObjectID][]catalogmodels.Release
	tracks           map[string]*catalogmodels.ReleaseWithArtists
	artists          map[primitive.ObjectID]catalogmodels.Artist
}

func (f *fakeCatalog) IsrcReleaseMap(_ context.Context, isrcs []string) (map[string]primitive.ObjectID, error) {
	if f.isrcErr != nil {
		return nil, f.isrcErr
	}
	result := make(map[string]primitive.ObjectID)
	for _, isrc := range isrcs {
		if id, ok := f.isrcMap[isrc]; ok {
			result[isrc] = id
		}
	}
	return result, nil
}

func (f *fakeCatalog) ReleasesByArtist(_ context.Context, artistID primitive.ObjectID) ([]catalogmodels.Release, error) {
	return f.releasesByArtist[artistID], nil
}

func (f *fakeCatalog) ResolveTrack(_ context.Context, key string) (*catalogmodels.ReleaseWithArtists, error) {
	if track, ok := f.tracks[key]; ok {
		return track, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeCatalog) ReleasesWithArtists(_ context.Context, ids []primitive.ObjectID, isrcs []string) ([]catalogmodels.ReleaseWithArtists, error) {
	var result []catalogmodels.ReleaseWithArtists
	seen := make(map[primitive.ObjectID]bool)
	for _, track := range f.tracks {
		for _, id := range ids {
			if track.ID == id && !seen[track.ID] {
				result = append(result, *track)
				seen[track.ID] = true
			}
		}
		for _, isrc := range isrcs {
			if track.ISRC == isrc && !seen[track.ID] {
				result = append(result, *track)
				seen[track.ID] = true
			}
		}
	}
	return result, nil
}

func (f *fakeCatalog) ArtistsWithReleases(_ context.Context) ([]catalogsvc.ArtistWithReleases, error) {
	return []catalogsvc.ArtistWithReleases{}, nil
}

func (f *fakeCatalog) ArtistByID(_ context.Context, id primitive.ObjectID) (catalogmodels.Artist, error) {
	if artist, ok := f.artists[id]; ok {
		return artist, nil
	}
	return catalogmodels.Artist{}, common.ErrNotFound
}

func newTestService(catalog *fakeCatalog) *RevenueService {
	return NewRevenueServiceWithCatalog(nil, catalog)
}

func TestBuildEntryFilter_Empty(t *testing.T) {
	svc := newTestService(&fakeCatalog{})

	ef, err := svc.buildEntryFilter(context.Background(), revenuedto.AnalyticsQuery{})
	require.NoError(t, err)
	assert.False(t, ef.empty)
	assert.Empty(t, ef.filter, "Query trống thì filter phải trống")
}

func TestBuildEntryFilter_StoreCountryEquality(t *testing.T) {
	svc := newTestService(&fakeCatalog{})

	ef, err := svc.buildEntryFilter(context.Background(), revenuedto.AnalyticsQuery{Store: "Spotify", Country: "US"})
	require.NoError(t, err)
	assert.Equal(t, "Spotify", ef.filter["store"])
	assert.Equal(t, "US", ef.filter["country"])
}

func TestBuildEntryFilter_ReleaseObjectID(t *testing.T) {
	svc := newTestService(&fakeCatalog{})
	id := primitive.NewObjectID()

	ef, err := svc.buildEntryFilter(context.Background(), revenuedto.AnalyticsQuery{Release: id.Hex()})
	require.NoError(t, err)
	assert.Equal(t, id, ef.filter["releaseId"])

	_, err = svc.buildEntryFilter(context.Background(), revenuedto.AnalyticsQuery{Release: "not-hex"})
	require.Error(t, err, "Release không phải ObjectID phải trả lỗi validation")
}

func TestBuildEntryFilter_DateRangeInclusive(t *testing.T) {
	svc := newTestService(&fakeCatalog{})

	ef, err := svc.buildEntryFilter(context.Background(), revenuedto.AnalyticsQuery{From: "2024-01-01", To: "2024-01-31"})
	require.NoError(t, err)

	dateFilter, ok := ef.filter["paymentDate"].(bson.M)
	require.True(t, ok)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	endOfTo := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC).UnixMilli() - 1
	assert.Equal(t, from, dateFilter["$gte"], "Biên trái phải là đầu ngày from")
	assert.Equal(t, endOfTo, dateFilter["$lte"], "Biên phải phải bao trọn ngày to")

	_, err = svc.buildEntryFilter(context.Background(), revenuedto.AnalyticsQuery{From: "01/31/2024"})
	require.Error(t, err, "Ngày sai định dạng phải trả lỗi validation")
}

func TestBuildEntryFilter_ArtistRoster(t *testing.T) {
	artistID := primitive.NewObjectID()
	releaseID := primitive.NewObjectID()
	svc := newTestService(&fakeCatalog{
		releasesByArtist: map[primitive.ObjectID][]catalogmodels.Release{
			artistID: {{ID: releaseID, ISRC: "ISRC1"}},
		},
	})

	ef, err := svc.buildEntryFilter(context.Background(), revenuedto.AnalyticsQuery{Artist: artistID.Hex()})
	require.NoError(t, err)
	assert.False(t, ef.empty)
	assert.Equal(t, artistID, ef.artistID)

	conditions, ok := ef.filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, conditions, 2, "Roster phải sinh điều kiện releaseId lẫn isrc")
	assert.Equal(t, bson.M{"$in": []primitive.ObjectID{releaseID}}, conditions[0]["releaseId"])
	assert.Equal(t, bson.M{"$in": []string{"ISRC1"}}, conditions[1]["isrc"])
}

func TestBuildEntryFilter_ArtistWithoutReleases(t *testing.T) {
	artistID := primitive.NewObjectID()
	svc := newTestService(&fakeCatalog{})

	ef, err := svc.buildEntryFilter(context.Background(), revenuedto.AnalyticsQuery{Artist: artistID.Hex()})
	require.NoError(t, err)
	assert.True(t, ef.empty, "Nghệ sĩ chưa có bản phát hành thì tập kết quả rỗng, không query")
}

func TestBuildEntryFilter_TrackResolveFallback(t *testing.T) {
	releaseID := primitive.NewObjectID()
	svc := newTestService(&fakeCatalog{
		tracks: map[string]*catalogmodels.ReleaseWithArtists{
			"my-song": {Release: catalogmodels.Release{ID: releaseID, ISRC: "ISRC1"}},
		},
	})

	// Track resolve được: lọc theo releaseId hoặc isrc
	ef, err := svc.buildEntryFilter(context.Background(), revenuedto.AnalyticsQuery{Track: "my-song"})
	require.NoError(t, err)
	conditions, ok := ef.filter["$or"].([]bson.M)
	require.True(t, ok)
	assert.Len(t, conditions, 2)

	// Track không resolve được: key coi là ISRC thô
	ef, err = svc.buildEntryFilter(context.Background(), revenuedto.AnalyticsQuery{Track: "UNKNOWNISRC"})
	require.NoError(t, err)
	assert.Equal(t, "UNKNOWNISRC", ef.filter["isrc"])
}

func TestBuildEntryFilter_TrackAndArtistCombined(t *testing.T) {
	artistID := primitive.NewObjectID()
	releaseID := primitive.NewObjectID()
	svc := newTestService(&fakeCatalog{
		releasesByArtist: map[primitive.ObjectID][]catalogmodels.Release{
			artistID: {{ID: releaseID, ISRC: "ISRC1"}},
		},
		tracks: map[string]*catalogmodels.ReleaseWithArtists{
			"ISRC1": {Release: catalogmodels.Release{ID: releaseID, ISRC: "ISRC1"}},
		},
	})

	ef, err := svc.buildEntryFilter(context.Background(), revenuedto.AnalyticsQuery{
		Artist: artistID.Hex(),
		Track:  "ISRC1",
	})
	require.NoError(t, err)

	// Hai khối $or không được ghi đè nhau mà phải AND lại
	_, hasOr := ef.filter["$or"]
	assert.False(t, hasOr)
	andBlocks, ok := ef.filter["$and"].([]bson.M)
	require.True(t, ok)
	assert.Len(t, andBlocks, 2)
}
